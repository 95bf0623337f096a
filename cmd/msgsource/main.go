// Command msgsource inspects and edits message catalogs on disk.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZaguanLabs/msgsource"
	"github.com/ZaguanLabs/msgsource/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// app carries state shared by all subcommands. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	root    string
	verbose bool

	logger *slog.Logger
	store  *msgsource.Store
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     msgsource.Name,
		Short:   msgsource.Description,
		Long:    "msgsource reads and writes message catalogs stored as <root>/<locale>/<category>" + msgsource.FileExt + ".",
		Version: msgsource.FullVersion(),
		// Errors are printed once by main.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.root, "root", "r", "", "Catalog root directory (default: $"+config.EnvRoot+" or \""+config.DefaultRoot+"\")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newGetCommand(a),
		newListCommand(a),
		newSetCommand(a),
		newDeleteCommand(a),
		newImportCommand(a),
		newExportCommand(a),
		newExtractCommand(a),
		newPathCommand(a),
		newStatCommand(a),
		newVersionCommand(),
	)

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if a.root == "" {
		a.root = cfg.Root
	}

	level := cfg.LogLevel
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.store = msgsource.NewStore(a.root, msgsource.WithLogger(a.logger))

	a.logger.Debug("store ready", "root", a.root)
	return nil
}
