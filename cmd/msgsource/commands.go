package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ZaguanLabs/msgsource"
	"github.com/ZaguanLabs/msgsource/extract"
	"github.com/ZaguanLabs/msgsource/interchange"
)

var errNotFound = errors.New("message not found")

func newGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <category> <locale> <id>",
		Short: "Print a single translated message",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, ok, err := a.store.GetMessage(args[2], args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %q", errNotFound, args[2])
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newListCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list <category> <locale>",
		Short: "List all messages of a catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.store.GetMessages(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return interchange.Encode(out, c, interchange.JSON)
			}
			for id, e := range c.All() {
				fmt.Fprintf(out, "%s\t%s\n", id, e.Message)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON")
	return cmd
}

func newSetCommand(a *app) *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "set <category> <locale> <id> <message>",
		Short: "Add or replace one message",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, locale := args[0], args[1]
			c, err := a.store.GetMessages(category, locale)
			if err != nil {
				return err
			}
			c.Set(args[2], msgsource.Entry{Message: args[3], Comment: comment})
			return a.store.Write(category, locale, c)
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "", "Translator comment stored with the message")
	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category> <locale> <id>",
		Short: "Remove one message",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, locale := args[0], args[1]
			c, err := a.store.GetMessages(category, locale)
			if err != nil {
				return err
			}
			if !c.Delete(args[2]) {
				return fmt.Errorf("%w: %q", errNotFound, args[2])
			}
			return a.store.Write(category, locale, c)
		},
	}
}

func newImportCommand(a *app) *cobra.Command {
	var (
		formatName string
		dryRun     bool
		envelope   bool
	)

	cmd := &cobra.Command{
		Use:   "import <category> <locale> <file>",
		Short: "Replace a catalog with the contents of a JSON, YAML or TOML file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, locale, file := args[0], args[1], args[2]

			var next *msgsource.Catalog
			var raw []msgsource.RawEntry
			if envelope {
				env, c, err := interchange.ReadEnvelopeFile(file)
				if err != nil {
					return err
				}
				if env.Category != category || env.Locale != locale {
					a.logger.Warn("envelope key differs from target",
						"envelope", env.Category+"@"+env.Locale,
						"target", category+"@"+locale)
				}
				next = c
			} else {
				format, err := resolveFormat(formatName, file)
				if err != nil {
					return err
				}
				f, err := os.Open(file) // #nosec G304 - path is intentionally user-provided
				if err != nil {
					return fmt.Errorf("opening input: %w", err)
				}
				defer f.Close()

				raw, err = interchange.Decode(f, format)
				if err != nil {
					return err
				}
				if next, err = msgsource.ToCatalog(raw); err != nil {
					return err
				}
			}

			if dryRun {
				prev, err := a.store.GetMessages(category, locale)
				if err != nil {
					return err
				}
				printDiff(cmd.OutOrStdout(), msgsource.DiffCatalogs(prev, next))
				return nil
			}

			if raw != nil {
				return a.store.WriteRaw(category, locale, raw)
			}
			return a.store.Write(category, locale, next)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Input format: json, yaml or toml (default: from file extension)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would change without writing")
	cmd.Flags().BoolVar(&envelope, "envelope", false, "Input is a JSON envelope written by export --envelope")
	return cmd
}

func newExportCommand(a *app) *cobra.Command {
	var (
		formatName string
		output     string
		envelope   bool
	)

	cmd := &cobra.Command{
		Use:   "export <category> <locale>",
		Short: "Write a catalog as JSON, YAML or TOML",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, locale := args[0], args[1]
			c, err := a.store.GetMessages(category, locale)
			if err != nil {
				return err
			}

			if envelope {
				if output != "" {
					return interchange.WriteEnvelopeFile(output, category, locale, c, time.Now())
				}
				return interchange.WriteEnvelope(cmd.OutOrStdout(), category, locale, c, time.Now())
			}

			format, err := resolveFormat(formatName, output)
			if err != nil {
				return err
			}

			if output == "" {
				return interchange.Encode(cmd.OutOrStdout(), c, format)
			}
			f, err := os.Create(output) // #nosec G304 - path is intentionally user-provided
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			if err := interchange.Encode(f, c, format); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format: json, yaml or toml (default: from --output extension, else json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&envelope, "envelope", false, "Wrap the messages in a JSON envelope with a checksum")
	return cmd
}

func newExtractCommand(a *app) *cobra.Command {
	var (
		overwrite bool
		describe  bool
		idAttr    string
	)

	cmd := &cobra.Command{
		Use:   "extract <category> <locale> <html files...>",
		Short: "Collect marked messages from HTML files into a catalog",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, locale := args[0], args[1]

			x := extract.NewHTMLExtractor(
				extract.WithIDAttr(idAttr),
				extract.WithContextComments(describe),
			)

			var found []extract.Message
			for _, file := range args[2:] {
				messages, err := extractFile(x, file)
				if err != nil {
					return err
				}
				a.logger.Debug("extracted messages", "file", file, "count", len(messages))
				found = append(found, messages...)
			}

			base, err := a.store.GetMessages(category, locale)
			if err != nil {
				return err
			}
			merged := extract.Merge(base, found, overwrite)

			d := msgsource.DiffCatalogs(base, merged)
			if !d.HasChanges() {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes")
				return nil
			}
			if err := a.store.Write(category, locale, merged); err != nil {
				return err
			}
			printDiff(cmd.OutOrStdout(), d)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing messages with the extracted text")
	cmd.Flags().BoolVar(&describe, "context-comments", false, "Describe the source element when no comment attribute is set")
	cmd.Flags().StringVar(&idAttr, "attr", extract.DefaultIDAttr, "Attribute holding the message ID")
	return cmd
}

func newPathCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path <category> <locale>",
		Short: "Print the file a catalog is stored in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.store.Path(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newStatCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stat <category> <locale>",
		Short: "Show entry count and content hash of a catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.store.Path(args[0], args[1])
			if err != nil {
				return err
			}
			c, err := a.store.GetMessages(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:    %s\n", path)
			fmt.Fprintf(out, "entries: %d\n", c.Len())
			fmt.Fprintf(out, "sha256:  %s\n", msgsource.HashCatalog(c))
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// The version command needs no store.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", msgsource.Name, msgsource.FullVersion())
			fmt.Fprintf(out, "  commit:  %s\n", msgsource.GitCommit)
			fmt.Fprintf(out, "  built:   %s\n", msgsource.BuildDate)
			fmt.Fprintf(out, "  source:  %s\n", msgsource.Repository)
			fmt.Fprintf(out, "  license: %s\n", msgsource.License)
			return nil
		},
	}
}

// resolveFormat picks the format from an explicit name, then from the file
// extension, then falls back to JSON.
func resolveFormat(name, path string) (interchange.Format, error) {
	if name != "" {
		return interchange.ParseFormat(name)
	}
	if path != "" {
		if f, err := interchange.FormatFromPath(path); err == nil {
			return f, nil
		}
	}
	return interchange.JSON, nil
}

func extractFile(x *extract.HTMLExtractor, path string) ([]extract.Message, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	messages, err := x.Extract(f)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", path, err)
	}
	return messages, nil
}

func printDiff(w io.Writer, d *msgsource.CatalogDiff) {
	stats := d.Stats()
	fmt.Fprintf(w, "Added: %d, Removed: %d, Changed: %d, Unchanged: %d\n",
		stats.Added, stats.Removed, stats.Changed, stats.Unchanged)
	for _, id := range d.Added {
		fmt.Fprintf(w, "  + %s\n", id)
	}
	for _, id := range d.Removed {
		fmt.Fprintf(w, "  - %s\n", id)
	}
	for _, ch := range d.Changed {
		fmt.Fprintf(w, "  ~ %s: %q -> %q\n", ch.ID, ch.Old.Message, ch.New.Message)
	}
}
