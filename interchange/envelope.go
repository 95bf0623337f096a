package interchange

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ZaguanLabs/msgsource"
)

// EnvelopeVersion is the current envelope format version.
const EnvelopeVersion = "1.0"

// Envelope wraps an exported catalog with the key it was exported from and a
// hash of its canonical file content.
type Envelope struct {
	Version    string          `json:"version"`
	ExportedAt string          `json:"exported_at"`
	Category   string          `json:"category"`
	Locale     string          `json:"locale"`
	SHA256     string          `json:"sha256"`
	Messages   json.RawMessage `json:"messages"`
}

// WriteEnvelope writes c wrapped in an Envelope as indented JSON.
func WriteEnvelope(w io.Writer, category, locale string, c *msgsource.Catalog, now time.Time) error {
	messages, err := marshalJSON(c)
	if err != nil {
		return fmt.Errorf("encoding messages: %w", err)
	}

	env := Envelope{
		Version:    EnvelopeVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Category:   category,
		Locale:     locale,
		SHA256:     msgsource.HashCatalog(c),
		Messages:   messages,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(env); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// WriteEnvelopeFile writes an envelope to a file.
func WriteEnvelopeFile(path, category, locale string, c *msgsource.Catalog, now time.Time) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := WriteEnvelope(f, category, locale, c, now); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}

// ReadEnvelope reads an envelope and returns it with its validated catalog.
// A catalog whose hash does not match the recorded one is rejected.
func ReadEnvelope(r io.Reader) (*Envelope, *msgsource.Catalog, error) {
	var env Envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, nil, &DecodeError{Format: JSON, Msg: "reading envelope", Cause: err}
	}
	if env.Version != EnvelopeVersion {
		return nil, nil, &DecodeError{Format: JSON, Msg: fmt.Sprintf("unsupported envelope version %q", env.Version)}
	}
	if len(env.Messages) == 0 {
		return nil, nil, &DecodeError{Format: JSON, Msg: "envelope has no messages"}
	}

	entries, err := decodeJSON(bytes.NewReader(env.Messages))
	if err != nil {
		return nil, nil, err
	}
	c, err := msgsource.ToCatalog(entries)
	if err != nil {
		return nil, nil, err
	}

	if env.SHA256 != "" {
		if got := msgsource.HashCatalog(c); got != env.SHA256 {
			return nil, nil, &DecodeError{Format: JSON, Msg: fmt.Sprintf("checksum mismatch: recorded %s, computed %s", env.SHA256, got)}
		}
	}
	return &env, c, nil
}

// ReadEnvelopeFile reads an envelope from a file.
func ReadEnvelopeFile(path string) (*Envelope, *msgsource.Catalog, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ReadEnvelope(f)
}
