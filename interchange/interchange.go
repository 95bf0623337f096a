// Package interchange converts message catalogs to and from common document
// formats (JSON, YAML, TOML).
//
// All formats share one shape: an object keyed by message ID whose values
// are objects with a "message" and an optional "comment" field.
//
//	{
//	  "test.id1": {"message": "Test 1", "comment": "Translate wisely!"},
//	  "test.id2": {"message": "Test 2"}
//	}
//
// Decoding does not validate entries. It returns msgsource.RawEntry values so
// that msgsource.ToCatalog or Store.WriteRaw can report the offending ID.
package interchange

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ZaguanLabs/msgsource"
)

// Format is a document format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Formats lists the supported formats.
var Formats = []Format{JSON, YAML, TOML}

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("unsupported format %q", name)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot detect format of %q: no file extension", path)
	}
	return ParseFormat(ext)
}

// DecodeError reports a document that could not be decoded.
type DecodeError struct {
	Format Format
	Msg    string
	Cause  error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode %s: %s: %v", e.Format, e.Msg, e.Cause)
	}
	return fmt.Sprintf("decode %s: %s", e.Format, e.Msg)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Decode reads a document and returns its entries. JSON and YAML keep
// document order; TOML entries are sorted by ID.
func Decode(r io.Reader, format Format) ([]msgsource.RawEntry, error) {
	switch format {
	case JSON:
		return decodeJSON(r)
	case YAML:
		return decodeYAML(r)
	case TOML:
		return decodeTOML(r)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Encode writes c as a document. JSON and YAML keep catalog order; TOML
// entries are sorted by ID.
func Encode(w io.Writer, c *msgsource.Catalog, format Format) error {
	switch format {
	case JSON:
		return encodeJSON(w, c)
	case YAML:
		return encodeYAML(w, c)
	case TOML:
		return encodeTOML(w, c)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// document is the per-entry shape shared by the struct-based encoders.
type document struct {
	Message string `json:"message" yaml:"message" toml:"message"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty" toml:"comment,omitempty"`
}

// rawEntry builds a RawEntry from a decoded value. Values that are not
// objects produce nil fields, which validation reports as a missing message.
func rawEntry(id string, v any) msgsource.RawEntry {
	fields, _ := v.(map[string]any)
	return msgsource.RawEntry{ID: id, Fields: fields}
}
