package interchange

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/ZaguanLabs/msgsource"
)

// decodeJSON walks the top-level object token by token so that entries come
// out in document order.
func decodeJSON(r io.Reader) ([]msgsource.RawEntry, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, &DecodeError{Format: JSON, Msg: "reading document", Cause: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &DecodeError{Format: JSON, Msg: "top-level value must be an object"}
	}

	entries := []msgsource.RawEntry{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &DecodeError{Format: JSON, Msg: "reading message ID", Cause: err}
		}
		id, _ := tok.(string)

		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, &DecodeError{Format: JSON, Msg: "reading message " + id, Cause: err}
		}
		entries = append(entries, rawEntry(id, v))
	}

	if _, err := dec.Token(); err != nil {
		return nil, &DecodeError{Format: JSON, Msg: "reading end of object", Cause: err}
	}
	return entries, nil
}

// encodeJSON writes the catalog as an indented object in catalog order.
func encodeJSON(w io.Writer, c *msgsource.Catalog) error {
	data, err := marshalJSON(c)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')

	_, err = w.Write(out.Bytes())
	return err
}

// marshalJSON renders the catalog as a compact object in catalog order.
func marshalJSON(c *msgsource.Catalog) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for id, e := range c.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++

		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(document{Message: e.Message, Comment: e.Comment})
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
