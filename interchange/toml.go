package interchange

import (
	"io"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/ZaguanLabs/msgsource"
)

// decodeTOML reads a document whose tables are messages. TOML tables carry
// no order through go-toml's map decoding, so entries are sorted by ID.
func decodeTOML(r io.Reader) ([]msgsource.RawEntry, error) {
	var doc map[string]any
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &DecodeError{Format: TOML, Msg: "reading document", Cause: err}
	}

	ids := make([]string, 0, len(doc))
	for id := range doc {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]msgsource.RawEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, rawEntry(id, doc[id]))
	}
	return entries, nil
}

// encodeTOML writes one table per message, sorted by ID.
func encodeTOML(w io.Writer, c *msgsource.Catalog) error {
	doc := make(map[string]document, c.Len())
	for id, e := range c.All() {
		doc[id] = document{Message: e.Message, Comment: e.Comment}
	}
	return toml.NewEncoder(w).Encode(doc)
}
