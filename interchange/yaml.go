package interchange

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ZaguanLabs/msgsource"
)

// decodeYAML reads the document as a node tree so that mapping order is kept.
func decodeYAML(r io.Reader) ([]msgsource.RawEntry, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []msgsource.RawEntry{}, nil
		}
		return nil, &DecodeError{Format: YAML, Msg: "reading document", Cause: err}
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, &DecodeError{Format: YAML, Msg: "top-level value must be a mapping"}
	}

	entries := make([]msgsource.RawEntry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		var id string
		if err := keyNode.Decode(&id); err != nil {
			return nil, &DecodeError{Format: YAML, Msg: "reading message ID", Cause: err}
		}
		var v any
		if err := valueNode.Decode(&v); err != nil {
			return nil, &DecodeError{Format: YAML, Msg: "reading message " + id, Cause: err}
		}
		entries = append(entries, rawEntry(id, v))
	}
	return entries, nil
}

// encodeYAML writes the catalog as a mapping in catalog order.
func encodeYAML(w io.Writer, c *msgsource.Catalog) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for id, e := range c.All() {
		value := &yaml.Node{Kind: yaml.MappingNode}
		value.Content = append(value.Content, stringNode(msgsource.FieldMessage), stringNode(e.Message))
		if e.Comment != "" {
			value.Content = append(value.Content, stringNode(msgsource.FieldComment), stringNode(e.Comment))
		}
		root.Content = append(root.Content, stringNode(id), value)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
