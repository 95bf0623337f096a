package msgsource

// Field names understood in RawEntry.Fields.
const (
	FieldMessage = "message"
	FieldComment = "comment"
)

// RawEntry is a loosely typed message as decoded from an external document.
// Fields is nil when the decoded value was not an object.
type RawEntry struct {
	ID     string
	Fields map[string]any
}

// ToCatalog validates raw entries and converts them to a catalog, keeping
// their order. The first invalid entry is reported as a *ValidationError.
func ToCatalog(entries []RawEntry) (*Catalog, error) {
	c := NewCatalog()
	for _, raw := range entries {
		e, err := raw.entry()
		if err != nil {
			return nil, err
		}
		c.Set(raw.ID, e)
	}
	return c, nil
}

func (r RawEntry) entry() (Entry, error) {
	v, ok := r.Fields[FieldMessage]
	if !ok {
		return Entry{}, &ValidationError{ID: r.ID, Reason: `"message" key is missing`}
	}
	msg, ok := v.(string)
	if !ok {
		return Entry{}, &ValidationError{ID: r.ID, Reason: "message is not a string"}
	}

	e := Entry{Message: msg}
	if v, ok := r.Fields[FieldComment]; ok {
		comment, ok := v.(string)
		if !ok {
			return Entry{}, &ValidationError{ID: r.ID, Reason: "comment is not a string"}
		}
		e.Comment = comment
	}
	return e, nil
}
