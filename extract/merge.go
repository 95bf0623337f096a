package extract

import "github.com/ZaguanLabs/msgsource"

// Merge returns a copy of base with the found messages added after the
// existing entries. An existing ID keeps its translation and comment unless
// overwrite is set.
func Merge(base *msgsource.Catalog, found []Message, overwrite bool) *msgsource.Catalog {
	out := base.Clone()
	for _, m := range found {
		if _, ok := out.Get(m.ID); ok && !overwrite {
			continue
		}
		out.Set(m.ID, msgsource.Entry{Message: m.Text, Comment: m.Comment})
	}
	return out
}
