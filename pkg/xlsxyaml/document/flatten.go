package document

import (
	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/models"
)

// Flatten walks doc depth-first in insertion order and returns one entry per
// leaf, keyed by its dotted path. Entries below the same top-level key share a
// Group index.
func Flatten(doc *models.Document) []models.Entry {
	var out []models.Entry
	group := 0
	for key, v := range doc.All() {
		n := len(out)
		out = flattenValue(out, key, v, group)
		if len(out) > n {
			group++
		}
	}
	return out
}

func flattenValue(out []models.Entry, key string, v models.Value, group int) []models.Entry {
	child, ok := v.Document()
	if !ok {
		return append(out, models.Entry{Key: key, Value: v, Group: group})
	}
	for k, cv := range child.All() {
		out = flattenValue(out, JoinKey(key, k), cv, group)
	}
	return out
}

// CellText returns the text written to the value cell of e.
func CellText(e models.Entry) string {
	return EncodeValue(e.Value)
}
