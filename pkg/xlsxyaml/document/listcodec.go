package document

import (
	"strings"

	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/models"
)

// ListPrefix marks each line of a list-literal cell.
const ListPrefix = "- "

// IsList reports whether raw uses the list-literal convention.
// Only the first two characters decide; the shape of later lines is not checked.
func IsList(raw string) bool {
	return strings.HasPrefix(raw, ListPrefix)
}

// DecodeList returns the items of a list-literal text. Lines that do not start
// with the prefix, including empty lines, are dropped.
func DecodeList(raw string) []string {
	var items []string
	for _, line := range strings.Split(raw, "\n") {
		if !strings.HasPrefix(line, ListPrefix) {
			continue
		}
		items = append(items, strings.TrimSpace(line[len(ListPrefix):]))
	}
	return items
}

// EncodeList renders items as a list-literal text, one prefixed line per item.
// An empty list renders as "".
func EncodeList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return ListPrefix + strings.Join(items, "\n"+ListPrefix)
}

// DecodeValue turns raw cell text into a sequence when it is a list literal,
// and into a scalar otherwise.
func DecodeValue(raw string) models.Value {
	if IsList(raw) {
		return models.Sequence(DecodeList(raw)...)
	}
	return models.Scalar(raw)
}

// EncodeValue renders a leaf value as cell text. Nodes render as "".
func EncodeValue(v models.Value) string {
	if text, ok := v.Text(); ok {
		return text
	}
	if items, ok := v.Items(); ok {
		return EncodeList(items)
	}
	return ""
}
