package document

import (
	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/models"
)

// Insert stores raw at path, decoding it with the list-literal convention.
func Insert(doc *models.Document, path []string, raw string) error {
	return InsertValue(doc, path, DecodeValue(raw))
}

// InsertValue stores v at path. Missing intermediate nodes are created and
// existing ones are reused. The value at the final segment is replaced, so the
// last write to a path wins. Descending through a scalar or a sequence fails
// with a *models.ConflictError.
func InsertValue(doc *models.Document, path []string, v models.Value) error {
	if len(path) == 0 {
		return nil
	}

	cur := doc
	for i, seg := range path[:len(path)-1] {
		existing, ok := cur.Get(seg)
		if !ok {
			next := models.NewDocument()
			cur.Set(seg, models.Node(next))
			cur = next
			continue
		}
		next, isNode := existing.Document()
		if !isNode {
			return &models.ConflictError{
				Path:     append([]string(nil), path[:i+1]...),
				Existing: existing.Kind(),
			}
		}
		cur = next
	}

	cur.Set(path[len(path)-1], v)
	return nil
}

// FromPairs builds a document from fixed-mode (key, text) pairs in row order.
func FromPairs(pairs []models.Pair) (*models.Document, error) {
	doc := models.NewDocument()
	for _, p := range pairs {
		if err := Insert(doc, ParseKey(p.Key), p.Text); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// FromKeyedRows builds a document from header-keyed rows in row order. Each row
// becomes a node of header -> value stored at the row key's path; a later row
// with the same key replaces the earlier node as a whole.
func FromKeyedRows(rows []models.KeyedRow) (*models.Document, error) {
	doc := models.NewDocument()
	for _, row := range rows {
		node := models.NewDocument()
		for _, c := range row.Cells {
			node.Set(c.Header, DecodeValue(c.Text))
		}
		if err := InsertValue(doc, ParseKey(row.Key), models.Node(node)); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
