// Package output renders documents as yaml text and flattened entries as worksheets.
package output

import (
	"bytes"
	"strings"

	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/models"
	"gopkg.in/yaml.v3"
)

// Indent is the indentation width of generated yaml.
const Indent = 2

// EncodeYAML serializes doc with keys in insertion order.
func EncodeYAML(doc *models.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(Indent)
	if err := enc.Encode(documentNode(doc)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderYAML serializes doc and applies TouchUp. The result ends with a newline.
func RenderYAML(doc *models.Document) ([]byte, error) {
	raw, err := EncodeYAML(doc)
	if err != nil {
		return nil, err
	}
	text := TouchUp(strings.TrimSpace(string(raw)))
	return []byte(text + "\n"), nil
}

func documentNode(doc *models.Document) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for key, v := range doc.All() {
		n.Content = append(n.Content, stringNode(key), valueNode(v))
	}
	return n
}

func valueNode(v models.Value) *yaml.Node {
	if child, ok := v.Document(); ok {
		return documentNode(child)
	}
	if items, ok := v.Items(); ok {
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range items {
			n.Content = append(n.Content, stringNode(item))
		}
		return n
	}
	text, _ := v.Text()
	return stringNode(text)
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
