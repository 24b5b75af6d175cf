package parser

import (
	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/models"
	"gopkg.in/yaml.v3"
)

// mergeTag marks a "<<" merge key.
const mergeTag = "!!merge"

// ParseDocument decodes a yaml document into a Document, keeping key order.
// Any scalar becomes text and null values are dropped. An empty input yields an
// empty document; a root that is not a mapping, or a list holding anything but
// scalars, is malformed.
func ParseDocument(name string, data []byte) (*models.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, models.NewMalformedError(name, "invalid yaml: %v", err)
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		return models.NewDocument(), nil
	}

	top := resolve(root.Content[0])
	if top.Kind == yaml.ScalarNode && top.ShortTag() == "!!null" {
		return models.NewDocument(), nil
	}
	if top.Kind != yaml.MappingNode {
		return nil, models.NewMalformedError(name, "root must be a mapping, found %s", kindName(top.Kind))
	}

	d := &decoder{name: name, active: make(map[*yaml.Node]bool)}
	doc := models.NewDocument()
	if err := d.mapping(top, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// maxNodes bounds how many nodes a document may expand to once aliases are
// followed.
const maxNodes = 1_000_000

// decoder walks a node tree. active holds the collections being decoded so an
// alias pointing back into one of them is reported instead of recursing.
type decoder struct {
	name     string
	active   map[*yaml.Node]bool
	expanded int
}

func (d *decoder) enter(n *yaml.Node) error {
	if d.active[n] {
		return models.NewMalformedError(d.name, "line %d: alias refers to itself", n.Line)
	}
	d.active[n] = true
	return nil
}

func (d *decoder) leave(n *yaml.Node) { delete(d.active, n) }

func (d *decoder) count(n *yaml.Node) error {
	d.expanded++
	if d.expanded > maxNodes {
		return models.NewMalformedError(d.name, "line %d: document expands to more than %d nodes", n.Line, maxNodes)
	}
	return nil
}

func (d *decoder) mapping(n *yaml.Node, doc *models.Document) error {
	if err := d.enter(n); err != nil {
		return err
	}
	defer d.leave(n)

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := resolve(n.Content[i]), resolve(n.Content[i+1])
		if k.Kind != yaml.ScalarNode {
			return models.NewMalformedError(d.name, "line %d: mapping key must be a scalar", k.Line)
		}
		if err := d.count(k); err != nil {
			return err
		}

		if k.ShortTag() == mergeTag {
			if err := d.merge(v, doc); err != nil {
				return err
			}
			continue
		}

		val, ok, err := d.value(v)
		if err != nil {
			return err
		}
		if ok {
			doc.Set(k.Value, val)
		}
	}
	return nil
}

// merge copies keys from merged mappings that doc does not define yet.
func (d *decoder) merge(v *yaml.Node, doc *models.Document) error {
	sources := []*yaml.Node{v}
	if v.Kind == yaml.SequenceNode {
		if err := d.enter(v); err != nil {
			return err
		}
		defer d.leave(v)
		sources = v.Content
	}
	for _, src := range sources {
		src = resolve(src)
		if src.Kind != yaml.MappingNode {
			return models.NewMalformedError(d.name, "line %d: merge source must be a mapping", src.Line)
		}
		merged := models.NewDocument()
		if err := d.mapping(src, merged); err != nil {
			return err
		}
		for key, val := range merged.All() {
			if _, exists := doc.Get(key); !exists {
				doc.Set(key, val)
			}
		}
	}
	return nil
}

func (d *decoder) value(v *yaml.Node) (models.Value, bool, error) {
	switch v.Kind {
	case yaml.ScalarNode:
		if err := d.count(v); err != nil {
			return models.Value{}, false, err
		}
		if v.ShortTag() == "!!null" {
			return models.Value{}, false, nil
		}
		return models.Scalar(v.Value), true, nil
	case yaml.SequenceNode:
		if err := d.enter(v); err != nil {
			return models.Value{}, false, err
		}
		defer d.leave(v)

		items := make([]string, 0, len(v.Content))
		for _, item := range v.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return models.Value{}, false, models.NewMalformedError(d.name, "line %d: list items must be scalars", item.Line)
			}
			if err := d.count(item); err != nil {
				return models.Value{}, false, err
			}
			if item.ShortTag() == "!!null" {
				items = append(items, "")
				continue
			}
			items = append(items, item.Value)
		}
		return models.Sequence(items...), true, nil
	case yaml.MappingNode:
		child := models.NewDocument()
		if err := d.mapping(v, child); err != nil {
			return models.Value{}, false, err
		}
		return models.Node(child), true, nil
	default:
		return models.Value{}, false, models.NewMalformedError(d.name, "line %d: unsupported %s", v.Line, kindName(v.Kind))
	}
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "empty node"
	}
}
