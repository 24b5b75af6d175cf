// Package models defines data structures shared by the xlsx and yaml pipelines.
package models

import "fmt"

// Kind identifies which case of Value is populated.
type Kind int

const (
	// KindScalar is a single text value.
	KindScalar Kind = iota + 1
	// KindSequence is an ordered list of text values.
	KindSequence
	// KindNode is a nested Document.
	KindNode
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindNode:
		return "node"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a document value: exactly one of Scalar, Sequence or Node.
// The zero Value is invalid and reports Kind 0.
type Value struct {
	kind  Kind
	text  string
	items []string
	node  *Document
}

// Scalar returns a text value.
func Scalar(text string) Value {
	return Value{kind: KindScalar, text: text}
}

// Sequence returns a list value. The items are copied.
func Sequence(items ...string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{kind: KindSequence, items: cp}
}

// Node returns a nested document value. A nil doc is replaced by an empty one.
func Node(doc *Document) Value {
	if doc == nil {
		doc = NewDocument()
	}
	return Value{kind: KindNode, node: doc}
}

// Kind reports the case held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsLeaf reports whether v is a scalar or a sequence.
func (v Value) IsLeaf() bool {
	return v.kind == KindScalar || v.kind == KindSequence
}

// Text returns the scalar text and true, or "" and false for other kinds.
func (v Value) Text() (string, bool) {
	if v.kind != KindScalar {
		return "", false
	}
	return v.text, true
}

// Items returns a copy of the sequence items and true, or nil and false for other kinds.
func (v Value) Items() ([]string, bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	cp := make([]string, len(v.items))
	copy(cp, v.items)
	return cp, true
}

// Document returns the nested document and true, or nil and false for other kinds.
func (v Value) Document() (*Document, bool) {
	if v.kind != KindNode {
		return nil, false
	}
	return v.node, true
}

// Equal reports whether v and other hold the same kind and content.
// Nested documents are compared including key order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindScalar:
		return v.text == other.text
	case KindSequence:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if v.items[i] != other.items[i] {
				return false
			}
		}
		return true
	case KindNode:
		return v.node.Equal(other.node)
	default:
		return true
	}
}
