package models

import "iter"

// Document is a string-keyed mapping that remembers insertion order.
// Replacing the value of an existing key keeps the key's original position.
type Document struct {
	keys   []string
	values map[string]Value
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{values: make(map[string]Value)}
}

// Len returns the number of keys.
func (d *Document) Len() int {
	return len(d.keys)
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (Value, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Set stores v under key.
func (d *Document) Set(key string, v Value) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
}

// Keys returns the keys in insertion order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// All iterates over the entries in insertion order.
func (d *Document) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range d.keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

// Equal reports whether both documents hold the same keys, in the same order,
// with equal values.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.keys) != len(other.keys) {
		return false
	}
	for i, k := range d.keys {
		if other.keys[i] != k {
			return false
		}
		if !d.values[k].Equal(other.values[k]) {
			return false
		}
	}
	return true
}
