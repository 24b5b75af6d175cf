// Package document builds nested documents from dotted keys and flattens them back.
package document

import "strings"

// KeySeparator separates the segments of a compound key.
const KeySeparator = "."

// ParseKey splits a compound key into its path segments.
// There is no escaping, so a segment never contains a dot. Empty segments
// produced by leading, trailing or doubled dots are kept as "".
func ParseKey(key string) []string {
	return strings.Split(key, KeySeparator)
}

// JoinKey joins path segments into a compound key. An empty parent is omitted.
func JoinKey(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + KeySeparator + child
}
