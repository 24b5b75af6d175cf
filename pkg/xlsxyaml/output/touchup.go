package output

import (
	"regexp"
	"strings"
)

const childIndent = "  "

// blockHeader matches a line that opens a block scalar: the style indicator
// follows a mapping key or sequence dashes and only hints come after it.
var blockHeader = regexp.MustCompile(`(^ *(?:- +)*|: +)([>|])([1-9][-+]?|[-+][1-9]?)?$`)

// leadingDashes matches the indentation and sequence dashes before a node.
var leadingDashes = regexp.MustCompile(`^ *(?:- +)*`)

// TouchUp applies UseLiteralBlocks and then SeparateTopLevel.
func TouchUp(text string) string {
	return SeparateTopLevel(UseLiteralBlocks(text))
}

// UseLiteralBlocks turns folded block scalars (">-") into literal ones ("|-")
// so multi-line values keep their line breaks. Only block headers change;
// scalar text containing ">-" and the content of block scalars are left alone.
func UseLiteralBlocks(text string) string {
	lines := strings.Split(text, "\n")
	inBlock, parent := false, 0
	for i, line := range lines {
		if inBlock {
			if isBlankLine(line) || indentOf(line) > parent {
				continue
			}
			inBlock = false
		}

		m := blockHeader.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		if line[m[4]] == '>' {
			lines[i] = line[:m[4]] + "|" + line[m[5]:]
		}

		inBlock = true
		if line[m[2]] == ':' {
			parent = len(leadingDashes.FindString(line))
		} else {
			parent = max(strings.LastIndexByte(line[:m[3]], '-'), indentOf(line))
		}
	}
	return strings.Join(lines, "\n")
}

// SeparateTopLevel puts exactly one blank line between consecutive top-level
// lines. Existing blank lines are removed first unless the next non-blank line
// is indented, in which case they belong to a block scalar and are kept.
// Applying it to its own output changes nothing.
func SeparateTopLevel(text string) string {
	lines := strings.Split(text, "\n")

	kept := make([]string, 0, len(lines))
	for i, line := range lines {
		if isBlankLine(line) && !nextContentIndented(lines, i+1) {
			continue
		}
		kept = append(kept, line)
	}

	out := make([]string, 0, len(kept)*2)
	for i, line := range kept {
		out = append(out, line)
		if isBlankLine(line) || i+1 >= len(kept) {
			continue
		}
		next := kept[i+1]
		if !isBlankLine(next) && !isIndented(next) {
			out = append(out, "")
		}
	}

	return strings.Join(out, "\n")
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, childIndent)
}

// nextContentIndented reports whether the first non-blank line at or after
// lines[from] is indented.
func nextContentIndented(lines []string, from int) bool {
	for _, line := range lines[from:] {
		if !isBlankLine(line) {
			return isIndented(line)
		}
	}
	return false
}
