package scanner

import "strings"

// Line is one normalized source line. Ordering is source order;
// nesting is derived from order plus indent comparison, so a Line is
// never mutated once produced.
type Line struct {
	Num     int    // 1-based line number in the original source
	Indent  int    // count of leading whitespace characters
	Content string // trimmed text with any comment suffix removed
}

// Scan normalizes raw source into the ordered Line sequence. Comment
// suffixes (// to end of line) are stripped, blank lines discarded.
// Line numbers keep their gaps where comment-only lines were dropped.
func Scan(src string) []Line {
	var lines []Line

	for num, raw := range strings.Split(src, "\n") {
		if at := strings.Index(raw, "//"); at >= 0 {
			raw = raw[:at]
		}

		content := strings.TrimSpace(raw)
		if content == "" {
			continue
		}

		indent := len(raw) - len(strings.TrimLeft(raw, " \t"))
		lines = append(lines, Line{Num: num + 1, Indent: indent, Content: content})
	}

	return lines
}

// Cut splits a line's content into its leading word and the trimmed
// remainder, for keyword dispatch.
func Cut(content string) (head, rest string) {
	head, rest, _ = strings.Cut(content, " ")
	return head, strings.TrimSpace(rest)
}
