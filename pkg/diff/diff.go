package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Lines compares two texts line by line and renders the result with
// "--- from" / "+++ to" headers and " ", "-", "+" line prefixes. Identical
// inputs yield an empty string. Output longer than 10,000 lines is cut off
// with a marker.
func Lines(from, to, fromLabel, toLabel string) string {
	if from == to {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var buf strings.Builder
	buf.WriteString("--- " + fromLabel + "\n")
	buf.WriteString("+++ " + toLabel + "\n")

	written := 2
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			if written == maxDiffLines {
				buf.WriteString(truncateMessage + "\n")
				return buf.String()
			}
			buf.WriteString(prefix + line + "\n")
			written++
		}
	}
	return buf.String()
}

// Changed returns only the removed and added lines of Lines, without headers
// or context.
func Changed(from, to string) []string {
	out := Lines(from, to, "", "")
	if out == "" {
		return nil
	}
	var changed []string
	for _, line := range splitLines(out)[2:] {
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "+") {
			changed = append(changed, line)
		}
	}
	return changed
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
