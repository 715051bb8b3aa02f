// Package extract converts uploaded resume documents (PDF, DOCX, plain text)
// into normalized plain text ready for parsing.
package extract

import (
	"regexp"
	"strings"
)

var (
	spaceRuns    = regexp.MustCompile(`[ \t]+`)
	blankLineRun = regexp.MustCompile(`\n{3,}`)
)

// Normalize canonicalizes whitespace in extracted text: line endings become
// \n, runs of spaces and tabs collapse to a single space, every line is
// trimmed, runs of blank lines collapse to one blank line, and the result
// carries no leading or trailing whitespace. Normalize is idempotent.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = spaceRuns.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	text = blankLineRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
