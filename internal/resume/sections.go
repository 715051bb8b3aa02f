package resume

import (
	"strings"

	"github.com/jonathan/ats-scorer/internal/patterns"
)

// splitSections walks the resume line by line and groups content under
// detected section headers. Content before the first recognized header is
// collected under the implicit "header" section. A line is a header when,
// after stripping decorating punctuation, it matches one of the known section
// patterns; patterns are tried in a fixed order and the first match wins.
// If the same section name appears twice, the later occurrence replaces the
// earlier one.
func splitSections(text string) map[string]string {
	sections := make(map[string]string)

	current := "header"
	var buf []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		if content != "" {
			sections[current] = content
		}
		buf = buf[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if name, ok := detectHeader(line); ok {
			flush()
			current = name
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return sections
}

func detectHeader(line string) (string, bool) {
	stripped := strings.TrimSpace(patterns.HeaderPunct.ReplaceAllString(line, ""))
	if stripped == "" {
		return "", false
	}
	for _, sp := range patterns.SectionPatterns {
		if sp.Re.MatchString(stripped) {
			return sp.Name, true
		}
	}
	return "", false
}
