package contract

import "strings"

// PreambleTitle names the implicit section collecting body text that appears
// before the first recognized heading.
const PreambleTitle = "Preamble"

// Section is a titled span of contract text.
type Section struct {
	Title string
	Body  string
}

// ParseSections splits sanitized contract text into titled sections, in
// order of appearance. A line is a heading iff it is non-empty, contains no
// lower-case letters (equals its own upper-casing) and ends with a colon.
// The heuristic is deliberately permissive: an all-caps quoted clause ending
// in a colon becomes a section boundary too. Downstream substitution
// matching depends on exactly this shape, so it must not be "improved".
func ParseSections(text string) []Section {
	clean := Sanitize(text)

	var sections []Section
	current := PreambleTitle
	var buf []string

	flush := func() {
		if len(buf) > 0 {
			sections = append(sections, Section{
				Title: current,
				Body:  strings.Join(buf, "\n\n"),
			})
		}
	}

	for _, line := range strings.Split(clean, "\n") {
		line = strings.TrimSpace(line)
		if isHeading(line) {
			flush()
			current = strings.TrimSuffix(line, ":")
			buf = nil
		} else if line != "" {
			buf = append(buf, line)
		}
	}
	flush()

	return sections
}

func isHeading(line string) bool {
	return line != "" && line == strings.ToUpper(line) && strings.HasSuffix(line, ":")
}
