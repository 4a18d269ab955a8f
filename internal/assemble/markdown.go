package assemble

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/accordohq/accordo/internal/contract"
	"github.com/yuin/goldmark"
)

// BuildMarkdown renders the assembled document as markdown: a fixed title,
// then one level-2 heading plus paragraph blocks per section.
func BuildMarkdown(doc contract.Document) string {
	var sb strings.Builder
	sb.WriteString("# CONTRACT\n\n")
	for _, sec := range doc.Sections {
		sb.WriteString(fmt.Sprintf("## %s\n\n", sec.Heading))
		for _, para := range sec.Paragraphs {
			sb.WriteString(para)
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// markdownToHTML converts markdown to an HTML fragment with goldmark.
func markdownToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
