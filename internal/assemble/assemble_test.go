package assemble

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"

	"github.com/accordohq/accordo/internal/artifact"
	"github.com/accordohq/accordo/internal/contract"
)

type fakeEngine struct {
	data  []byte
	err   error
	pages []string
}

func (f *fakeEngine) Render(ctx context.Context, page string) ([]byte, error) {
	f.pages = append(f.pages, page)
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDocument() contract.Document {
	return contract.Document{Sections: []contract.DocSection{
		{Heading: "PAYMENT TERMS", Paragraphs: []string{"Pay within 30 days.", "Wire transfer only."}},
		{Heading: "DELIVERY TIME", Paragraphs: []string{"Deliver within 14 days."}},
		{Heading: "SIGNATURES", Paragraphs: []string{"Client: ___", "Provider: ___"}},
	}}
}

func TestBuildMarkdown(t *testing.T) {
	md := BuildMarkdown(testDocument())

	if !strings.HasPrefix(md, "# CONTRACT\n\n") {
		t.Errorf("missing document title: %q", md)
	}
	for _, want := range []string{
		"## PAYMENT TERMS\n\nPay within 30 days.\n\nWire transfer only.\n\n",
		"## DELIVERY TIME\n\nDeliver within 14 days.\n\n",
		"## SIGNATURES\n\n",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Index(md, "## PAYMENT TERMS") > strings.Index(md, "## DELIVERY TIME") {
		t.Errorf("section order not preserved:\n%s", md)
	}
}

func TestMarkdownToHTML(t *testing.T) {
	out, err := markdownToHTML("## HEADING\n\nA paragraph.\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<h2>HEADING</h2>") {
		t.Errorf("heading not converted: %q", out)
	}
	if !strings.Contains(out, "<p>A paragraph.</p>") {
		t.Errorf("paragraph not converted: %q", out)
	}
}

func TestWrapHTMLStructure(t *testing.T) {
	generated := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)
	body, err := markdownToHTML(BuildMarkdown(testDocument()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page := WrapHTML(body, generated)

	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("wrapped page does not parse: %v", err)
	}

	headings := collectText(root, "h2")
	want := []string{"Table of Contents", "PAYMENT TERMS", "DELIVERY TIME", "SIGNATURES"}
	if len(headings) != len(want) {
		t.Fatalf("expected h2 headings %q, got %q", want, headings)
	}
	for i := range want {
		if headings[i] != want[i] {
			t.Errorf("h2[%d]: expected %q, got %q", i, want[i], headings[i])
		}
	}

	// The ToC nav is a structural placeholder: present, but with no entries.
	navs := findElements(root, "nav")
	if len(navs) != 1 {
		t.Fatalf("expected exactly 1 nav, got %d", len(navs))
	}
	if items := findElements(navs[0], "li"); len(items) != 0 {
		t.Errorf("expected empty table of contents, got %d entries", len(items))
	}

	if !strings.Contains(page, "Generated by Accordo") {
		t.Errorf("footer attribution missing")
	}
	if !strings.Contains(page, "3/7/2026") {
		t.Errorf("generation date missing")
	}
}

func TestAssembleStoresArtifact(t *testing.T) {
	dir := t.TempDir()
	store, err := artifact.NewStore(dir)
	if err != nil {
		t.Fatalf("store init: %v", err)
	}
	engine := &fakeEngine{data: []byte("%PDF-1.7 fake")}
	asm := NewAssembler(engine, store, discardLogger())

	ref, err := asm.Assemble(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const prefix = "/api/download?file=contract_"
	if !strings.HasPrefix(ref, prefix) || !strings.HasSuffix(ref, ".pdf") {
		t.Fatalf("unexpected artifact reference: %q", ref)
	}

	name := strings.TrimPrefix(ref, "/api/download?file=")
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("stored artifact unreadable: %v", err)
	}
	if string(data) != "%PDF-1.7 fake" {
		t.Errorf("stored bytes differ from rendered bytes: %q", data)
	}

	if len(engine.pages) != 1 {
		t.Fatalf("expected 1 render call, got %d", len(engine.pages))
	}
	if !strings.Contains(engine.pages[0], "<h2>PAYMENT TERMS</h2>") {
		t.Errorf("rendered page missing section heading")
	}
}

func TestAssembleRenderFailureStoresNothing(t *testing.T) {
	dir := t.TempDir()
	store, err := artifact.NewStore(dir)
	if err != nil {
		t.Fatalf("store init: %v", err)
	}
	engine := &fakeEngine{err: errors.New("render crashed")}
	asm := NewAssembler(engine, store, discardLogger())

	if _, err := asm.Assemble(context.Background(), testDocument()); err == nil {
		t.Fatal("expected error from failed render")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no stored artifacts after failure, found %d", len(entries))
	}
}

func collectText(n *html.Node, tag string) []string {
	var out []string
	for _, el := range findElements(n, tag) {
		out = append(out, strings.TrimSpace(textContent(el)))
	}
	return out
}

func findElements(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	if n.Type == html.ElementNode && n.Data == tag {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, findElements(c, tag)...)
	}
	return out
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
