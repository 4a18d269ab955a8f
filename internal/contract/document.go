package contract

import (
	"regexp"
	"strings"
)

// Selections holds the user's chosen clause text per category. Completeness
// (all three non-empty) is enforced at the request boundary, not here.
type Selections struct {
	Payment  string `json:"payment"`
	Delivery string `json:"delivery"`
	Penalty  string `json:"penalty"`
}

// Missing returns the names of categories with no selected text.
func (s Selections) Missing() []string {
	var missing []string
	if strings.TrimSpace(s.Payment) == "" {
		missing = append(missing, "payment")
	}
	if strings.TrimSpace(s.Delivery) == "" {
		missing = append(missing, "delivery")
	}
	if strings.TrimSpace(s.Penalty) == "" {
		missing = append(missing, "penalty")
	}
	return missing
}

// DocSection is one block of the assembled document.
type DocSection struct {
	Heading    string
	Paragraphs []string
}

// Document is the assembled contract: parsed sections in original order
// with substitutions applied, then the fixed signature block.
type Document struct {
	Sections []DocSection
}

// SignaturesTitle heads the fixed block appended to every document.
const SignaturesTitle = "SIGNATURES"

var signatureParagraphs = []string{
	"Client: _______________________   Date: ____________",
	"Provider: _____________________   Date: ____________",
}

// Title matching is substring-based and case-sensitive; the markers line up
// with the headings the synthesized base contract carries.
const (
	markerPayment  = "PAYMENT"
	markerDelivery = "DELIVERY"
	markerPenalty  = "PENALTIES"
)

// BuildDocument parses the contract text and rebuilds it with the selected
// clause text substituted into the matching sections. Sections whose title
// matches no marker keep their original body, reformatted into per-sentence
// paragraphs like everything else.
func BuildDocument(contractText string, sel Selections) Document {
	var doc Document
	for _, sec := range ParseSections(contractText) {
		body := sec.Body
		switch {
		case strings.Contains(sec.Title, markerPayment) && sel.Payment != "":
			body = sel.Payment
		case strings.Contains(sec.Title, markerDelivery) && sel.Delivery != "":
			body = sel.Delivery
		case strings.Contains(sec.Title, markerPenalty) && sel.Penalty != "":
			body = sel.Penalty
		}
		doc.Sections = append(doc.Sections, DocSection{
			Heading:    sec.Title,
			Paragraphs: FormatClause(body),
		})
	}

	doc.Sections = append(doc.Sections, DocSection{
		Heading:    SignaturesTitle,
		Paragraphs: append([]string(nil), signatureParagraphs...),
	})
	return doc
}

var sentenceBoundaryRe = regexp.MustCompile(`\.\s+`)

// FormatClause reflows clause text into one paragraph per sentence. The text
// is re-sanitized, split on period-plus-whitespace boundaries, and each
// non-empty fragment is re-terminated with a single period.
func FormatClause(text string) []string {
	clean := Sanitize(text)
	if clean == "" {
		return nil
	}

	var paragraphs []string
	for _, frag := range sentenceBoundaryRe.Split(clean, -1) {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		if !strings.HasSuffix(frag, ".") {
			frag += "."
		}
		paragraphs = append(paragraphs, frag)
	}
	return paragraphs
}
