// Package doccheck verifies that an uploaded contract is readable as a PDF
// or DOCX document. It is a yes/no gate: the extracted content is discarded,
// since the negotiation pipeline works on a synthesized base contract.
package doccheck

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
	pdflib "github.com/ledongthuc/pdf"
)

// SupportedExtensions lists file extensions this service accepts.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Validate checks that data is a well-formed document of the type its
// filename claims. A nil return means the upload passes the gate.
func Validate(data []byte, filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return validatePDF(data)
	case ".docx":
		return validateDOCX(data)
	default:
		return fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

func validatePDF(data []byte) error {
	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("read pdf: %w", err)
	}
	if reader.NumPage() < 1 {
		return fmt.Errorf("pdf has no pages")
	}
	return nil
}

func validateDOCX(data []byte) error {
	if _, err := docx.Parse(bytes.NewReader(data), int64(len(data))); err != nil {
		return fmt.Errorf("parse docx: %w", err)
	}
	return nil
}
