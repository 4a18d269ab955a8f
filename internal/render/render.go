// Package render drives the external rendering engine that turns styled
// markup into a paged PDF binary.
package render

import "context"

// Engine renders a complete HTML page into a PDF binary.
type Engine interface {
	Render(ctx context.Context, page string) ([]byte, error)
}
