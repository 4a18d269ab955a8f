// Package assemble turns an assembled contract document into styled markup,
// renders it through the external engine, and persists the resulting
// artifact under a retrievable reference.
package assemble

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/accordohq/accordo/internal/artifact"
	"github.com/accordohq/accordo/internal/contract"
	"github.com/accordohq/accordo/internal/render"
)

// Assembler renders documents and stores the binaries.
type Assembler struct {
	engine render.Engine
	store  *artifact.Store
	log    *slog.Logger
}

func NewAssembler(engine render.Engine, store *artifact.Store, log *slog.Logger) *Assembler {
	return &Assembler{engine: engine, store: store, log: log}
}

// Assemble renders the document and returns the reference string the
// download endpoint resolves. Any markup or rendering failure propagates:
// either a complete artifact reference is returned, or nothing is stored.
func (a *Assembler) Assemble(ctx context.Context, doc contract.Document) (string, error) {
	body, err := markdownToHTML(BuildMarkdown(doc))
	if err != nil {
		return "", fmt.Errorf("build markup: %w", err)
	}
	page := WrapHTML(body, time.Now())

	pdf, err := a.engine.Render(ctx, page)
	if err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}

	name := artifact.NewName()
	if err := a.store.Save(name, pdf); err != nil {
		return "", fmt.Errorf("store artifact: %w", err)
	}

	a.log.Info("contract assembled", "artifact", name, "sections", len(doc.Sections), "bytes", len(pdf))
	return "/api/download?file=" + name, nil
}
