package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ChromeEngine renders HTML to PDF through a headless Chrome instance. The
// browser is launched lazily on first render and reused afterwards.
type ChromeEngine struct {
	log     *slog.Logger
	timeout time.Duration

	mu      sync.Mutex
	lnch    *launcher.Launcher
	browser *rod.Browser
}

func NewChromeEngine(log *slog.Logger, timeout time.Duration) *ChromeEngine {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromeEngine{log: log, timeout: timeout}
}

// Render writes the page to a temp file, navigates a fresh tab to it, and
// prints to PDF with fixed page parameters: A4, 2 cm margins, background
// graphics, CSS page size preferred. The output is validated before being
// returned so a broken print never becomes a stored artifact.
func (e *ChromeEngine) Render(ctx context.Context, page string) ([]byte, error) {
	tmp, err := os.CreateTemp("", "accordo-contract-*.html")
	if err != nil {
		return nil, fmt.Errorf("render: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(page); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("render: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("render: close temp file: %w", err)
	}

	browser, err := e.connect()
	if err != nil {
		return nil, err
	}

	renderCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	tab, err := browser.Page(proto.TargetCreateTarget{URL: ""})
	if err != nil {
		return nil, fmt.Errorf("render: create tab: %w", err)
	}
	defer tab.Close()

	if err := tab.Context(renderCtx).Navigate("file://" + tmpPath); err != nil {
		return nil, fmt.Errorf("render: navigate: %w", err)
	}
	if err := tab.Context(renderCtx).WaitLoad(); err != nil {
		return nil, fmt.Errorf("render: wait load: %w", err)
	}

	stream, err := tab.Context(renderCtx).PDF(pageParams())
	if err != nil {
		return nil, fmt.Errorf("render: print to pdf: %w", err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("render: read pdf stream: %w", err)
	}

	pages, err := validatePDF(data)
	if err != nil {
		return nil, fmt.Errorf("render: invalid pdf output: %w", err)
	}
	e.log.Info("rendered contract pdf", "bytes", len(data), "pages", pages)
	return data, nil
}

func pageParams() *proto.PagePrintToPDF {
	const marginInches = 2.0 / 2.54 // 2 cm
	return &proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
		Scale:             f64(1.0),
		PaperWidth:        f64(8.27),
		PaperHeight:       f64(11.69),
		MarginTop:         f64(marginInches),
		MarginBottom:      f64(marginInches),
		MarginLeft:        f64(marginInches),
		MarginRight:       f64(marginInches),
	}
}

func f64(v float64) *float64 { return &v }

func validatePDF(data []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return 0, err
	}
	return pdfCtx.PageCount, nil
}

func (e *ChromeEngine) connect() (*rod.Browser, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browser != nil {
		return e.browser, nil
	}

	l := launcher.New().Headless(true)
	wsURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("render: launch chrome: %w", err)
	}

	b := rod.New().ControlURL(wsURL)
	if err := b.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("render: connect chrome: %w", err)
	}

	e.lnch = l
	e.browser = b
	e.log.Info("launched rendering engine", "url", wsURL)
	return b, nil
}

// Close shuts down the browser if one was launched.
func (e *ChromeEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browser != nil {
		if err := e.browser.Close(); err != nil {
			e.log.Warn("browser close failed", "error", err)
		}
		e.browser = nil
	}
	if e.lnch != nil {
		e.lnch.Cleanup()
		e.lnch = nil
	}
}
