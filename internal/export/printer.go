package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ReleaseTimeout bounds how long a temporary report file may outlive the
// print flow if completion is never observed.
const ReleaseTimeout = 30 * time.Second

// Printer drives a headless browser to turn a report document into a PDF.
type Printer struct {
	execPath string
	timeout  time.Duration
	logger   *slog.Logger
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithExecPath pins the browser binary instead of letting chromedp discover one.
func WithExecPath(path string) PrinterOption {
	return func(p *Printer) {
		p.execPath = path
	}
}

// WithTimeout bounds the whole print flow.
func WithTimeout(d time.Duration) PrinterOption {
	return func(p *Printer) {
		p.timeout = d
	}
}

// WithLogger injects a logger.
func WithLogger(l *slog.Logger) PrinterOption {
	return func(p *Printer) {
		p.logger = l
	}
}

// NewPrinter creates a printer.
func NewPrinter(opts ...PrinterOption) *Printer {
	p := &Printer{
		timeout: ReleaseTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PrintPDF renders the given HTML document and returns the PDF bytes.
// The document is staged in a temporary file served over file://; the file is
// released exactly once, either when printing finishes or by a deferred
// fallback if the completion path never runs.
func (p *Printer) PrintPDF(ctx context.Context, html string) ([]byte, error) {
	tmp, err := os.CreateTemp("", "ishikawa-report-*.html")
	if err != nil {
		return nil, fmt.Errorf("stage report: %w", err)
	}
	path := tmp.Name()

	release := releaseOnce(path, p.logger)
	timer := time.AfterFunc(ReleaseTimeout, release)
	defer timer.Stop()
	defer release()

	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("stage report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("stage report: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if p.execPath != "" {
		opts = append(opts, chromedp.ExecPath(p.execPath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+path),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}

	p.logger.Info("report printed", "bytes", len(pdf))
	return pdf, nil
}

// releaseOnce returns an idempotent cleanup for the staged report file, safe
// to call from both the primary path and the timeout fallback.
func releaseOnce(path string, logger *slog.Logger) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				logger.Warn("failed to release report file", "path", path, "error", err)
			}
		})
	}
}
