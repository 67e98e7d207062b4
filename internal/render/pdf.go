package render

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Letter paper in inches, portrait, half-inch margins.
const (
	paperWidthIn  = 8.5
	paperHeightIn = 11.0
	marginIn      = 0.5
)

// ChromePrinter prints HTML to PDF in a headless Chrome started per call.
type ChromePrinter struct {
	execPath string
	timeout  time.Duration
}

// NewChromePrinter returns a printer. An empty execPath lets chromedp locate Chrome on PATH.
func NewChromePrinter(execPath string, timeout time.Duration) *ChromePrinter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromePrinter{execPath: execPath, timeout: timeout}
}

// PrintPDF loads html into a blank tab and prints it.
func (p *ChromePrinter) PrintPDF(ctx context.Context, html []byte) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p.execPath != "" {
		opts = append(opts, chromedp.ExecPath(p.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, p.timeout)
	defer cancel()

	var out []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(false).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			out = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	return out, nil
}
