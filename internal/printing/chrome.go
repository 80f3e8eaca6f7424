package printing

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// 10mm, the fixed page margin, expressed in inches.
const marginInches = 0.3937

// ChromeEngine drives a headless browser over the DevTools protocol.
// Each render gets its own browser context so a hung page cannot wedge
// later requests.
type ChromeEngine struct {
	log     *zap.Logger
	timeout time.Duration
}

func NewChromeEngine(log *zap.Logger, timeout time.Duration) *ChromeEngine {
	return &ChromeEngine{
		log:     log.Named("printing.chrome"),
		timeout: timeout,
	}
}

func (e *ChromeEngine) RenderPDF(ctx context.Context, html string, opts Options) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.NoSandbox,
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	dims := dimensionsFor(opts.PaperSize)
	width, height := dims.width, dims.height
	if opts.Landscape {
		width, height = height, width
	}

	started := time.Now()
	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithMarginRight(marginInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	e.log.Info("rendered pdf",
		zap.String("paper_size", opts.PaperSize),
		zap.Bool("landscape", opts.Landscape),
		zap.Int("bytes", len(pdf)),
		zap.Duration("took", time.Since(started)),
	)
	return pdf, nil
}
