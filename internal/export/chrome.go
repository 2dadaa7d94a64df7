package export

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultBrowserTimeout bounds one browser session
const DefaultBrowserTimeout = 60 * time.Second

// ChromeBrowser drives a headless Chrome through chromedp. Each call starts its own browser.
type ChromeBrowser struct {
	// ExecPath is the Chrome binary; empty lets chromedp find one
	ExecPath string
	Timeout  time.Duration
}

// NewChromeBrowser creates a ChromeBrowser
func NewChromeBrowser(execPath string, timeout time.Duration) *ChromeBrowser {
	if timeout <= 0 {
		timeout = DefaultBrowserTimeout
	}
	return &ChromeBrowser{ExecPath: execPath, Timeout: timeout}
}

// FindChrome returns the path of an installed Chrome or Chromium, checking CHROME_PATH first
func FindChrome() (string, bool) {
	if p := os.Getenv("CHROME_PATH"); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "chrome"} {
		if p, err := exec.LookPath(name); err == nil {
			return p, true
		}
	}
	return "", false
}

// run loads page from a temporary file and runs actions against it
func (b *ChromeBrowser) run(ctx context.Context, html []byte, actions ...chromedp.Action) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if b.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(b.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, b.Timeout)
	defer cancel()

	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	pagePath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(pagePath, html, 0o600); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	// Navigate returns after the load event, so images are decoded by the time actions run
	all := append([]chromedp.Action{
		chromedp.Navigate("file://" + pagePath),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}, actions...)

	if err := chromedp.Run(browserCtx, all...); err != nil {
		return fmt.Errorf("browser session failed: %w", err)
	}
	return nil
}

// Screenshot captures the selected element at opts.Scale
func (b *ChromeBrowser) Screenshot(ctx context.Context, html []byte, opts ScreenshotOptions) ([]byte, error) {
	var buf []byte
	err := b.run(ctx, html,
		chromedp.EmulateViewport(opts.ViewportWidth, 1000),
		chromedp.WaitVisible(opts.Selector, chromedp.ByQuery),
		chromedp.ScreenshotScale(opts.Selector, opts.Scale, &buf, chromedp.ByQuery),
	)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// PrintPDF prints the page to PDF
func (b *ChromeBrowser) PrintPDF(ctx context.Context, html []byte, opts PrintOptions) ([]byte, error) {
	var buf []byte
	err := b.run(ctx, html,
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPrintBackground(opts.PrintBackground).
				WithPaperWidth(opts.PaperWidth).
				WithPaperHeight(opts.PaperHeight).
				WithMarginTop(opts.Margin).
				WithMarginBottom(opts.Margin).
				WithMarginLeft(opts.Margin).
				WithMarginRight(opts.Margin).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return buf, nil
}
