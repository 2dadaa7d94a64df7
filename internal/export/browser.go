package export

import "context"

// ScreenshotOptions controls rasterization of one element of a page
type ScreenshotOptions struct {
	// Selector picks the element to capture
	Selector string
	// ViewportWidth is the CSS pixel width the page is laid out at
	ViewportWidth int64
	// Scale is the oversampling factor applied to the capture
	Scale float64
}

// PrintOptions controls printing a page to PDF. Sizes are in inches.
type PrintOptions struct {
	PaperWidth      float64
	PaperHeight     float64
	Margin          float64
	PrintBackground bool
}

// Browser loads standalone HTML pages and captures them.
// ChromeBrowser is the production implementation.
type Browser interface {
	// Screenshot returns a PNG of the selected element
	Screenshot(ctx context.Context, page []byte, opts ScreenshotOptions) ([]byte, error)
	// PrintPDF prints the page with automatic pagination; text stays selectable
	PrintPDF(ctx context.Context, page []byte, opts PrintOptions) ([]byte, error)
}
