package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"image"
	_ "image/png" // DecodeConfig of screenshots
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/sirupsen/logrus"
)

const (
	// VisualWidth is the CSS pixel width the visual template is laid out at before capture
	VisualWidth = 800
	// VisualScale oversamples the capture for print sharpness
	VisualScale = 3

	// A4 portrait in inches
	a4Width  = 8.27
	a4Height = 11.69
	// ATSMargin is the page margin of the ATS export in points
	ATSMargin = 40
	// ATSContentWidth is the text column width of the ATS export in points (A4 width less both margins)
	ATSContentWidth = 515

	pointsPerInch = 72.0
	cssPxPerInch  = 96.0

	previewSelector = "#resume-preview-content"
)

// Result is one finished export
type Result struct {
	Template types.Template
	FileName string
	PDF      []byte
	Duration time.Duration
}

// Exporter produces PDFs from documents. It runs at most one export at a time;
// a request made while busy fails fast with ErrExportInProgress.
type Exporter struct {
	browser Browser
	log     *logrus.Entry
	busy    atomic.Bool
}

// New creates an Exporter using browser for rasterizing and printing
func New(browser Browser, logger *logrus.Logger) *Exporter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Exporter{
		browser: browser,
		log:     logger.WithField("component", "export"),
	}
}

// Busy reports whether an export is running
func (e *Exporter) Busy() bool {
	return e.busy.Load()
}

// Export renders doc with tmpl and converts it to PDF. The busy flag is cleared on every path.
func (e *Exporter) Export(ctx context.Context, doc types.ResumeData, tmpl types.Template, lang types.Language) (*Result, error) {
	return e.export(ctx, doc, tmpl, lang, nil)
}

// ExportToDir exports and writes the PDF under its template file name in dir, returning the path.
// The exporter stays busy until the file is written or the write fails.
func (e *Exporter) ExportToDir(ctx context.Context, doc types.ResumeData, tmpl types.Template, lang types.Language, dir string) (string, error) {
	var path string
	_, err := e.export(ctx, doc, tmpl, lang, func(result *Result) error {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &ExportError{Template: tmpl, Stage: StageWrite, Cause: err}
		}
		p := filepath.Join(dir, result.FileName)
		if err := writeFile(p, result.PDF, 0o644); err != nil {
			return &ExportError{Template: tmpl, Stage: StageWrite, Cause: err}
		}
		path = p
		return nil
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// writeFile is swapped in tests
var writeFile = os.WriteFile

// export runs one guarded export; sink, when set, consumes the result before the busy flag clears
func (e *Exporter) export(ctx context.Context, doc types.ResumeData, tmpl types.Template, lang types.Language, sink func(*Result) error) (*Result, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrExportInProgress
	}
	defer e.busy.Store(false)

	start := time.Now()
	log := e.log.WithFields(logrus.Fields{"template": tmpl, "language": lang})

	view, err := rendering.Render(doc, tmpl, lang)
	if err != nil {
		return nil, e.fail(log, &ExportError{Template: tmpl, Stage: StageRender, Cause: err})
	}
	page, err := rendering.Page(view)
	if err != nil {
		return nil, e.fail(log, &ExportError{Template: tmpl, Stage: StageRender, Cause: err})
	}

	var pdf []byte
	switch tmpl {
	case types.TemplateVisual:
		pdf, err = e.visual(ctx, page)
	default:
		pdf, err = e.ats(ctx, page)
	}
	if err != nil {
		return nil, e.fail(log, err)
	}

	result := &Result{
		Template: tmpl,
		FileName: tmpl.FileName(),
		PDF:      pdf,
	}
	if sink != nil {
		if err := sink(result); err != nil {
			return nil, e.fail(log, err)
		}
	}
	result.Duration = time.Since(start)
	log.WithFields(logrus.Fields{
		"bytes":    len(pdf),
		"duration": result.Duration.String(),
	}).Info("export complete")
	return result, nil
}

func (e *Exporter) fail(log *logrus.Entry, err error) error {
	log.WithError(err).Error("export failed")
	return err
}

// visual rasterizes the preview at VisualScale and places the image on a single page of the same size
func (e *Exporter) visual(ctx context.Context, page []byte) ([]byte, error) {
	png, err := e.browser.Screenshot(ctx, page, ScreenshotOptions{
		Selector:      previewSelector,
		ViewportWidth: VisualWidth,
		Scale:         VisualScale,
	})
	if err != nil {
		return nil, &ExportError{Template: types.TemplateVisual, Stage: StageRasterize, Cause: err}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(png))
	if err != nil {
		return nil, &ExportError{Template: types.TemplateVisual, Stage: StageCompose, Cause: err}
	}
	imgPage, err := imagePage(png, cfg.Width, cfg.Height)
	if err != nil {
		return nil, &ExportError{Template: types.TemplateVisual, Stage: StageCompose, Cause: err}
	}

	pdf, err := e.browser.PrintPDF(ctx, imgPage, PrintOptions{
		PaperWidth:      float64(cfg.Width) / cssPxPerInch,
		PaperHeight:     float64(cfg.Height) / cssPxPerInch,
		PrintBackground: true,
	})
	if err != nil {
		return nil, &ExportError{Template: types.TemplateVisual, Stage: StagePrint, Cause: err}
	}
	return pdf, nil
}

// ats prints the page as text on A4 with fixed margins, paginating automatically
func (e *Exporter) ats(ctx context.Context, page []byte) ([]byte, error) {
	pdf, err := e.browser.PrintPDF(ctx, page, PrintOptions{
		PaperWidth:  a4Width,
		PaperHeight: a4Height,
		Margin:      ATSMargin / pointsPerInch,
	})
	if err != nil {
		return nil, &ExportError{Template: types.TemplateATS, Stage: StagePrint, Cause: err}
	}
	return pdf, nil
}

var imagePageTemplate = template.Must(template.New("image").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { size: {{.Width}}px {{.Height}}px; margin: 0; }
html, body { margin: 0; padding: 0; }
img { display: block; width: {{.Width}}px; height: {{.Height}}px; }
</style>
</head>
<body><img src="{{.Src}}" alt=""></body>
</html>
`))

// imagePage is an HTML page holding exactly one image at its pixel size
func imagePage(png []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	var buf bytes.Buffer
	err := imagePageTemplate.Execute(&buf, struct {
		Width, Height int
		Src           template.URL
	}{
		Width:  width,
		Height: height,
		Src:    template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)), //nolint:gosec // our own screenshot
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
