package export

import (
	"context"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Templates lists every export strategy
var Templates = []types.Template{types.TemplateVisual, types.TemplateATS}

// ExportAll writes one PDF per template into dir concurrently and returns the paths in Templates order.
// Each template gets its own Exporter so the busy guard does not serialize them.
func ExportAll(ctx context.Context, browser Browser, logger *logrus.Logger, doc types.ResumeData, lang types.Language, dir string) ([]string, error) {
	paths := make([]string, len(Templates))
	g, ctx := errgroup.WithContext(ctx)
	for i, tmpl := range Templates {
		g.Go(func() error {
			path, err := New(browser, logger).ExportToDir(ctx, doc, tmpl, lang, dir)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
