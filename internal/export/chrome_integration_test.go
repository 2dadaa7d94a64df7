//go:build !short

package export

import (
	"context"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chromeOrSkip(t *testing.T) *ChromeBrowser {
	t.Helper()
	path, ok := FindChrome()
	if !ok {
		t.Skip("Chrome not found; set CHROME_PATH to run browser export tests")
	}
	return NewChromeBrowser(path, 90*time.Second)
}

func TestChromeExport_ATSTextIsSelectable(t *testing.T) {
	browser := chromeOrSkip(t)
	doc := sampleDoc()
	doc.WorkExperience = []types.WorkExperience{
		{ID: "w1", Company: "Analytical Engines Ltd", Role: "Programmer", Period: "1842 - 1843", Description: "• Wrote the first program"},
	}

	result, err := New(browser, logging.Discard()).Export(context.Background(), doc, types.TemplateATS, types.LanguageEnglish)
	require.NoError(t, err)

	view, err := rendering.Render(doc, types.TemplateATS, types.LanguageEnglish)
	require.NoError(t, err)
	assert.NoError(t, VerifySelectableText(result.PDF, rendering.Headings(view)))
}

func TestChromeExport_Visual(t *testing.T) {
	browser := chromeOrSkip(t)

	result, err := New(browser, logging.Discard()).Export(context.Background(), sampleDoc(), types.TemplateVisual, types.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(result.PDF[:4]))
}
