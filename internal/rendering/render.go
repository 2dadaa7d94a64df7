package rendering

import (
	"bytes"
	"fmt"

	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/net/html"
)

// View is the rendered display tree of one document under one template
type View struct {
	Template types.Template
	Language types.Language
	Root     *html.Node
}

// Render projects doc into a view tree. It does not modify doc and has no side effects.
// Sections appear in a fixed order and are left out entirely when empty.
func Render(doc types.ResumeData, tmpl types.Template, lang types.Language) (*View, error) {
	if lang == "" {
		lang = i18n.Default
	}
	doc = doc.Normalize()

	var root *html.Node
	switch tmpl {
	case types.TemplateVisual:
		root = renderVisual(doc, lang)
	case types.TemplateATS:
		root = renderATS(doc, lang)
	default:
		return nil, &TemplateError{Message: fmt.Sprintf("unknown template %q", tmpl)}
	}
	withAttr(root, "dir", lang.Direction())
	withAttr(root, "lang", string(lang))
	withAttr(root, "id", "resume-preview-content")

	return &View{Template: tmpl, Language: lang, Root: root}, nil
}

// HTML serializes the view tree as an HTML fragment
func (v *View) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, v.Root); err != nil {
		return "", &RenderError{Message: "failed to serialize view", Cause: err}
	}
	return buf.String(), nil
}
