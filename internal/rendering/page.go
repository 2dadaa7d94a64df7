package rendering

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/jonathan/resume-builder/internal/i18n"
)

//go:embed styles.css
var stylesheet string

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body class="template-{{.Template}}">
{{.Body}}
</body>
</html>
`))

type pageData struct {
	Lang     string
	Dir      string
	Title    string
	Template string
	CSS      template.CSS
	Body     template.HTML
}

// Page wraps a view in a standalone HTML document with the stylesheet inlined.
// The result is what the preview endpoint serves and what the exporter loads into the browser.
func Page(v *View) ([]byte, error) {
	body, err := v.HTML()
	if err != nil {
		return nil, err
	}

	title := i18n.T(v.Language, i18n.KeyResumeBuilder)
	if name := personName(v); name != "" {
		title = name
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, pageData{
		Lang:     string(v.Language),
		Dir:      v.Language.Direction(),
		Title:    title,
		Template: string(v.Template),
		CSS:      template.CSS(stylesheet), //nolint:gosec // embedded stylesheet
		Body:     template.HTML(body),      //nolint:gosec // produced by html.Render, which escapes text
	})
	if err != nil {
		return nil, &TemplateError{Message: "failed to execute page template", Cause: err}
	}
	return buf.Bytes(), nil
}
