package types

import "fmt"

// Template selects a rendering and export strategy
type Template string

const (
	// TemplateVisual is the styled two-column layout exported as a single image page
	TemplateVisual Template = "visual"
	// TemplateATS is the plain single-column layout exported as selectable text
	TemplateATS Template = "ats"
)

// ParseTemplate validates a template name. Empty input selects the visual template.
func ParseTemplate(s string) (Template, error) {
	switch Template(s) {
	case "", TemplateVisual:
		return TemplateVisual, nil
	case TemplateATS:
		return TemplateATS, nil
	default:
		return "", fmt.Errorf("unknown template: %q (expected visual or ats)", s)
	}
}

// FileName is the download name of an export produced with this template
func (t Template) FileName() string {
	return fmt.Sprintf("resume-%s.pdf", t)
}

// Language is a supported UI/document locale
type Language string

const (
	LanguagePersian Language = "fa"
	LanguageEnglish Language = "en"
)

// Direction returns the whole-document text direction for the language
func (l Language) Direction() string {
	if l == LanguagePersian {
		return "rtl"
	}
	return "ltr"
}
