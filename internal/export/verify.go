package export

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ExtractText returns the plain text of every page of a PDF
func ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// VerifySelectableText checks that each phrase can be read back from the PDF.
// Whitespace is ignored on both sides since extractors split runs unpredictably.
func VerifySelectableText(data []byte, phrases []string) error {
	text, err := ExtractText(data)
	if err != nil {
		return err
	}
	flat := stripSpace(text)
	if flat == "" {
		return ErrNoText
	}

	var missing []string
	for _, phrase := range phrases {
		if p := stripSpace(phrase); p != "" && !strings.Contains(flat, p) {
			missing = append(missing, phrase)
		}
	}
	if len(missing) > 0 {
		return &VerifyError{Missing: missing}
	}
	return nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
