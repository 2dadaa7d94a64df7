package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume to an HTML page",
	Long:  "Renders a resume document with the visual or ATS template to a standalone HTML page, or to plain text with --text.",
	RunE:  runRender,
}

var (
	renderInputFile string
	renderTemplate  string
	renderLanguage  string
	renderOutput    string
	renderPlainText bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to resume document JSON (default: the saved resume)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template: visual or ats (default from config)")
	renderCmd.Flags().StringVarP(&renderLanguage, "lang", "l", "", "Language: fa or en (default from config)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output file (default: stdout)")
	renderCmd.Flags().BoolVar(&renderPlainText, "text", false, "Write plain text instead of HTML")

	rootCmd.AddCommand(renderCmd)
}

// resolveTemplateAndLanguage applies flag values over the configured defaults
func resolveTemplateAndLanguage(flagTemplate, flagLanguage, cfgTemplate, cfgLanguage string) (types.Template, types.Language, error) {
	raw := flagTemplate
	if raw == "" {
		raw = cfgTemplate
	}
	tmpl, err := types.ParseTemplate(raw)
	if err != nil {
		return "", "", err
	}

	rawLang := flagLanguage
	if rawLang == "" {
		rawLang = cfgLanguage
	}
	lang, err := i18n.ParseLanguage(rawLang)
	if err != nil {
		return "", "", err
	}
	return tmpl, lang, nil
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	tmpl, lang, err := resolveTemplateAndLanguage(renderTemplate, renderLanguage, cfg.Template, cfg.Language)
	if err != nil {
		return err
	}

	doc, err := loadDocument(context.Background(), cfg, logger, renderInputFile)
	if err != nil {
		return err
	}

	view, err := rendering.Render(doc, tmpl, lang)
	if err != nil {
		return err
	}

	var out []byte
	if renderPlainText {
		out = []byte(rendering.PlainText(view) + "\n")
	} else if out, err = rendering.Page(view); err != nil {
		return err
	}

	if renderOutput == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(renderOutput, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.WithField("path", renderOutput).Info("rendered resume")
	return nil
}
