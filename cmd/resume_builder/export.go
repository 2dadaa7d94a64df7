package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

const templateAll = "all"

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume to PDF",
	Long: `Exports a resume document to PDF through headless Chrome.
The visual template produces a single image page; the ATS template produces paginated selectable text.`,
	RunE: runExport,
}

var (
	exportInputFile string
	exportTemplate  string
	exportLanguage  string
	exportOutputDir string
	exportVerify    bool
	exportVerbose   bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportInputFile, "in", "i", "", "Path to resume document JSON (default: the saved resume)")
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "Template: visual, ats or all (default from config)")
	exportCmd.Flags().StringVarP(&exportLanguage, "lang", "l", "", "Language: fa or en (default from config)")
	exportCmd.Flags().StringVarP(&exportOutputDir, "out-dir", "o", "", "Directory for the PDF files (default from config)")
	exportCmd.Flags().BoolVar(&exportVerify, "verify", false, "Check that the ATS export's headings can be read back as text")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print a summary of the document and the exported files")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	all := exportTemplate == templateAll
	flagTemplate := exportTemplate
	if all {
		flagTemplate = ""
	}
	tmpl, lang, err := resolveTemplateAndLanguage(flagTemplate, exportLanguage, cfg.Template, cfg.Language)
	if err != nil {
		return err
	}

	outDir := exportOutputDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	ctx := context.Background()
	doc, err := loadDocument(ctx, cfg, logger, exportInputFile)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stderr)
	if exportVerbose {
		printer.PrintDocument(doc)
	}

	start := time.Now()
	browser := export.NewChromeBrowser(cfg.ChromePath, cfg.ExportTimeout())

	var paths []string
	if all {
		paths, err = export.ExportAll(ctx, browser, logger, doc, lang, outDir)
	} else {
		var path string
		path, err = export.New(browser, logger).ExportToDir(ctx, doc, tmpl, lang, outDir)
		paths = []string{path}
	}
	if err != nil {
		return err
	}

	if exportVerbose {
		printer.PrintExports(paths, time.Since(start))
	}

	if exportVerify && (all || tmpl == types.TemplateATS) {
		phrases, err := verifyATS(doc, lang, paths)
		if err != nil {
			return err
		}
		if exportVerbose {
			printer.PrintVerification(phrases)
		}
	}

	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

// verifyATS reads the ATS PDF among paths back and checks its headings are extractable.
// It returns the headings it checked.
func verifyATS(doc types.ResumeData, lang types.Language, paths []string) ([]string, error) {
	view, err := rendering.Render(doc, types.TemplateATS, lang)
	if err != nil {
		return nil, err
	}
	phrases := rendering.Headings(view)
	for _, p := range paths {
		if filepath.Base(p) != types.TemplateATS.FileName() {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read exported PDF: %w", err)
		}
		if err := export.VerifySelectableText(data, phrases); err != nil {
			return nil, fmt.Errorf("ATS export text check failed: %w", err)
		}
	}
	return phrases, nil
}
