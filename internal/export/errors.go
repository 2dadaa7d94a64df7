// Package export turns a rendered resume into a downloadable PDF through a headless browser.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// ErrExportInProgress is returned when an export is requested while another is running
var ErrExportInProgress = errors.New("an export is already in progress")

// ErrNoText is returned when a PDF yields no extractable text at all
var ErrNoText = errors.New("pdf contains no extractable text")

// Stage names the step of an export that failed
type Stage string

const (
	StageRender    Stage = "render"
	StageRasterize Stage = "rasterize"
	StageCompose   Stage = "compose"
	StagePrint     Stage = "print"
	StageWrite     Stage = "write"
)

// ExportError represents a failed export
type ExportError struct {
	Template types.Template
	Stage    Stage
	Cause    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s failed at %s: %v", e.Template, e.Stage, e.Cause)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// VerifyError lists phrases that could not be read back from an exported PDF
type VerifyError struct {
	Missing []string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("pdf text is missing %d phrase(s): %s", len(e.Missing), strings.Join(e.Missing, ", "))
}
