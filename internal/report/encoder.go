package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

type Format string

const (
	FormatPDF    Format = "pdf"
	FormatXLSX   Format = "xlsx"
	FormatDOCX   Format = "docx"
	FormatBundle Format = "bundle"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the single-document formats in the order bundles contain them.
var Formats = []Format{FormatPDF, FormatXLSX, FormatDOCX}

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatPDF, FormatXLSX, FormatDOCX, FormatBundle:
		return f, nil
	case "excel":
		return FormatXLSX, nil
	case "word":
		return FormatDOCX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

// FileName is the download name for a format.
func (f Format) FileName() string {
	if f == FormatBundle {
		return "orders.zip"
	}
	return "orders." + string(f)
}

// Encoder writes a shaped table in one container format.
type Encoder interface {
	Format() Format
	ContentType() string
	Encode(w io.Writer, t Table) error
}

// ExportError wraps a failure of one encoder.
type ExportError struct {
	Format Format
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
