// Package output renders registry catalogues and created products in the
// formats supported by the factory command line.
package output

import (
	"io"

	"github.com/arthur-debert/factory/pkg/errors"
)

// Renderer writes reports to an output destination
type Renderer interface {
	RenderReport(Report) error
	RenderProduct(Product) error
	RenderDuplicates(DuplicateReport) error
}

// New creates a renderer for the given format. FormatAuto is resolved
// against w with DetectFormat.
func New(w io.Writer, format Format) (Renderer, error) {
	if format == FormatAuto {
		format = DetectFormat(w)
	}

	switch format {
	case FormatTerminal:
		return &textRenderer{w: w, styled: true}, nil
	case FormatText:
		return &textRenderer{w: w}, nil
	case FormatJSON:
		return newJSONRenderer(w), nil
	case FormatYAML:
		return newYAMLRenderer(w), nil
	case FormatTOML:
		return newTOMLRenderer(w), nil
	case FormatXML:
		return &xmlRenderer{w: w}, nil
	default:
		return nil, errors.Newf(errors.ErrOutputFormat, "unsupported format: %s", format)
	}
}

// NewFromString parses name and creates the matching renderer
func NewFromString(w io.Writer, name string) (Renderer, error) {
	format, err := ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return New(w, format)
}

func writeErr(err error) error {
	return errors.Wrap(err, errors.ErrOutputWrite, "failed to write output")
}
