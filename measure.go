package billdoc

import (
	"strings"

	"github.com/go-pdf/fpdf"
)

// TextMeasurer wraps free text to a column width at a given font size.
// The layout planner depends on this interface rather than on a page
// canvas so header geometry can be computed (and tested) without one.
type TextMeasurer interface {
	// Wrap splits text into lines that fit width millimetres at the given
	// font size in points. Empty or blank text yields no lines.
	Wrap(text string, size, width float64) []string
}

// pdfMeasurer measures with the canvas's own font metrics, so the planned
// line counts always match what the renderers draw.
type pdfMeasurer struct {
	pdf *fpdf.Fpdf
}

func (m pdfMeasurer) Wrap(text string, size, width float64) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	m.pdf.SetFont(fontFamily, "", size)
	return m.pdf.SplitText(text, width)
}
