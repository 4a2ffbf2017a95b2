package billdoc

import "math"

// Page geometry for the bill of lading form. The page is a fixed large
// portrait format (A3 width, extended height) and all coordinates are in
// millimetres. Horizontal positions inside the bottom grid are expressed
// against a 190mm reference width and scaled to the actual content width.

const (
	pageWidthMM  = 297.0
	pageHeightMM = 420.0

	// contentInset is the total horizontal space outside the content area.
	contentInset = 40.0
	marginTopMM  = 20.0

	// headerSplitFraction positions the divide between the left identity
	// column and the right branding column.
	headerSplitFraction = 0.43

	// portsRowHeight is the constant height of the four rows beneath the
	// header content.
	portsRowHeight = 12.0
	portsRowCount  = 4

	// refWidth is the reference width legacy column offsets are quoted in.
	refWidth = 190.0
)

// Per-font-size line heights. Wrapped line counts times these constants
// determine the vertical space a text block consumes.
const (
	lineHeightBody      = 3.2 // 10pt body text
	lineHeightAddress   = 5.0 // 12pt company address
	lineHeightTerms     = 3.2 // 8pt header terms
	lineHeightCharges   = 3.5 // 8pt charge lines
	lineHeightFinePrint = 3.0 // 6pt fine print
)

const fontFamily = "Arial"

// PageMetrics is the fixed frame every renderer positions against.
type PageMetrics struct {
	Width   float64
	Height  float64
	MarginX float64
	MarginY float64
	// ContentWidth is the width inside the outer border.
	ContentWidth float64
}

// NewPageMetrics returns the metrics of the standard BL page.
func NewPageMetrics() PageMetrics {
	content := pageWidthMM - contentInset
	return PageMetrics{
		Width:        pageWidthMM,
		Height:       pageHeightMM,
		MarginX:      (pageWidthMM - content) / 2,
		MarginY:      marginTopMM,
		ContentWidth: content,
	}
}

// SplitX returns the x coordinate dividing the header's identity column
// from its branding column.
func (m PageMetrics) SplitX() float64 {
	return m.MarginX + math.Floor(m.ContentWidth*headerSplitFraction)
}

// RightEdge returns the x coordinate of the content area's right border.
func (m PageMetrics) RightEdge() float64 {
	return m.MarginX + m.ContentWidth
}

// RefX maps an offset quoted against the 190mm reference width onto the
// actual content width.
func (m PageMetrics) RefX(x float64) float64 {
	return m.MarginX + (x/refWidth)*m.ContentWidth
}

// LeftColumnTextX returns the text inset of the identity column.
func (m PageMetrics) LeftColumnTextX() float64 {
	return m.MarginX + 5
}

// LeftColumnWidth returns the wrap width of the identity column.
func (m PageMetrics) LeftColumnWidth() float64 {
	return m.SplitX() - m.MarginX - 10
}

// RightColumnTextX returns the text inset of the branding column.
func (m PageMetrics) RightColumnTextX() float64 {
	return m.SplitX() + 5
}

// RightColumnWidth returns the wrap width of the branding column.
func (m PageMetrics) RightColumnWidth() float64 {
	return m.RightEdge() - m.RightColumnTextX() - 5
}
