package billdoc

import "strings"

// The header block has no fixed height: its bottom edge is the lower of the
// left identity column (shipper/consignee/notify stacks) and the right
// branding column (BL number, logo, company identity, terms paragraph).
// Every later section is anchored to the planned height, so the plan is
// computed in full before anything is drawn.

// partyBlock is the planned geometry of one identity stack.
type partyBlock struct {
	Heading    string
	HeadingY   float64
	Lines      []string
	TextY      float64
	TelY       float64
	UnderlineY float64 // 0 when the block has no underline
}

// bottom returns the baseline after the wrapped lines.
func (b partyBlock) bottom() float64 {
	return b.TextY + float64(len(b.Lines))*lineHeightBody
}

// HeaderPlan is the measured geometry of the header and ports grid.
type HeaderPlan struct {
	Shipper   partyBlock
	Consignee partyBlock
	Notify    partyBlock

	BLNumberY    float64
	LogoY        float64
	LogoHeight   float64 // 0 when the logo could not be loaded
	CompanyNameY float64
	AddressY     float64
	AddressLines []string
	TermsY       float64
	TermsLines   []string

	LeftBottomY  float64
	RightBottomY float64

	// PortsTop is where the four-row ports grid starts; Height spans from
	// the header top to the grid's bottom edge.
	PortsTop float64
	Height   float64
}

// TitleY returns the baseline of the document title, centred in the right
// panel over the ports grid's lower rows.
func (p HeaderPlan) TitleY() float64 {
	return p.PortsTop + portsRowHeight*2 + 12
}

// PlanHeader measures both header columns and fixes the header height at
// the lower of the two plus the ports grid. logoHeight is the height the
// loaded logo will occupy; pass 0 to reserve the fixed fallback space.
func PlanHeader(m TextMeasurer, pm PageMetrics, d *Document, prof *Profile, logoHeight float64) HeaderPlan {
	top := pm.MarginY
	leftW := pm.LeftColumnWidth()
	rightW := pm.RightColumnWidth()

	var plan HeaderPlan

	// Left column: three stacked party sections with fixed spacing.
	y := top + 8
	plan.Shipper = partyBlock{Heading: "SHIPPER", HeadingY: y}
	y += 6
	plan.Shipper.Lines = m.Wrap(d.Shipper.Display(), 10, leftW)
	plan.Shipper.TextY = y
	y = plan.Shipper.bottom()
	plan.Shipper.TelY = y
	plan.Shipper.UnderlineY = y + 5

	y += 10
	plan.Consignee = partyBlock{Heading: "Consignee (or order)", HeadingY: y}
	y += 6
	plan.Consignee.Lines = m.Wrap(d.Consignee.Display(), 10, leftW)
	plan.Consignee.TextY = y
	y = plan.Consignee.bottom()
	plan.Consignee.UnderlineY = y + 5

	y += 10
	plan.Notify = partyBlock{Heading: "Notify Party", HeadingY: y}
	y += 6
	plan.Notify.Lines = m.Wrap(d.NotifyParty.Display(), 10, leftW)
	plan.Notify.TextY = y
	plan.LeftBottomY = plan.Notify.bottom()

	// Right column: BL number, logo, company identity, terms paragraph.
	ry := top + 8
	plan.BLNumberY = ry
	ry += 8
	plan.LogoY = ry
	if logoHeight > 0 {
		plan.LogoHeight = logoHeight
		ry += logoHeight + 8
	} else {
		// Keep the reserved space so downstream anchors do not move.
		ry += logoFallbackHeight
	}
	plan.CompanyNameY = ry
	plan.AddressLines = m.Wrap(prof.CompanyAddress, 12, rightW)
	plan.AddressY = ry + 6
	ry += 6 + float64(len(plan.AddressLines))*lineHeightAddress + 3
	plan.TermsY = ry
	plan.TermsLines = m.Wrap(strings.Join(prof.HeaderTerms, " "), 8, rightW)
	plan.RightBottomY = ry + float64(len(plan.TermsLines))*lineHeightTerms

	contentBottom := plan.LeftBottomY
	if plan.RightBottomY > contentBottom {
		contentBottom = plan.RightBottomY
	}
	plan.PortsTop = contentBottom + 4
	plan.Height = (plan.PortsTop - top) + portsRowHeight*portsRowCount + 2

	return plan
}
