package billdoc

import "github.com/go-pdf/fpdf"

// Section renderers draw in a fixed order, each taking the running vertical
// cursor and returning its own bottom edge. Draw operations are append-only:
// a section may extend the cursor downward but never repositions content a
// previous section placed.

// renderContext threads the canvas, the fixed page frame and the measured
// header plan through the section sequence.
type renderContext struct {
	pdf  *fpdf.Fpdf
	pm   PageMetrics
	doc  *Document
	prof *Profile
	plan HeaderPlan
	logo logoImage
	tr   func(string) string
}

// newRenderContext prepares the context for a canvas. The core fonts use a
// single-byte codepage, so every drawn string goes through the canvas's
// unicode translator; characters like the en-dash print as one glyph
// instead of raw UTF-8 bytes.
func newRenderContext(pdf *fpdf.Fpdf, pm PageMetrics, doc *Document, prof *Profile) *renderContext {
	return &renderContext{
		pdf:  pdf,
		pm:   pm,
		doc:  doc,
		prof: prof,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *renderContext) setFont(style string, size float64) {
	c.pdf.SetFont(fontFamily, style, size)
}

func (c *renderContext) text(x, y float64, s string) {
	c.pdf.Text(x, y, c.tr(s))
}

func (c *renderContext) textCentered(cx, y float64, s string) {
	s = c.tr(s)
	c.pdf.Text(cx-c.pdf.GetStringWidth(s)/2, y, s)
}

func (c *renderContext) textRight(right, y float64, s string) {
	s = c.tr(s)
	c.pdf.Text(right-c.pdf.GetStringWidth(s), y, s)
}

// textLines draws wrapped lines from baseline y with the given line height
// and returns the baseline after the last line.
func (c *renderContext) textLines(x, y float64, lines []string, lineHeight float64) float64 {
	for _, line := range lines {
		c.text(x, y, line)
		y += lineHeight
	}
	return y
}

// renderPageFrame draws the outer border of the primary page.
func (c *renderContext) renderPageFrame() {
	c.pdf.SetDrawColor(0, 0, 0)
	c.pdf.SetLineWidth(0.5)
	c.pdf.Rect(c.pm.MarginX, c.pm.MarginY, c.pm.ContentWidth, c.pm.Height-2*c.pm.MarginY, "D")
}

// renderHeader draws the two header columns and the surrounding box and
// returns the header's bottom edge. The box's top edge is omitted so only
// the outer border shows there.
func (c *renderContext) renderHeader() float64 {
	pm := c.pm
	plan := c.plan
	top := pm.MarginY
	leftX := pm.LeftColumnTextX()
	splitX := pm.SplitX()

	for _, block := range []partyBlock{plan.Shipper, plan.Consignee, plan.Notify} {
		c.setFont("B", 11)
		c.text(leftX, block.HeadingY, block.Heading)
		c.setFont("", 10)
		c.textLines(leftX, block.TextY, block.Lines, lineHeightBody)
	}
	if c.doc.Shipper.Phone != "" {
		c.setFont("", 10)
		c.text(leftX, plan.Shipper.TelY, "TEL: "+c.doc.Shipper.Phone)
	}
	c.pdf.SetLineWidth(0.4)
	c.pdf.Line(pm.MarginX+2, plan.Shipper.UnderlineY, splitX-2, plan.Shipper.UnderlineY)
	c.pdf.Line(pm.MarginX+2, plan.Consignee.UnderlineY, splitX-2, plan.Consignee.UnderlineY)

	rightX := pm.RightColumnTextX()
	rightW := pm.RightColumnWidth()
	centerX := rightX + rightW/2

	c.setFont("B", 12)
	c.text(rightX, plan.BLNumberY, c.doc.BLNumber)
	if c.logo.name != "" {
		logoX := rightX + (rightW-c.logo.W)/2
		c.pdf.ImageOptions(c.logo.name, logoX, plan.LogoY, c.logo.W, c.logo.H,
			false, fpdf.ImageOptions{ImageType: "JPEG"}, 0, "")
	}
	c.setFont("B", 12)
	c.textCentered(centerX, plan.CompanyNameY, c.prof.CompanyName)
	c.setFont("", 12)
	for i, line := range plan.AddressLines {
		c.textCentered(centerX, plan.AddressY+float64(i)*lineHeightAddress, line)
	}
	c.setFont("", 8)
	c.textLines(rightX, plan.TermsY, plan.TermsLines, lineHeightTerms)

	bottom := top + plan.Height
	c.pdf.SetLineWidth(0.5)
	c.pdf.Line(pm.MarginX, top, pm.MarginX, bottom)
	c.pdf.Line(pm.MarginX, bottom, pm.RightEdge(), bottom)
	c.pdf.Line(pm.RightEdge(), top, pm.RightEdge(), bottom)
	c.pdf.Line(splitX, top, splitX, bottom)
	// Separator between the identity stacks and the ports grid.
	c.pdf.Line(pm.MarginX, plan.PortsTop, splitX, plan.PortsTop)

	return bottom
}

// renderPortsGrid draws the four fixed-height rows inside the lower header:
// acceptance, loading, delivery place and vessel/voyage, with the port of
// discharge sharing the first row.
func (c *renderContext) renderPortsGrid() {
	pm := c.pm
	top := c.plan.PortsTop
	splitX := pm.SplitX()
	leftX := pm.LeftColumnTextX()
	midX := pm.MarginX + (splitX-pm.MarginX)/2 + 5

	row := func(y float64, label, value, rightLabel, rightValue string) {
		c.setFont("B", 11)
		c.text(leftX, y+4, label)
		c.setFont("", 10)
		c.text(leftX, y+10, value)
		if rightLabel != "" {
			c.setFont("B", 11)
			c.text(midX, y+4, rightLabel)
			c.setFont("", 10)
			c.text(midX, y+10, rightValue)
		}
	}

	ports := c.doc.Ports
	row(top, "Place Of Acceptance", ports.PlaceOfAcceptance, "Port Of Discharge", ports.PortOfDischarge)
	c.pdf.Line(pm.MarginX, top+portsRowHeight, splitX, top+portsRowHeight)
	row(top+portsRowHeight, "Port Of Loading", ports.PortOfLoading, "", "")
	c.pdf.Line(pm.MarginX, top+portsRowHeight*2, splitX, top+portsRowHeight*2)
	row(top+portsRowHeight*2, "Place Of Delivery", ports.PlaceOfDelivery, "", "")
	c.pdf.Line(pm.MarginX, top+portsRowHeight*3, splitX, top+portsRowHeight*3)
	row(top+portsRowHeight*3, "Vessel & Voyage No.", ports.VesselVoyage, "", "")
}

// renderTitle draws the document title centred in the right panel.
func (c *renderContext) renderTitle() {
	centerX := c.pm.SplitX() + (c.pm.RightEdge()-c.pm.SplitX())/2
	c.setFont("B", 18)
	c.textCentered(centerX, c.plan.TitleY(), c.doc.Title())
}

// renderGoodsSection draws the container table headers, delegates the
// container list to the pagination controller, fills in the goods
// description, freight clauses and charge tariff, and returns the bottom
// edge of the whole section.
func (c *renderContext) renderGoodsSection(headerBottom float64) float64 {
	pm := c.pm

	tableHeaderY := headerBottom + 2 + 4
	c.setFont("B", 10)
	c.text(pm.MarginX+5, tableHeaderY, "Container No.(s)")
	c.text(pm.MarginX+60, tableHeaderY, "Marks and numbers")
	c.text(pm.MarginX+110, tableHeaderY, "Number of packages, kinds of packages;")
	c.text(pm.MarginX+110, tableHeaderY+4, "general description of goods")
	c.pdf.SetLineWidth(0.6)
	c.pdf.Line(pm.MarginX, tableHeaderY+6, pm.RightEdge(), tableHeaderY+6)
	c.pdf.SetLineWidth(0.5)

	firstRowTextY := tableHeaderY + 6
	containersBottom := c.renderContainers(firstRowTextY + 6)

	// Goods description column.
	descX := pm.MarginX + 110
	c.setFont("", 10)
	c.text(descX, firstRowTextY+6, c.doc.ContainerCountText(c.prof.EquipmentPhrase))

	if c.doc.BLDetails != "" {
		detailLines := c.pdf.SplitText(c.doc.BLDetails, 78)
		detailsY := firstRowTextY + 12
		for _, line := range detailLines {
			c.text(descX, detailsY, line)
			detailsY += 4
		}
	}

	addY := firstRowTextY + 50
	c.setFont("B", 9)
	clauseGaps := []float64{8, 5, 8, 5, 6}
	for i, clause := range c.prof.FreightClauses {
		c.text(descX, addY, clause)
		gap := 6.0
		if i < len(clauseGaps) {
			gap = clauseGaps[i]
		}
		addY += gap
	}

	c.setFont("", 8)
	for _, line := range c.prof.ChargeLines {
		wrapped := c.pdf.SplitText(line, 78)
		addY = c.textLines(descX, addY, wrapped, lineHeightCharges)
		addY += 2
	}

	bottom := firstRowTextY + 50
	if addY > bottom {
		bottom = addY
	}
	if containersBottom > bottom {
		bottom = containersBottom
	}
	return bottom
}

// renderBottomGrid draws the delivery-agent / freight / signature grid and
// returns its bottom edge. The grid has no bottom border of its own; the
// fine-print separator below closes it.
func (c *renderContext) renderBottomGrid(top float64) float64 {
	pm := c.pm
	boxTop := top + 8
	const boxHeight = 56.0
	colFreightX := pm.RefX(75)
	colNumX := pm.RefX(125)
	rightEnd := pm.RightEdge()

	c.pdf.SetLineWidth(0.5)
	c.pdf.Line(pm.MarginX, boxTop, pm.MarginX, boxTop+boxHeight)
	c.pdf.Line(pm.MarginX, boxTop, rightEnd, boxTop)
	c.pdf.Line(rightEnd, boxTop, rightEnd, boxTop+boxHeight)
	c.pdf.Line(colFreightX, boxTop, colFreightX, boxTop+boxHeight)
	c.pdf.Line(colNumX, boxTop, colNumX, boxTop+boxHeight)

	c.setFont("B", 9)
	c.text(pm.MarginX+3, boxTop+8, "Delivery Agent")
	c.text(colFreightX+3, boxTop+8, "Freight Amount")
	c.pdf.Line(colFreightX, boxTop+18, colNumX, boxTop+18)
	c.text(colFreightX+3, boxTop+26, "Freight payable at")
	c.text(colNumX+3, boxTop+8, "Number of original BL/MTD(s)")
	c.textRight(rightEnd-3, boxTop+8, "Place and date of issue")

	c.setFont("", 9)
	agent := c.doc.DeliveryAgent
	if agent.CompanyName != "" {
		c.text(pm.MarginX+3, boxTop+16, agent.CompanyName)
	}
	if agent.Address != "" {
		addressLines := c.pdf.SplitText(agent.Address, 65)
		if len(addressLines) > 3 {
			addressLines = addressLines[:3]
		}
		agentY := boxTop + 22
		for _, line := range addressLines {
			c.text(pm.MarginX+3, agentY, line)
			agentY += 6
		}
	}
	if agent.Phone != "" {
		c.text(pm.MarginX+3, boxTop+44, "TEL: "+agent.Phone)
	}
	if agent.Email != "" {
		c.text(pm.MarginX+3, boxTop+50, "EMAIL: "+agent.Email)
	}

	c.text(colFreightX+3, boxTop+16, c.doc.FreightAmount)
	payableAt := c.doc.FreightPayableAt
	if payableAt == "" {
		payableAt = c.doc.Ports.PortOfLoading
	}
	c.text(colFreightX+3, boxTop+34, payableAt)

	c.text(colNumX+3, boxTop+16, c.doc.OriginalsPhrase())
	c.textRight(rightEnd-3, boxTop+16, c.doc.IssueDate())
	c.text(colNumX+3, boxTop+28, "For "+c.prof.CompanyName)

	return boxTop + boxHeight
}

// renderFinePrint closes the bottom grid with a separator, extends its
// column rules down to it, and draws the fine-print terms block. The block
// has no bottom edge of its own; the outer page border closes the form.
func (c *renderContext) renderFinePrint(gridTop, gridBottom float64) {
	pm := c.pm
	top := gridBottom + 8
	const boxHeight = 60.0
	colFreightX := pm.RefX(75)
	colNumX := pm.RefX(125)

	c.pdf.Line(pm.MarginX, top, pm.RightEdge(), top)
	c.pdf.Line(colFreightX, gridTop, colFreightX, top)
	c.pdf.Line(colNumX, gridTop, colNumX, top)
	c.pdf.Line(pm.MarginX, top, pm.MarginX, top+boxHeight)
	c.pdf.Line(pm.RightEdge(), top, pm.RightEdge(), top+boxHeight)

	c.setFont("", 6)
	y := top + 6
	maxWidth := pm.ContentWidth - 20
	for _, term := range c.prof.FinePrint {
		wrapped := c.pdf.SplitText(term, maxWidth)
		y = c.textLines(pm.MarginX+5, y, wrapped, lineHeightFinePrint)
		y += 2
	}
}
