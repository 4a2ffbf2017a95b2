package billdoc

// LayoutMode is the container presentation the document uses.
type LayoutMode int

const (
	// SinglePage stacks container details inside the primary goods section.
	SinglePage LayoutMode = iota
	// ContinuationPage moves the full container list to an attachment page
	// rendered as a bordered table with a TOTAL row.
	ContinuationPage
)

// containerPageThreshold is the largest container count that still fits
// the stacked single-page presentation.
const containerPageThreshold = 3

// ModeFor returns the layout mode for the given container count.
func ModeFor(containerCount int) LayoutMode {
	if containerCount > containerPageThreshold {
		return ContinuationPage
	}
	return SinglePage
}

// Continuation-page table geometry.
const (
	annexTableWidth = 165.0
	annexRowHeight  = 12.0
	annexColNumber  = 40.0
	annexColGross   = 40.0
	annexColNet     = 40.0
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func weightOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s + " KGS"
}

// renderContainers draws the container list starting at startY on the
// primary page and returns the bottom edge of what it placed there. In
// continuation mode only a pointer note stays on the primary page; the
// list itself goes to a fresh page and the writer is restored to the page
// it left afterwards, so the remaining sections continue on page one.
func (c *renderContext) renderContainers(startY float64) float64 {
	containers := c.doc.DisplayContainers()

	if ModeFor(len(containers)) == ContinuationPage {
		c.setFont("", 10)
		c.text(c.pm.MarginX+15, startY, "Find the containers details list below the page annexure.")

		page := c.pdf.PageNo()
		c.renderContinuationPage(containers)
		c.pdf.SetPage(page)
		return startY
	}

	return c.renderStackedContainers(containers, startY)
}

// renderStackedContainers draws up to the threshold count as a compact
// vertical block with no borders and no totals.
func (c *renderContext) renderStackedContainers(containers []Container, startY float64) float64 {
	if len(containers) == 0 {
		return startY
	}
	x := c.pm.MarginX + 15
	c.setFont("", 10)
	for i, ctr := range containers {
		if ctr.ContainerNumber == "" {
			continue
		}
		y := startY + float64(i)*45
		c.text(x, y, ctr.ContainerNumber)
		c.text(x, y+8, "SEAL NO: "+orNA(ctr.SealNumber))
		c.text(x, y+16, "GROSS WT: "+weightOrNA(ctr.GrossWt))
		c.text(x, y+24, "NET WT: "+weightOrNA(ctr.NetWt))
	}
	return startY + float64(len(containers))*45 + 10
}

// renderContinuationPage starts the attachment page: condensed document
// identity header, then the full container list as a bordered table with
// summed gross/net totals. The seal column of the TOTAL row stays blank.
func (c *renderContext) renderContinuationPage(containers []Container) {
	pm := c.pm
	c.pdf.AddPage()

	c.setFont("B", 14)
	c.textCentered(pm.Width/2, pm.MarginY+10, c.prof.CompanyName)
	c.setFont("", 12)
	c.textCentered(pm.Width/2, pm.MarginY+20, "B/L ATTACHMENT")

	c.setFont("", 10)
	c.text(pm.MarginX+5, pm.MarginY+40, "BL NO.")
	c.text(pm.MarginX+70, pm.MarginY+40, ": "+c.doc.BLNumber)
	c.text(pm.MarginX+130, pm.MarginY+40, "DATE OF ISSUE")
	c.text(pm.MarginX+180, pm.MarginY+40, ": "+c.doc.IssueDate())
	c.text(pm.MarginX+5, pm.MarginY+50, "VESSEL NAME / VOYAGE NO")
	c.text(pm.MarginX+70, pm.MarginY+50, ": "+c.doc.Ports.VesselVoyage)

	separatorY := pm.MarginY + 60
	c.pdf.Line(pm.MarginX+5, separatorY, pm.MarginX+pm.ContentWidth-5, separatorY)

	c.setFont("B", 12)
	titleY := separatorY + 15
	c.textCentered(pm.Width/2, titleY, "CONTAINER DETAILS")

	c.setFont("", 10)
	c.text(pm.Width-30, pm.Height-20, "Page 2")

	c.renderContainerTable(containers, titleY+10)
}

// renderContainerTable draws the bordered four-column table and its TOTAL
// row, centred on the page.
func (c *renderContext) renderContainerTable(containers []Container, top float64) {
	tableX := (c.pm.Width - annexTableWidth) / 2
	colGrossX := tableX + annexColNumber
	colNetX := colGrossX + annexColGross
	colSealX := colNetX + annexColNet

	rowRule := func(y, h float64) {
		c.pdf.Rect(tableX, y, annexTableWidth, h, "D")
		c.pdf.Line(colGrossX, y, colGrossX, y+h)
		c.pdf.Line(colNetX, y, colNetX, y+h)
		c.pdf.Line(colSealX, y, colSealX, y+h)
	}

	c.setFont("B", 10)
	rowRule(top-2, annexRowHeight)
	c.text(tableX+2, top+6, "CONTAINER NO.")
	c.text(colGrossX+2, top+6, "GROSS WT.")
	c.text(colNetX+2, top+6, "NET WT.")
	c.text(colSealX+2, top+6, "SEAL NO.")

	y := top + 10
	c.setFont("", 10)
	for _, ctr := range containers {
		if ctr.ContainerNumber == "" {
			continue
		}
		rowRule(y, annexRowHeight)
		c.text(tableX+2, y+8, ctr.ContainerNumber)
		c.text(colGrossX+2, y+8, weightOrNA(ctr.GrossWt))
		c.text(colNetX+2, y+8, weightOrNA(ctr.NetWt))
		c.text(colSealX+2, y+8, orNA(ctr.SealNumber))
		y += annexRowHeight
	}

	gross, net := SumWeights(containers)
	rowRule(y, annexRowHeight)
	c.setFont("B", 10)
	c.text(tableX+2, y+8, "TOTAL")
	c.text(colGrossX+2, y+8, FormatKGS(&gross, 2))
	c.text(colNetX+2, y+8, FormatKGS(&net, 2))
}
