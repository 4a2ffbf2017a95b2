package billdoc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/ristarlog/billdoc/shipapi"
)

// Depot is the container depot block on a release order.
type Depot struct {
	Name    string
	Address string
	Contact string
	Email   string
	Country string
	Mobile  string
}

// ReleaseOrder is the model a Container Release Order is rendered from.
// Like the BL document it is a transient projection of live shipment data.
type ReleaseOrder struct {
	ShipmentID       int
	Date             string
	HouseBL          string
	ShipperRefNo     string
	Shipper          string
	ReleaseDate      string
	PortOfLoading    string
	PortOfDischarge  string
	FinalDestination string
	TankPrep         string
	Depot            Depot
	Containers       []Container
}

// BuildReleaseOrder assembles a release order from the fetched bundle.
// Missing linked records (unknown depot, missing ports) resolve to empty
// fields, never errors.
func BuildReleaseOrder(bundle *shipapi.Bundle) *ReleaseOrder {
	shipment := bundle.Shipment
	if shipment == nil {
		shipment = &shipapi.Shipment{}
	}

	ro := &ReleaseOrder{
		ShipmentID:   shipment.ID,
		Date:         time.Now().Format("02.01.2006"),
		HouseBL:      firstNonEmpty(shipment.HouseBL, shipment.MasterBL),
		ShipperRefNo: shipment.RefNumber,
		ReleaseDate:  shipment.GsDate,
		TankPrep:     firstNonEmpty(shipment.TankPreparation, "N/A"),
		Containers:   convertContainers(shipment.Containers),
	}
	if ab := bundle.FindAddressBook(shipment.ShipperAddressBookID); ab != nil {
		ro.Shipper = ab.CompanyName
	}
	if shipment.PolPort != nil {
		ro.PortOfLoading = shipment.PolPort.PortName
	}
	if shipment.PodPort != nil {
		ro.PortOfDischarge = shipment.PodPort.PortName
		ro.FinalDestination = shipment.PodPort.PortName
	}

	var depotName string
	if len(shipment.Containers) > 0 {
		depotName = shipment.Containers[0].DepotName
	}
	ro.Depot.Name = depotName
	if depot := bundle.FindDepot(depotName); depot != nil {
		ro.Depot.Address = depot.Address
		ro.Depot.Contact = depot.Phone
		ro.Depot.Email = depot.Email
		ro.Depot.Country = depot.Country
		ro.Depot.Mobile = firstNonEmpty(depot.Mobile, depot.Phone)
	}

	return ro
}

// FileName returns the deterministic download name for the release order.
func (r *ReleaseOrder) FileName() string {
	return fmt.Sprintf("CRO_Shipment_%d.pdf", r.ShipmentID)
}

// CROGenerator composes a Container Release Order on an A4 page.
type CROGenerator struct {
	order    *ReleaseOrder
	prof     *Profile
	pdf      *fpdf.Fpdf
	rendered bool
}

// NewCROGenerator creates a generator for the release order. A nil profile
// selects the compiled-in defaults.
func NewCROGenerator(order *ReleaseOrder, prof *Profile) *CROGenerator {
	if prof == nil {
		prof = DefaultProfile()
	}
	return &CROGenerator{order: order, prof: prof}
}

// labelled draws a bold label with its value at a fixed offset, the
// release order's label/value idiom. Values pass through the canvas's
// codepage translator; the labels are plain ASCII.
func labelled(pdf *fpdf.Fpdf, tr func(string) string, x, y float64, label, value string) {
	pdf.SetFont(fontFamily, "B", 10)
	pdf.Text(x, y, label)
	pdf.SetFont(fontFamily, "", 10)
	pdf.Text(x+45, y, tr(value))
}

// Render composes the release order page.
func (g *CROGenerator) Render() error {
	if g.rendered {
		return nil
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	const marginX = 15.0
	contentWidth := pageWidth - 2*marginX

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	center := func(y float64, s string) {
		s = tr(s)
		pdf.Text(pageWidth/2-pdf.GetStringWidth(s)/2, y, s)
	}

	pdf.SetFont(fontFamily, "B", 14)
	center(20, g.prof.CompanyName)
	pdf.SetFont(fontFamily, "", 9)
	y := 26.0
	if g.prof.CompanyAddress != "" {
		for _, line := range pdf.SplitText(g.prof.CompanyAddress, contentWidth) {
			center(y, line)
			y += 4
		}
	}
	pdf.SetFont(fontFamily, "B", 12)
	center(y+8, "CONTAINER RELEASE ORDER")
	pdf.SetLineWidth(0.4)
	pdf.Line(marginX, y+12, pageWidth-marginX, y+12)

	o := g.order
	y += 22
	labelled(pdf, tr, marginX, y, "Date", o.Date)
	labelled(pdf, tr, pageWidth/2, y, "House BL", o.HouseBL)
	y += 8
	labelled(pdf, tr, marginX, y, "Shipper", o.Shipper)
	labelled(pdf, tr, pageWidth/2, y, "Shipper Ref No.", o.ShipperRefNo)
	y += 8
	labelled(pdf, tr, marginX, y, "Port Of Loading", o.PortOfLoading)
	labelled(pdf, tr, pageWidth/2, y, "Port Of Discharge", o.PortOfDischarge)
	y += 8
	labelled(pdf, tr, marginX, y, "Final Destination", o.FinalDestination)
	labelled(pdf, tr, pageWidth/2, y, "Release Date", o.ReleaseDate)
	y += 8
	labelled(pdf, tr, marginX, y, "Tank Preparation", o.TankPrep)

	y += 12
	pdf.SetFont(fontFamily, "B", 11)
	pdf.Text(marginX, y, "Depot")
	pdf.SetFont(fontFamily, "", 10)
	y += 6
	for _, line := range []string{
		o.Depot.Name,
		o.Depot.Address,
		o.Depot.Country,
	} {
		if line == "" {
			continue
		}
		for _, wrapped := range pdf.SplitText(line, contentWidth) {
			pdf.Text(marginX, y, tr(wrapped))
			y += 5
		}
	}
	if o.Depot.Contact != "" {
		pdf.Text(marginX, y, tr("TEL: "+o.Depot.Contact))
		y += 5
	}
	if o.Depot.Mobile != "" && o.Depot.Mobile != o.Depot.Contact {
		pdf.Text(marginX, y, tr("MOBILE: "+o.Depot.Mobile))
		y += 5
	}
	if o.Depot.Email != "" {
		pdf.Text(marginX, y, tr("EMAIL: "+o.Depot.Email))
		y += 5
	}

	// Container table: number, size, capacity, depot.
	y += 8
	colX := []float64{marginX, marginX + 55, marginX + 90, marginX + 125}
	rowH := 8.0
	pdf.SetFont(fontFamily, "B", 10)
	pdf.Rect(marginX, y, contentWidth, rowH, "D")
	pdf.Text(colX[0]+2, y+5.5, "CONTAINER NO.")
	pdf.Text(colX[1]+2, y+5.5, "SIZE")
	pdf.Text(colX[2]+2, y+5.5, "CAPACITY")
	pdf.Text(colX[3]+2, y+5.5, "DEPOT")
	y += rowH
	pdf.SetFont(fontFamily, "", 10)
	for _, ctr := range o.Containers {
		if ctr.ContainerNumber == "" {
			continue
		}
		if y+rowH > pageHeight-20 {
			break
		}
		pdf.Rect(marginX, y, contentWidth, rowH, "D")
		pdf.Text(colX[0]+2, y+5.5, tr(ctr.ContainerNumber))
		pdf.Text(colX[1]+2, y+5.5, tr(ctr.Size))
		pdf.Text(colX[2]+2, y+5.5, tr(ctr.Capacity))
		pdf.Text(colX[3]+2, y+5.5, tr(ctr.DepotName))
		y += rowH
	}

	y += 16
	pdf.SetFont(fontFamily, "B", 10)
	pdf.Text(marginX, y, tr("For "+g.prof.CompanyName))

	if pdf.Err() {
		return fmt.Errorf("failed to compose release order: %w", pdf.Error())
	}
	g.pdf = pdf
	g.rendered = true
	return nil
}

// WriteTo renders the release order if needed and writes it to w.
func (g *CROGenerator) WriteTo(w io.Writer) error {
	if err := g.Render(); err != nil {
		return err
	}
	return g.pdf.Output(w)
}

// Save writes the release order to a file, creating parent directories as
// needed.
func (g *CROGenerator) Save(path string) error {
	if err := g.Render(); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	writeErr := g.pdf.Output(f)
	closeErr := f.Close()

	if writeErr != nil {
		os.Remove(path)
		return writeErr
	}
	return closeErr
}
