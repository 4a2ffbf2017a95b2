// Package billdoc composes printable freight documents (Bill of Lading,
// Container Release Order) from shipment data and writes them as PDF files.
//
// The package models a document as a transient projection assembled fresh
// for every generation call: callers build a Document (usually through
// BuildDocument, merging an explicitly entered BL form over shipment-derived
// lookups), hand it to a Generator, and save or stream the result. Layout is
// computed forward-only with running vertical cursors; pagination to a
// continuation page is the only point where the writer leaves page one, and
// it always returns there.
//
// See the Version constant for the current library version.
package billdoc

import (
	"fmt"
	"strings"
	"time"
)

// BLType selects the printed title of a bill of lading.
type BLType string

const (
	BLOriginal BLType = "original"
	BLDraft    BLType = "draft"
	BLSeaway   BLType = "seaway"
)

// Label returns the file-name form of the type, e.g. "Original".
func (t BLType) Label() string {
	switch t {
	case BLOriginal:
		return "Original"
	case BLDraft:
		return "Draft"
	case BLSeaway:
		return "Seaway"
	}
	return ""
}

// Copy numbers of a printed bill of lading sharing one document number.
const (
	CopyFirstOriginal = 0
	CopySecond        = 1
	CopyThird         = 2
)

// Party is one counterparty block on the document: shipper, consignee,
// notify party or delivery agent.
type Party struct {
	CompanyName string
	Address     string
	Phone       string
	Email       string
}

// Display returns the single wrapped-text form used on the document,
// "COMPANY, ADDRESS", or "" for an empty party.
func (p Party) Display() string {
	if p.CompanyName == "" && p.Address == "" {
		return ""
	}
	return p.CompanyName + ", " + p.Address
}

// IsEmpty reports whether no field of the party is set.
func (p Party) IsEmpty() bool {
	return p.CompanyName == "" && p.Address == "" && p.Phone == "" && p.Email == ""
}

// Container is one container row of a shipment.
type Container struct {
	ContainerNumber string
	SealNumber      string
	GrossWt         string
	NetWt           string
	DepotName       string
	Capacity        string
	Size            string
}

// PortsGrid holds the four port rows beneath the header plus the vessel row.
//
// Place of acceptance mirrors the port of loading and place of delivery
// mirrors the port of discharge. That duplication is a stated business rule
// of the issuing line; the fields stay separate so the values can diverge
// later without a layout change.
type PortsGrid struct {
	PlaceOfAcceptance string
	PortOfLoading     string
	PortOfDischarge   string
	PlaceOfDelivery   string
	VesselVoyage      string
}

// NewPortsGrid builds the grid from the port of loading, port of discharge
// and vessel/voyage designation, applying the mirroring rule.
func NewPortsGrid(pol, pod, vessel string) PortsGrid {
	return PortsGrid{
		PlaceOfAcceptance: pol,
		PortOfLoading:     pol,
		PortOfDischarge:   pod,
		PlaceOfDelivery:   pod,
		VesselVoyage:      vessel,
	}
}

// Document is the normalized model a bill of lading is rendered from.
// It has no identity of its own; it is rebuilt from live data on every
// generation call and discarded afterwards.
type Document struct {
	ShipmentID int
	Type       BLType
	CopyNumber int

	BLNumber string

	Shipper     Party
	Consignee   Party
	NotifyParty Party

	Ports PortsGrid

	// ShipmentContainers come from the shipment record,
	// FormContainers from the explicitly entered BL form.
	ShipmentContainers []Container
	FormContainers     []Container

	GrossWeight string
	NetWeight   string

	DeliveryAgent    Party
	FreightAmount    string
	FreightPayableAt string
	BLDetails        string
	DateOfIssue      string
}

// DisplayContainers returns the container list to print: the explicitly
// entered form list when present, the shipment's otherwise.
func (d *Document) DisplayContainers() []Container {
	if len(d.FormContainers) > 0 {
		return d.FormContainers
	}
	return d.ShipmentContainers
}

// ContainerCount returns the count embedded in the goods description.
// It is the larger of the two source lists, never their sum, so a shipment
// whose containers appear in both sources is not double counted.
func (d *Document) ContainerCount() int {
	n := len(d.ShipmentContainers)
	if len(d.FormContainers) > n {
		n = len(d.FormContainers)
	}
	return n
}

// Title returns the printed document title for the type and copy number.
func (d *Document) Title() string {
	switch d.CopyNumber {
	case CopySecond:
		return "2nd COPY B/L"
	case CopyThird:
		return "3rd COPY B/L"
	}
	switch d.Type {
	case BLDraft:
		return "DRAFT B/L"
	case BLSeaway:
		return "SEAWAY B/L"
	default:
		return "1st ORIGINAL B/L"
	}
}

// CopySuffix returns the file-name suffix for the copy number.
func (d *Document) CopySuffix() string {
	switch d.CopyNumber {
	case CopySecond:
		return "_2nd_Copy"
	case CopyThird:
		return "_3rd_Copy"
	}
	return ""
}

// OriginalsPhrase returns the "number of original BL/MTD(s)" cell text,
// combining the spelled-out copy ordinal with the port of loading.
func (d *Document) OriginalsPhrase() string {
	words := [...]string{"0(ZERO)", "1(ONE)", "2(TWO)"}
	w := words[0]
	if d.CopyNumber >= 0 && d.CopyNumber < len(words) {
		w = words[d.CopyNumber]
	}
	pol := d.Ports.PortOfLoading
	if pol == "" {
		return w
	}
	return w + " " + pol
}

// IssueDate returns the date of issue, defaulting to today in DD.MM.YYYY.
func (d *Document) IssueDate() string {
	if d.DateOfIssue != "" {
		return d.DateOfIssue
	}
	return time.Now().Format("02.01.2006")
}

// ContainerCountText composes the goods-description lead line, embedding a
// two-digit zero-padded container count and the equipment phrase, e.g.
// "02X20 ISO TANK SAID TO CONTAINS".
func (d *Document) ContainerCountText(equipmentPhrase string) string {
	return fmt.Sprintf("%02d%s", d.ContainerCount(), equipmentPhrase)
}

// FileName returns the deterministic download name for the document,
// "<prefix>_<Type>_BL<copy suffix>.pdf".
func (d *Document) FileName(prefix string) string {
	label := d.Type.Label()
	if label == "" {
		label = BLOriginal.Label()
	}
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString("_")
	b.WriteString(label)
	b.WriteString("_BL")
	b.WriteString(d.CopySuffix())
	b.WriteString(".pdf")
	return b.String()
}
