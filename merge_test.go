package billdoc

import (
	"testing"

	"github.com/ristarlog/billdoc/shipapi"
)

func TestMergePartyFirstNonEmptyWins(t *testing.T) {
	form := Party{CompanyName: "ACME EXPORTS", Phone: "111"}
	derived := Party{CompanyName: "OLD NAME", Address: "12 Dock Road", Phone: "222", Email: "ops@old.example"}

	got := MergeParty(form, derived)
	if got.CompanyName != "ACME EXPORTS" {
		t.Errorf("company = %q, want form value", got.CompanyName)
	}
	if got.Address != "12 Dock Road" {
		t.Errorf("address = %q, want derived value", got.Address)
	}
	if got.Phone != "111" {
		t.Errorf("phone = %q, want form value", got.Phone)
	}
	if got.Email != "ops@old.example" {
		t.Errorf("email = %q, want derived value", got.Email)
	}
}

func testBundle() *shipapi.Bundle {
	return &shipapi.Bundle{
		Shipment: &shipapi.Shipment{
			ID:                     7,
			ShipperAddressBookID:   1,
			ConsigneeAddressBookID: 2,
			VesselName:             "MV EVER LYRIC 068E",
			PolPort:                &shipapi.Port{ID: 10, PortName: "Nhava Sheva"},
			PodPort:                &shipapi.Port{ID: 11, PortName: "Jebel Ali"},
			Containers: []shipapi.Container{
				{ContainerNumber: "RSTU1234567", SealNumber: "014436", GrossWt: "20030", NetWt: "19000"},
			},
		},
		AddressBooks: []shipapi.AddressBook{
			{ID: 1, CompanyName: "BOOKED SHIPPER LTD", Address: "1 Harbour Lane", Phone: "555-0001"},
			{ID: 2, CompanyName: "BOOKED CONSIGNEE LLC", Address: "2 Quay Street"},
		},
	}
}

func TestBuildDocumentFormOverridesAddressBook(t *testing.T) {
	blForm := &BLForm{
		ShippersName:  "EXPLICIT SHIPPER PVT LTD",
		ConsigneeName: "EXPLICIT CONSIGNEE",
	}
	doc := BuildDocument(BLOriginal, FormData{ShipmentID: 7}, blForm, 0, testBundle(), nil)

	if doc.Shipper.CompanyName != "EXPLICIT SHIPPER PVT LTD" {
		t.Errorf("shipper = %q, want explicit form value", doc.Shipper.CompanyName)
	}
	// Fields the form leaves empty still come from the address book.
	if doc.Shipper.Address != "1 Harbour Lane" {
		t.Errorf("shipper address = %q, want address-book value", doc.Shipper.Address)
	}
}

func TestBuildDocumentDerivesFromAddressBookWithoutForm(t *testing.T) {
	doc := BuildDocument(BLOriginal, FormData{ShipmentID: 7}, nil, 0, testBundle(), nil)
	if doc.Shipper.CompanyName != "BOOKED SHIPPER LTD" {
		t.Errorf("shipper = %q, want address-book value", doc.Shipper.CompanyName)
	}
	if doc.Consignee.CompanyName != "BOOKED CONSIGNEE LLC" {
		t.Errorf("consignee = %q, want address-book value", doc.Consignee.CompanyName)
	}
}

func TestBuildDocumentNotifyDefaultsToConsignee(t *testing.T) {
	doc := BuildDocument(BLOriginal, FormData{ShipmentID: 7}, nil, 0, testBundle(), nil)
	if doc.NotifyParty != doc.Consignee {
		t.Errorf("notify party = %+v, want consignee %+v", doc.NotifyParty, doc.Consignee)
	}
}

func TestBuildDocumentPortMirroring(t *testing.T) {
	doc := BuildDocument(BLOriginal, FormData{ShipmentID: 7}, nil, 0, testBundle(), nil)
	if doc.Ports.PlaceOfAcceptance != "Nhava Sheva" || doc.Ports.PortOfLoading != "Nhava Sheva" {
		t.Errorf("acceptance/loading = %q/%q, want both POL", doc.Ports.PlaceOfAcceptance, doc.Ports.PortOfLoading)
	}
	if doc.Ports.PortOfDischarge != "Jebel Ali" || doc.Ports.PlaceOfDelivery != "Jebel Ali" {
		t.Errorf("discharge/delivery = %q/%q, want both POD", doc.Ports.PortOfDischarge, doc.Ports.PlaceOfDelivery)
	}
}

func TestBuildDocumentMissingLinkedRecords(t *testing.T) {
	bundle := &shipapi.Bundle{Shipment: &shipapi.Shipment{ID: 9}}
	doc := BuildDocument(BLDraft, FormData{ShipmentID: 9}, nil, 0, bundle, nil)

	if doc.Shipper.CompanyName != "" || doc.Ports.PortOfLoading != "" {
		t.Errorf("missing records should render blank, got shipper %q pol %q",
			doc.Shipper.CompanyName, doc.Ports.PortOfLoading)
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("document with missing optional data should validate, got %v", err)
	}
}

func TestBuildDocumentBLNumberPrecedence(t *testing.T) {
	bundle := testBundle()

	// Generated pattern when nothing explicit is supplied.
	doc := BuildDocument(BLOriginal, FormData{ShipmentID: 7}, nil, 0, bundle, nil)
	if doc.BLNumber != "BL RST/NSADMN/25/00007" {
		t.Errorf("generated BL number = %q", doc.BLNumber)
	}

	// Explicit form number beats the pattern.
	doc = BuildDocument(BLOriginal, FormData{ShipmentID: 7, BLNumber: "EXPL-1"}, nil, 0, bundle, nil)
	if doc.BLNumber != "EXPL-1" {
		t.Errorf("explicit BL number = %q, want EXPL-1", doc.BLNumber)
	}

	// House BL beats everything.
	bundle.Shipment.HouseBL = "HBL-42"
	doc = BuildDocument(BLOriginal, FormData{ShipmentID: 7, BLNumber: "EXPL-1"}, nil, 0, bundle, nil)
	if doc.BLNumber != "HBL-42" {
		t.Errorf("house BL number = %q, want HBL-42", doc.BLNumber)
	}
}

func TestBuildDocumentContainerCountNeverSums(t *testing.T) {
	blForm := &BLForm{Containers: []Container{
		{ContainerNumber: "A"}, {ContainerNumber: "B"},
	}}
	doc := BuildDocument(BLOriginal, FormData{ShipmentID: 7}, blForm, 0, testBundle(), nil)

	// One shipment container and two form containers: the count is the
	// larger list, not three.
	if got := doc.ContainerCount(); got != 2 {
		t.Errorf("container count = %d, want 2", got)
	}
	if got := len(doc.DisplayContainers()); got != 2 {
		t.Errorf("display containers = %d, want form list", got)
	}
}
