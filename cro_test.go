package billdoc

import (
	"bytes"
	"testing"

	"github.com/ristarlog/billdoc/shipapi"
)

func TestBuildReleaseOrder(t *testing.T) {
	bundle := &shipapi.Bundle{
		Shipment: &shipapi.Shipment{
			ID:        12,
			HouseBL:   "HBL-12",
			RefNumber: "REF-12",
			GsDate:    "2025-06-01",
			PolPort:   &shipapi.Port{PortName: "Nhava Sheva"},
			PodPort:   &shipapi.Port{PortName: "Jebel Ali"},
			Containers: []shipapi.Container{
				{ContainerNumber: "RSTU1234567", DepotName: "ACME DEPOT"},
			},
		},
		AddressBooks: []shipapi.AddressBook{
			{ID: 1, CompanyName: "ACME DEPOT SERVICES", Address: "1 Yard Rd", Phone: "555-0101"},
		},
	}

	ro := BuildReleaseOrder(bundle)
	if ro.HouseBL != "HBL-12" {
		t.Errorf("house BL = %q", ro.HouseBL)
	}
	if ro.FinalDestination != "Jebel Ali" {
		t.Errorf("final destination = %q", ro.FinalDestination)
	}
	if ro.TankPrep != "N/A" {
		t.Errorf("tank prep default = %q, want N/A", ro.TankPrep)
	}
	if ro.Depot.Address != "1 Yard Rd" {
		t.Errorf("depot lookup failed: %+v", ro.Depot)
	}
	if got := ro.FileName(); got != "CRO_Shipment_12.pdf" {
		t.Errorf("file name = %q", got)
	}
}

func TestCROGeneratorRendersWithoutContainers(t *testing.T) {
	ro := BuildReleaseOrder(&shipapi.Bundle{Shipment: &shipapi.Shipment{ID: 3}})
	gen := NewCROGenerator(ro, nil)

	var buf bytes.Buffer
	if err := gen.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}
