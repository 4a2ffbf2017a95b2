package billdoc

import (
	"context"

	"github.com/ristarlog/billdoc/shipapi"
)

// FormData is the quick generation form submitted with every request.
// Its fields sit between the saved BL form (which overrides them) and the
// shipment's linked records (which they override).
type FormData struct {
	ShipmentID     int    `json:"shipmentId"`
	BLNumber       string `json:"blNumber"`
	Shipper        string `json:"shipper"`
	Consignee      string `json:"consignee"`
	NotifyParty    string `json:"notifyParty"`
	GrossWeight    string `json:"grossWeight"`
	NetWeight      string `json:"netWeight"`
	FreightCharges string `json:"freightCharges"`
}

// BLForm mirrors the saved bill-of-lading form record. When present, its
// non-empty fields take precedence over everything derived from the
// shipment's linked address-book records.
type BLForm struct {
	ShippersName      string `json:"shippersName"`
	ShippersAddress   string `json:"shippersAddress"`
	ShippersContactNo string `json:"shippersContactNo"`
	ShippersEmail     string `json:"shippersEmail"`

	ConsigneeName      string `json:"consigneeName"`
	ConsigneeAddress   string `json:"consigneeAddress"`
	ConsigneeContactNo string `json:"consigneeContactNo"`
	ConsigneeEmail     string `json:"consigneeEmail"`

	NotifyPartyName      string `json:"notifyPartyName"`
	NotifyPartyAddress   string `json:"notifyPartyAddress"`
	NotifyPartyContactNo string `json:"notifyPartyContactNo"`
	NotifyPartyEmail     string `json:"notifyPartyEmail"`

	SealNo  string `json:"sealNo"`
	GrossWt string `json:"grossWt"`
	NetWt   string `json:"netWt"`

	BillOfLadingDetails string `json:"billofLadingDetails"`
	HouseBL             string `json:"houseBL"`
	BLNumber            string `json:"blNumber"`
	VesselVoyageNo      string `json:"vesselNo"`
	DateOfIssue         string `json:"dateOfIssue"`

	DeliveryAgentName      string `json:"deliveryAgentName"`
	DeliveryAgentAddress   string `json:"deliveryAgentAddress"`
	DeliveryAgentContactNo string `json:"deliveryAgentContactNo"`
	DeliveryAgentEmail     string `json:"deliveryAgentEmail"`

	FreightAmount string `json:"freightAmount"`

	Containers []Container `json:"containers"`
}

func partyFromAddressBook(ab *shipapi.AddressBook) Party {
	if ab == nil {
		return Party{}
	}
	return Party{
		CompanyName: ab.CompanyName,
		Address:     ab.Address,
		Phone:       ab.Phone,
		Email:       ab.Email,
	}
}

func convertContainers(in []shipapi.Container) []Container {
	if len(in) == 0 {
		return nil
	}
	out := make([]Container, len(in))
	for i, c := range in {
		out[i] = Container{
			ContainerNumber: c.ContainerNumber,
			SealNumber:      c.SealNumber,
			GrossWt:         c.GrossWt,
			NetWt:           c.NetWt,
			DepotName:       c.DepotName,
			Capacity:        c.Capacity,
			Size:            c.ContainerSize,
		}
	}
	return out
}

// BuildDocument assembles the document model from the fetched bundle, the
// quick form and the optional saved BL form. Precedence per field is
// BL form, then quick form, then the shipment's linked records; missing
// linked records resolve to empty strings and never block assembly.
func BuildDocument(blType BLType, form FormData, blForm *BLForm, copyNumber int, bundle *shipapi.Bundle, prof *Profile) *Document {
	if prof == nil {
		prof = DefaultProfile()
	}
	shipment := bundle.Shipment
	if shipment == nil {
		shipment = &shipapi.Shipment{ID: form.ShipmentID}
	}

	derivedShipper := MergeParty(
		Party{CompanyName: form.Shipper},
		partyFromAddressBook(bundle.FindAddressBook(shipment.ShipperAddressBookID)),
	)
	derivedConsignee := MergeParty(
		Party{CompanyName: form.Consignee},
		partyFromAddressBook(bundle.FindAddressBook(shipment.ConsigneeAddressBookID)),
	)
	derivedNotify := Party{CompanyName: form.NotifyParty}

	doc := &Document{
		ShipmentID: form.ShipmentID,
		Type:       blType,
		CopyNumber: copyNumber,

		Shipper:     derivedShipper,
		Consignee:   derivedConsignee,
		NotifyParty: derivedNotify,

		ShipmentContainers: convertContainers(shipment.Containers),

		GrossWeight: form.GrossWeight,
		NetWeight:   form.NetWeight,

		FreightAmount: form.FreightCharges,
	}

	var polName, podName string
	if shipment.PolPort != nil {
		polName = shipment.PolPort.PortName
	}
	if shipment.PodPort != nil {
		podName = shipment.PodPort.PortName
	}
	vessel := shipment.VesselName

	houseBL := shipment.HouseBL
	explicitNumber := form.BLNumber

	if blForm != nil {
		doc.Shipper = MergeParty(Party{
			CompanyName: blForm.ShippersName,
			Address:     blForm.ShippersAddress,
			Phone:       blForm.ShippersContactNo,
			Email:       blForm.ShippersEmail,
		}, doc.Shipper)
		doc.Consignee = MergeParty(Party{
			CompanyName: blForm.ConsigneeName,
			Address:     blForm.ConsigneeAddress,
			Phone:       blForm.ConsigneeContactNo,
			Email:       blForm.ConsigneeEmail,
		}, doc.Consignee)
		doc.NotifyParty = MergeParty(Party{
			CompanyName: blForm.NotifyPartyName,
			Address:     blForm.NotifyPartyAddress,
			Phone:       blForm.NotifyPartyContactNo,
			Email:       blForm.NotifyPartyEmail,
		}, doc.NotifyParty)

		doc.FormContainers = blForm.Containers
		doc.GrossWeight = firstNonEmpty(blForm.GrossWt, doc.GrossWeight)
		doc.NetWeight = firstNonEmpty(blForm.NetWt, doc.NetWeight)
		doc.DeliveryAgent = Party{
			CompanyName: blForm.DeliveryAgentName,
			Address:     blForm.DeliveryAgentAddress,
			Phone:       blForm.DeliveryAgentContactNo,
			Email:       blForm.DeliveryAgentEmail,
		}
		doc.FreightAmount = firstNonEmpty(blForm.FreightAmount, doc.FreightAmount)
		doc.BLDetails = blForm.BillOfLadingDetails
		doc.DateOfIssue = blForm.DateOfIssue
		vessel = firstNonEmpty(blForm.VesselVoyageNo, vessel)
		houseBL = firstNonEmpty(blForm.HouseBL, houseBL)
		explicitNumber = firstNonEmpty(blForm.BLNumber, explicitNumber)
	}

	// The document always carries three party blocks; the notify party
	// falls back to the consignee when not independently supplied.
	if doc.NotifyParty.IsEmpty() {
		doc.NotifyParty = doc.Consignee
	}

	doc.Ports = NewPortsGrid(polName, podName, vessel)
	doc.BLNumber = prof.BLNumberFor(houseBL, explicitNumber, form.ShipmentID)

	return doc
}

// GenerateBL fetches the shipment bundle, assembles the document and
// renders it, returning a generator ready to save or stream. A fetch
// failure aborts the whole operation with no partial output.
func GenerateBL(ctx context.Context, client *shipapi.Client, blType BLType, form FormData, blForm *BLForm, copyNumber int, prof *Profile) (*Generator, error) {
	bundle, err := client.FetchAll(ctx, form.ShipmentID)
	if err != nil {
		return nil, err
	}
	doc := BuildDocument(blType, form, blForm, copyNumber, bundle, prof)
	gen := NewGenerator(doc, prof)
	if err := gen.Render(); err != nil {
		return nil, err
	}
	return gen, nil
}
