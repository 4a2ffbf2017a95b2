package billdoc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile carries the issuing company's identity and the fixed wording
// printed on every bill of lading. Values not set in the YAML file keep
// their compiled-in defaults.
type Profile struct {
	CompanyName    string `yaml:"companyName"`
	CompanyAddress string `yaml:"companyAddress"`
	LogoPath       string `yaml:"logoPath"`

	// FilePrefix is the leading segment of generated file names.
	FilePrefix string `yaml:"filePrefix"`
	// BLNumberFormat derives a document number from the shipment id when
	// neither a house BL nor an explicit number is supplied.
	BLNumberFormat string `yaml:"blNumberFormat"`

	// EquipmentPhrase follows the zero-padded container count in the
	// goods description.
	EquipmentPhrase string `yaml:"equipmentPhrase"`

	// HeaderTerms is the paragraph printed under the company identity in
	// the header's right column.
	HeaderTerms []string `yaml:"headerTerms"`
	// FreightClauses are the bold clauses under the goods description.
	FreightClauses []string `yaml:"freightClauses"`
	// ChargeLines is the tariff list following the freight clauses.
	ChargeLines []string `yaml:"chargeLines"`
	// FinePrint is the terms block at the foot of the document.
	FinePrint []string `yaml:"finePrint"`
}

// DefaultProfile returns the Ristar Logistics profile the application
// ships with.
func DefaultProfile() *Profile {
	return &Profile{
		CompanyName:     "RISTAR LOGISTICS PVT LTD",
		CompanyAddress:  "Office No. C- 0010, Akshar Business Park, Plot No 3, Sector 25, Vashi Navi Mumbai - 400703",
		LogoPath:        "assets/crologo.jpg",
		FilePrefix:      "RST_NSAJEA_25_00001",
		BLNumberFormat:  "BL RST/NSADMN/25/%05d",
		EquipmentPhrase: "X20 ISO TANK SAID TO CONTAINS",
		HeaderTerms: []string{
			"Ristar Logistics approved good condition herein at the place of receipt for transport and delivery as mentioned above, unless otherwise stated. The MFD undertakes to perform or to procure the performance.",
			"The transport to the place for which the goods are taken for carriage, to the place designated for delivery and assumes responsibility for any loss or damage except as provided below, all services rendered in exchange for the goods. In witness whereof the original MTD of this tone and date in witness whereof having accomplished the other(s) to be void.",
		},
		FreightClauses: []string{
			`"FREIGHT PREPAID"`,
			"FREE 14 DAYS AT DESTINATION PORT THERE AFTER AT",
			"USD 45 /DAY/TANK",
			`"SHIPPING LINE /SHIPPING LINE AGENTS ARE ELIGIBLE UNDER THIS B/L TERMS, TO`,
			"COLLECT CHARGES SUCH AS",
		},
		ChargeLines: []string{
			"SECURITY DEPOSIT – SAR 3000 per dry container & SAR 7,000 per Reefer/Flat rack/special equipment",
			"LOLO charges: SAR 100/150 + VAT",
			"ORC: SAR 300/450/560 per 20/40/45 for NON-DG and SAR375/562.50/700 per 20'/40'/45' for DG respectively.",
			"Inspection Fees: SAR 140 per container",
			"Reefer plug in charges: SAR 134/day per reefer",
			"Special gear charges: SAR 300 per unit for OOG",
			"Riyadh destined Container shifting: SAR 60 per unit",
			"X-Ray charges for Riyadh shipment: SAR 460/560 (20'/40')",
			"Line detention: As per MAWANI regulation article 28/02",
			"Damage repair / cleaning charges: as per actual, if any.",
		},
		FinePrint: []string{
			"By accepting this Bill of lading shipper accepts and abides by all terms, conditions clauses printed and stamped on the face or reverse side of this bill of lading.",
			"By accepting this Bill of lading, the shipper accepts his responsibility towards the carrier for payment of freight (in case of freight collect shipments), Accrued",
			"Government, reshipment or disposal costs (as the case may be) if the consignee fails to take delivery of the cargo within 90 days from the date of cargo reaches destination.",
			"For freight prepaid Bill of Ladings, delivery of Cargo is subject to realisation of freight cheque. Demurrage/Detention charges at port of destination payable by consignee as per",
			"line's tariff.",
			"The carrier reserves the right to repack the goods if the same are not in seaworthy packing.The packing condition will be certified by the local bonded",
			"warehouse of competent surveyor , and the shipper by virtue of accepting this bill of lading accepts the liability towards the cost for the same.",
			"For shipments where inland trucking is involved it is mandatory on consignee to custom clear the shipment at port of discharge.",
			"In case of any discrepancy found in declared weight & volume the carrier reserve the right to hold the shipment & recover all charges as per the revised weight&",
			"volume whichever is high from shipper or consignee.",
		},
	}
}

// LoadProfile reads a YAML profile over the defaults. An empty path
// returns the defaults unchanged.
func LoadProfile(path string) (*Profile, error) {
	p := DefaultProfile()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return p, nil
}

// BLNumberFor derives the printed document number: the house BL when set,
// otherwise the explicitly entered number, otherwise the profile's
// generated pattern applied to the shipment id.
func (p *Profile) BLNumberFor(houseBL, explicit string, shipmentID int) string {
	if houseBL != "" {
		return houseBL
	}
	if explicit != "" {
		return explicit
	}
	return fmt.Sprintf(p.BLNumberFormat, shipmentID)
}
