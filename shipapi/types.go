// Package shipapi is the read-only client for the back-office data API.
// It supplies the shipment, address-book and product records a document
// generation call aggregates from; it performs no writes.
package shipapi

import "strings"

// Port is a linked port record.
type Port struct {
	ID       int    `json:"id"`
	PortName string `json:"portName"`
}

// Container is one container row linked to a shipment.
type Container struct {
	ContainerNumber string `json:"containerNumber"`
	SealNumber      string `json:"sealNumber"`
	GrossWt         string `json:"grossWt"`
	NetWt           string `json:"netWt"`
	DepotName       string `json:"depotName"`
	Capacity        string `json:"capacity"`
	ContainerSize   string `json:"containerSize"`
}

// Shipment is the upstream shipment record with its linked data.
type Shipment struct {
	ID                     int         `json:"id"`
	ProductID              int         `json:"productId"`
	HouseBL                string      `json:"houseBL"`
	MasterBL               string      `json:"masterBL"`
	RefNumber              string      `json:"refNumber"`
	GsDate                 string      `json:"gsDate"`
	VesselName             string      `json:"vesselName"`
	TankPreparation        string      `json:"tankPreparation"`
	ShipperAddressBookID   int         `json:"shipperAddressBookId"`
	ConsigneeAddressBookID int         `json:"consigneeAddressBookId"`
	PolPort                *Port       `json:"polPort"`
	PodPort                *Port       `json:"podPort"`
	Containers             []Container `json:"containers"`
}

// AddressBook is one company record from the address book.
type AddressBook struct {
	ID          int    `json:"id"`
	CompanyName string `json:"companyName"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	Country     string `json:"country"`
}

// Product is one product reference record.
type Product struct {
	ID          int    `json:"id"`
	ProductName string `json:"productName"`
}

// Bundle holds the three lookups a generation call needs.
type Bundle struct {
	Shipment     *Shipment
	AddressBooks []AddressBook
	Products     []Product
}

// FindAddressBook returns the address-book entry with the given id, or nil.
func (b *Bundle) FindAddressBook(id int) *AddressBook {
	for i := range b.AddressBooks {
		if b.AddressBooks[i].ID == id {
			return &b.AddressBooks[i]
		}
	}
	return nil
}

// FindProduct returns the product with the given id, or nil.
func (b *Bundle) FindProduct(id int) *Product {
	for i := range b.Products {
		if b.Products[i].ID == id {
			return &b.Products[i]
		}
	}
	return nil
}

// FindDepot resolves a depot name against the address book, first by exact
// company name, then by substring in either direction.
func (b *Bundle) FindDepot(name string) *AddressBook {
	if name == "" {
		return nil
	}
	for i := range b.AddressBooks {
		if b.AddressBooks[i].CompanyName == name {
			return &b.AddressBooks[i]
		}
	}
	for i := range b.AddressBooks {
		cn := b.AddressBooks[i].CompanyName
		if cn != "" && (strings.Contains(cn, name) || strings.Contains(name, cn)) {
			return &b.AddressBooks[i]
		}
	}
	return nil
}
