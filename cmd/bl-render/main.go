// Command bl-render renders a Bill of Lading from a JSON fixture without
// contacting the data API, for layout work and regression checks.
//
// The fixture holds the same three lookups the live aggregator fetches:
//
//	{"shipment": {...}, "addressBooks": [...], "products": [...],
//	 "form": {...}, "blForm": {...}}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ristarlog/billdoc"
	"github.com/ristarlog/billdoc/shipapi"
)

type fixture struct {
	Shipment     *shipapi.Shipment     `json:"shipment"`
	AddressBooks []shipapi.AddressBook `json:"addressBooks"`
	Products     []shipapi.Product     `json:"products"`
	Form         billdoc.FormData      `json:"form"`
	BLForm       *billdoc.BLForm       `json:"blForm"`
}

func run() error {
	in := flag.String("in", "", "fixture JSON file")
	outDir := flag.String("out", ".", "output directory")
	blType := flag.String("type", "original", "BL type: original, draft or seaway")
	copyNumber := flag.Int("copy", 0, "copy number: 0 first original, 1 second, 2 third")
	profilePath := flag.String("profile", "", "issuing-company profile YAML")
	flag.Parse()

	if *in == "" {
		return fmt.Errorf("missing -in fixture file")
	}
	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return fmt.Errorf("failed to parse fixture: %w", err)
	}

	prof, err := billdoc.LoadProfile(*profilePath)
	if err != nil {
		return err
	}

	bundle := &shipapi.Bundle{
		Shipment:     fx.Shipment,
		AddressBooks: fx.AddressBooks,
		Products:     fx.Products,
	}
	if fx.Shipment != nil && fx.Form.ShipmentID == 0 {
		fx.Form.ShipmentID = fx.Shipment.ID
	}

	doc := billdoc.BuildDocument(billdoc.BLType(*blType), fx.Form, fx.BLForm, *copyNumber, bundle, prof)
	gen := billdoc.NewGenerator(doc, prof)

	path := filepath.Join(*outDir, gen.FileName())
	if err := gen.Save(path); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d pages)\n", path, gen.PageCount())
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bl-render:", err)
		os.Exit(1)
	}
}
