package billdoc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

// Writer is the interface for document emitters.
type Writer interface {
	Save(path string) error
	WriteTo(w io.Writer) error
}

// Generator composes a bill of lading onto a page canvas and emits the
// binary document. A Generator is single-use: it renders once and the
// composed pages are written as often as needed.
type Generator struct {
	doc      *Document
	prof     *Profile
	pdf      *fpdf.Fpdf
	rendered bool
}

// NewGenerator creates a generator for the document. A nil profile selects
// the compiled-in defaults.
func NewGenerator(doc *Document, prof *Profile) *Generator {
	if prof == nil {
		prof = DefaultProfile()
	}
	return &Generator{doc: doc, prof: prof}
}

// Render composes the full page graph: page frame, header, ports grid,
// title, goods section with the container list (possibly forking to a
// continuation page), bottom grid and fine print. Rendering happens at
// most once per generator.
func (g *Generator) Render() error {
	if g.rendered {
		return nil
	}
	if err := g.doc.Validate(); err != nil {
		return err
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: pageWidthMM, Ht: pageHeightMM},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pm := NewPageMetrics()
	ctx := newRenderContext(pdf, pm, g.doc, g.prof)

	// A missing or broken logo keeps its reserved space in the plan.
	if logo, err := loadLogo(pdf, g.prof.LogoPath, pm.RightColumnWidth()); err == nil {
		ctx.logo = logo
	}
	ctx.plan = PlanHeader(pdfMeasurer{pdf: pdf}, pm, g.doc, g.prof, ctx.logo.H)

	ctx.renderPageFrame()
	headerBottom := ctx.renderHeader()
	ctx.renderPortsGrid()
	ctx.renderTitle()
	goodsBottom := ctx.renderGoodsSection(headerBottom)
	gridBottom := ctx.renderBottomGrid(goodsBottom)
	ctx.renderFinePrint(goodsBottom+8, gridBottom)

	if pdf.Err() {
		return fmt.Errorf("failed to compose document: %w", pdf.Error())
	}
	g.pdf = pdf
	g.rendered = true
	return nil
}

// PageCount returns the number of composed pages. The document must have
// been rendered.
func (g *Generator) PageCount() int {
	if g.pdf == nil {
		return 0
	}
	return g.pdf.PageCount()
}

// FileName returns the deterministic download name for the document.
func (g *Generator) FileName() string {
	return g.doc.FileName(g.prof.FilePrefix)
}

// WriteTo renders the document if needed and writes it to w.
func (g *Generator) WriteTo(w io.Writer) error {
	if err := g.Render(); err != nil {
		return err
	}
	return g.pdf.Output(w)
}

// Save writes the document to a file, creating parent directories as
// needed. A failed write removes the partial file.
func (g *Generator) Save(path string) error {
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
