package billdoc

import (
	"bytes"
	"testing"

	"github.com/go-pdf/fpdf"
)

// The shipped tariff wording carries an en-dash; the core fonts are
// single-byte, so drawn text must arrive codepage-translated or the dash
// degrades into three stray glyphs on every printed document.
func TestChargeLineSurvivesCodepageTranslation(t *testing.T) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: pageWidthMM, Ht: pageHeightMM},
	})
	pdf.SetCompression(false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	ctx := newRenderContext(pdf, NewPageMetrics(), &Document{}, DefaultProfile())
	ctx.setFont("", 8)
	line := DefaultProfile().ChargeLines[0]
	if !bytes.Contains([]byte(line), []byte("–")) {
		t.Fatalf("fixture line lost its en-dash: %q", line)
	}
	ctx.text(25, 40, line)
	ctx.textCentered(150, 50, line)
	ctx.textRight(270, 60, line)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("SECURITY DEPOSIT")) {
		t.Fatal("charge line missing from the content stream")
	}
	if bytes.Contains(buf.Bytes(), []byte("\xe2\x80\x93")) {
		t.Error("en-dash reached the content stream as raw UTF-8 bytes")
	}
}
