package billdoc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-pdf/fpdf"
	xdraw "golang.org/x/image/draw"
)

const (
	// logoFallbackHeight is the vertical space kept in the header when the
	// logo cannot be loaded, so downstream section anchors stay put.
	logoFallbackHeight = 22.0

	// logoMaxWidthMM caps the placed logo width inside the right panel.
	logoMaxWidthMM = 90.0

	// logoMaxPixelWidth bounds the bitmap embedded in the document;
	// wider sources are downscaled before registration.
	logoMaxPixelWidth = 1000
)

const logoImageName = "company-logo"

// logoImage is a registered logo ready to be placed on the canvas.
type logoImage struct {
	name string
	W    float64
	H    float64
}

// loadLogo reads, decodes and registers the company logo with the canvas,
// returning its placement size. The placed width fills the panel up to
// logoMaxWidthMM and the height follows the bitmap's aspect ratio.
func loadLogo(pdf *fpdf.Fpdf, path string, panelWidth float64) (logoImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return logoImage{}, fmt.Errorf("failed to read logo: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return logoImage{}, fmt.Errorf("failed to decode logo: %w", err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return logoImage{}, errors.New("logo bitmap is empty")
	}

	if b.Dx() > logoMaxPixelWidth {
		scaled := image.NewRGBA(image.Rect(0, 0, logoMaxPixelWidth, b.Dy()*logoMaxPixelWidth/b.Dx()))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, b, xdraw.Over, nil)
		img = scaled
		b = scaled.Bounds()
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return logoImage{}, fmt.Errorf("failed to encode logo: %w", err)
	}

	pdf.RegisterImageOptionsReader(logoImageName, fpdf.ImageOptions{ImageType: "JPEG"}, &buf)
	if pdf.Err() {
		err := pdf.Error()
		// Registration failures must not poison the rest of the document.
		pdf.ClearError()
		return logoImage{}, fmt.Errorf("failed to register logo: %w", err)
	}

	w := panelWidth
	if w > logoMaxWidthMM {
		w = logoMaxWidthMM
	}
	aspect := float64(b.Dy()) / float64(b.Dx())
	return logoImage{name: logoImageName, W: w, H: w * aspect}, nil
}
