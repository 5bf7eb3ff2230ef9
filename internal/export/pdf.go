package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/smallbiznis/facture/internal/invoice/render"
)

// wrapPDF embeds a full-page raster into a single A4 PDF page. The
// image is stretched to the exact page footprint, so the PDF reproduces
// the preview pixel for pixel.
func wrapPDF(png []byte) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(true)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("page", opts, bytes.NewReader(png))
	pdf.ImageOptions("page", 0, 0, render.PageWidthMM, render.PageHeightMM, false, opts, 0, "")
	if pdf.Err() {
		return nil, fmt.Errorf("export: embed page image: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
