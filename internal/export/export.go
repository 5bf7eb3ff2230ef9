package export

import (
	"context"
	"errors"

	"github.com/smallbiznis/facture/internal/invoice/render"
)

// Export kinds, used both as metric labels and filename suffixes.
const (
	KindPDF   = "pdf"
	KindPNG   = "png"
	KindPrint = "print"
)

// ErrNoRasterizer is returned when an image-backed export is requested
// but no rasterizer was configured.
var ErrNoRasterizer = errors.New("export: no rasterizer configured")

// File is a finished export artifact, ready to stream to the caller.
type File struct {
	Name string
	MIME string
	Data []byte
}

// Rasterizer turns a rendered document into a PNG at the document's
// physical size. Implementations wrap an external rendering engine;
// the editor itself never interprets HTML.
type Rasterizer interface {
	Rasterize(ctx context.Context, doc *render.Document) ([]byte, error)
}
