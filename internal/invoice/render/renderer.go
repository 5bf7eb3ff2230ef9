package render

import (
	custdomain "github.com/smallbiznis/facture/internal/customization/domain"
	invdomain "github.com/smallbiznis/facture/internal/invoice/domain"
)

// A4 document footprint in millimetres. Every variant renders exactly
// this page size so exports reproduce the preview at full fidelity.
const (
	PageWidthMM  = 210
	PageHeightMM = 297
)

// Input is the deterministic input pair for document rendering. The
// invoice must be a deep copy: renderers are pure readers and never
// mutate their input.
type Input struct {
	Invoice       invdomain.Invoice
	Customization custdomain.Customization
}

// Document is a fully rendered, fixed-size invoice surface.
type Document struct {
	Template invdomain.Template
	HTML     string
	WidthMM  float64
	HeightMM float64
}

// Renderer turns an invoice plus a customization profile into a
// fixed-size document. Implementations differ only in visual
// arrangement; none alters data or calculation semantics.
type Renderer interface {
	Name() invdomain.Template
	Render(Input) (*Document, error)
}

// ForTemplate dispatches on the template tag. Unknown names and the
// reserved legacy tags fall back to the customizable variant.
func ForTemplate(name invdomain.Template) Renderer {
	switch name {
	case invdomain.TemplateMinimal:
		return newMinimal()
	case invdomain.TemplateProfessional:
		return newProfessional()
	case invdomain.TemplateModern:
		return newModern()
	default:
		return newCustomizable()
	}
}

// Variants lists the renderable template tags in display order.
func Variants() []invdomain.Template {
	return []invdomain.Template{
		invdomain.TemplateMinimal,
		invdomain.TemplateProfessional,
		invdomain.TemplateModern,
		invdomain.TemplateCustom,
	}
}
