package render

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"

	custdomain "github.com/smallbiznis/facture/internal/customization/domain"
	invdomain "github.com/smallbiznis/facture/internal/invoice/domain"
	"github.com/smallbiznis/facture/pkg/format"
)

var (
	hexColorPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	dataURIPattern   = regexp.MustCompile(`^data:image/[a-z+.-]+;base64,[A-Za-z0-9+/=]+$`)
	fontFamilyStacks = map[custdomain.FontFamily]string{
		custdomain.FontInter:      "Inter, system-ui, sans-serif",
		custdomain.FontRoboto:     "Roboto, sans-serif",
		custdomain.FontPoppins:    "Poppins, sans-serif",
		custdomain.FontMontserrat: "Montserrat, sans-serif",
		custdomain.FontOpenSans:   `"Open Sans", sans-serif`,
	}
)

// itemView is one pre-formatted table row.
type itemView struct {
	Name        string
	Description string
	Quantity    string
	Price       string
	TaxRate     string
	Amount      string
	Striped     bool
}

// page is the shared view model every variant renders from. All values
// are pre-formatted and sanitized here so the templates stay declarative.
type page struct {
	Invoice invdomain.Invoice
	C       custdomain.Customization

	FontStack   template.CSS
	Colors      custdomain.ColorScheme
	LogoURL     template.URL
	HasLogo     bool
	LogoAlign   string
	ShowLogo    bool
	Watermark   bool
	HeaderClass string
	LayoutClass string
	TableClass  string
	BorderClass string

	Items       []itemView
	ItemCount   int
	Subtotal    string
	TaxTotal    string
	Discount    string
	HasDiscount bool
	Total       string

	InvoiceDate     string
	InvoiceDateLong string
	DueDate         string
	HasDueDate      bool

	// Clamped knobs, in the units the stylesheets consume.
	LogoSizePx       float64
	WatermarkWidthPc float64
	WatermarkOpacity float64
	PaddingPx        float64
	SpacingPx        float64
	RadiusPx         float64
}

// base reference size the logo percentage scales against.
const logoBasePx = 96.0

func newPage(in Input) page {
	c := in.Customization
	inv := in.Invoice

	colors := sanitizeColors(c.Colors)
	money := func(v float64) string { return format.Currency(v, inv.Currency) }

	items := make([]itemView, 0, len(inv.Items))
	for i, item := range inv.Items {
		items = append(items, itemView{
			Name:        item.Name,
			Description: item.Description,
			Quantity:    trimNumber(item.Quantity),
			Price:       money(item.Price),
			TaxRate:     trimNumber(item.TaxRate) + "%",
			Amount:      money(item.Amount),
			Striped:     c.TableStyle == custdomain.TableStriped && i%2 == 1,
		})
	}

	hasLogo := dataURIPattern.MatchString(inv.Company.LogoURL)
	p := page{
		Invoice: inv,
		C:       c,

		FontStack:   template.CSS(fontStack(c.FontFamily)),
		Colors:      colors,
		HasLogo:     hasLogo,
		ShowLogo:    hasLogo && c.LogoPlacement != custdomain.LogoNone && c.LogoPlacement != custdomain.LogoWatermark,
		Watermark:   hasLogo && (c.ShowWatermark || c.LogoPlacement == custdomain.LogoWatermark),
		LogoAlign:   logoAlignment(c.LogoPlacement),
		HeaderClass: "header-" + string(headerStyle(c.HeaderStyle)),
		LayoutClass: "layout-" + string(layoutStyle(c.LayoutStyle)),
		TableClass:  "table-" + string(tableStyle(c.TableStyle)),
		BorderClass: borderClass(c.ShowBorder),

		Items:       items,
		ItemCount:   len(items),
		Subtotal:    money(inv.Subtotal),
		TaxTotal:    money(inv.TaxAmount),
		Discount:    money(inv.DiscountAmount),
		HasDiscount: inv.DiscountAmount != 0,
		Total:       money(inv.TotalAmount),

		InvoiceDate:     format.Date(inv.InvoiceDate, format.DateMedium),
		InvoiceDateLong: format.Date(inv.InvoiceDate, format.DateLong),
		DueDate:         format.Date(inv.DueDate, format.DateMedium),
		HasDueDate:      strings.TrimSpace(inv.DueDate) != "",

		LogoSizePx:       logoBasePx * clamp(c.LogoSize, 50, 200) / 100,
		WatermarkWidthPc: clamp(c.WatermarkSize, 40, 120) / 2,
		WatermarkOpacity: clamp(c.WatermarkOpacity, 5, 50) / 100,
		PaddingPx:        clamp(c.Padding, 0, 96),
		SpacingPx:        clamp(c.SectionSpacing, 0, 96),
		RadiusPx:         clamp(c.BorderRadius, 0, 48),
	}
	if hasLogo {
		// The data URI shape was just validated; it is safe to embed.
		p.LogoURL = template.URL(inv.Company.LogoURL)
	}
	return p
}

var pageFuncs = template.FuncMap{
	"px": func(v float64) template.CSS {
		return template.CSS(trimNumber(v) + "px")
	},
	"pct": func(v float64) template.CSS {
		return template.CSS(trimNumber(v) + "%")
	},
	"opacity": func(v float64) template.CSS {
		return template.CSS(fmt.Sprintf("%.2f", v))
	},
	"color": func(v string) template.CSS {
		return template.CSS(sanitizeColor(v, "#1f2937"))
	},
	"nl2br": func(v string) template.HTML {
		escaped := template.HTMLEscapeString(v)
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br/>"))
	},
}

func mustParse(name, body string) *template.Template {
	return template.Must(template.New(name).Funcs(pageFuncs).Parse(body))
}

func execute(tpl *template.Template, name invdomain.Template, in Input) (*Document, error) {
	var buf strings.Builder
	if err := tpl.Execute(&buf, newPage(in)); err != nil {
		return nil, err
	}
	return &Document{
		Template: name,
		HTML:     buf.String(),
		WidthMM:  PageWidthMM,
		HeightMM: PageHeightMM,
	}, nil
}

func fontStack(f custdomain.FontFamily) string {
	if stack, ok := fontFamilyStacks[f]; ok {
		return stack
	}
	return fontFamilyStacks[custdomain.FontInter]
}

func sanitizeColors(c custdomain.ColorScheme) custdomain.ColorScheme {
	d := custdomain.Default().Colors
	c.Primary = sanitizeColor(c.Primary, d.Primary)
	c.Secondary = sanitizeColor(c.Secondary, d.Secondary)
	c.Accent = sanitizeColor(c.Accent, d.Accent)
	c.Text = sanitizeColor(c.Text, d.Text)
	c.TextSecondary = sanitizeColor(c.TextSecondary, d.TextSecondary)
	c.Background = sanitizeColor(c.Background, d.Background)
	c.Border = sanitizeColor(c.Border, d.Border)
	c.TableBg = sanitizeColor(c.TableBg, d.TableBg)
	c.TableHeaderBg = sanitizeColor(c.TableHeaderBg, d.TableHeaderBg)
	c.TableHeaderText = sanitizeColor(c.TableHeaderText, d.TableHeaderText)
	return c
}

func sanitizeColor(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if hexColorPattern.MatchString(trimmed) {
		return trimmed
	}
	return fallback
}

func logoAlignment(p custdomain.LogoPlacement) string {
	switch p {
	case custdomain.LogoTopCenter:
		return "center"
	case custdomain.LogoTopRight:
		return "flex-end"
	default:
		return "flex-start"
	}
}

func headerStyle(h custdomain.HeaderStyle) custdomain.HeaderStyle {
	switch h {
	case custdomain.HeaderClassic, custdomain.HeaderMinimal, custdomain.HeaderBold, custdomain.HeaderGradient:
		return h
	}
	return custdomain.HeaderClassic
}

func layoutStyle(l custdomain.LayoutStyle) custdomain.LayoutStyle {
	switch l {
	case custdomain.LayoutSingleColumn, custdomain.LayoutTwoColumn, custdomain.LayoutModernGrid:
		return l
	}
	return custdomain.LayoutTwoColumn
}

func tableStyle(t custdomain.TableStyle) custdomain.TableStyle {
	switch t {
	case custdomain.TableStriped, custdomain.TableBordered, custdomain.TableMinimal, custdomain.TableModern:
		return t
	}
	return custdomain.TableStriped
}

func borderClass(show bool) string {
	if show {
		return "border-on"
	}
	return "border-off"
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func trimNumber(v float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
