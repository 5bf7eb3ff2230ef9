package render

import (
	"reflect"
	"strings"
	"testing"

	custdomain "github.com/smallbiznis/facture/internal/customization/domain"
	invdomain "github.com/smallbiznis/facture/internal/invoice/domain"
	"go.uber.org/zap"
)

const testLogoURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func fixtureInvoice() invdomain.Invoice {
	return invdomain.Invoice{
		InvoiceNumber: "INV-2026-0042",
		Company: invdomain.CompanyDetails{
			Name:    "Northwind Studio",
			Email:   "billing@northwind.test",
			Address: "12 Harbour Lane\nPortsmouth",
			GST:     "29ZZZZZ9999Z5",
			LogoURL: testLogoURI,
		},
		Client: invdomain.ClientDetails{
			Name:    "Acme Corp",
			Email:   "ap@acme.test",
			Address: "400 Main St",
		},
		InvoiceDate: "2026-08-01",
		DueDate:     "2026-08-31",
		Items: []invdomain.Item{
			{ID: "1", Name: "Design sprint", Description: "Two week engagement", Quantity: 1, Price: 1200, TaxRate: 18, Amount: 1416},
			{ID: "2", Name: "Hosting", Quantity: 12, Price: 25, TaxRate: 0, Amount: 300},
		},
		Subtotal:       1500,
		TaxAmount:      216,
		DiscountAmount: 0,
		TotalAmount:    1716,
		Template:       invdomain.TemplateCustom,
		Notes:          "Thank you for your business.",
		Terms:          "Net 30.",
		Currency:       "USD",
		Status:         invdomain.StatusDraft,
	}
}

func TestRenderAllVariants(t *testing.T) {
	inv := fixtureInvoice()
	c := custdomain.Default()

	for _, name := range Variants() {
		doc, err := ForTemplate(name).Render(Input{Invoice: inv, Customization: c})
		if err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
		if doc.Template != name {
			t.Fatalf("template tag = %q, want %q", doc.Template, name)
		}
		if doc.WidthMM != 210 || doc.HeightMM != 297 {
			t.Fatalf("%s dimensions = %gx%g, want 210x297", name, doc.WidthMM, doc.HeightMM)
		}
		for _, want := range []string{
			"INV-2026-0042", "Northwind Studio", "Acme Corp",
			"Design sprint", "$1,500.00", "$1,716.00",
		} {
			if !strings.Contains(doc.HTML, want) {
				t.Fatalf("%s output missing %q", name, want)
			}
		}
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	inv := fixtureInvoice()
	c := custdomain.Default()
	c.ShowWatermark = true
	before := Input{Invoice: inv.Clone(), Customization: c}

	in := Input{Invoice: inv, Customization: c}
	for _, name := range Variants() {
		if _, err := ForTemplate(name).Render(in); err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
	}
	if !reflect.DeepEqual(before.Invoice, in.Invoice) {
		t.Fatalf("invoice mutated by rendering")
	}
	if !reflect.DeepEqual(before.Customization, in.Customization) {
		t.Fatalf("customization mutated by rendering")
	}
}

func TestForTemplateFallback(t *testing.T) {
	for _, name := range []invdomain.Template{
		invdomain.TemplateBold,
		invdomain.TemplateLetterhead,
		invdomain.Template("no-such-template"),
		invdomain.Template(""),
	} {
		if got := ForTemplate(name).Name(); got != invdomain.TemplateCustom {
			t.Fatalf("ForTemplate(%q).Name() = %q, want custom", name, got)
		}
	}
}

func TestSectionToggles(t *testing.T) {
	inv := fixtureInvoice()
	c := custdomain.Default()
	c.Sections.ShowNotes = false
	c.Sections.ShowTerms = false
	c.Sections.ShowClientDetails = false

	doc, err := ForTemplate(invdomain.TemplateCustom).Render(Input{Invoice: inv, Customization: c})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(doc.HTML, "Thank you for your business.") {
		t.Fatalf("notes rendered with ShowNotes=false")
	}
	if strings.Contains(doc.HTML, "Net 30.") {
		t.Fatalf("terms rendered with ShowTerms=false")
	}
	if strings.Contains(doc.HTML, "Acme Corp") {
		t.Fatalf("client details rendered with ShowClientDetails=false")
	}
}

func TestDiscountRowConditional(t *testing.T) {
	inv := fixtureInvoice()
	c := custdomain.Default()

	doc, err := ForTemplate(invdomain.TemplateMinimal).Render(Input{Invoice: inv, Customization: c})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(doc.HTML, "Discount") {
		t.Fatalf("discount row shown with zero discount")
	}

	inv.DiscountAmount = 100
	inv.TotalAmount = 1616
	doc, err = ForTemplate(invdomain.TemplateMinimal).Render(Input{Invoice: inv, Customization: c})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(doc.HTML, "Discount") {
		t.Fatalf("discount row missing with nonzero discount")
	}
}

func TestWatermarkAndLogo(t *testing.T) {
	inv := fixtureInvoice()
	c := custdomain.Default()
	c.LogoPlacement = custdomain.LogoWatermark

	doc, err := ForTemplate(invdomain.TemplateCustom).Render(Input{Invoice: inv, Customization: c})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(doc.HTML, `class="watermark"`) {
		t.Fatalf("watermark layer missing for watermark placement")
	}

	// A non-data-URI logo must never reach the document.
	inv.Company.LogoURL = "https://evil.test/logo.png"
	doc, err = ForTemplate(invdomain.TemplateCustom).Render(Input{Invoice: inv, Customization: c})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(doc.HTML, "evil.test") {
		t.Fatalf("remote logo URL leaked into document")
	}
	if strings.Contains(doc.HTML, `class="watermark"`) {
		t.Fatalf("watermark rendered without a usable logo")
	}
}

func TestColorSanitization(t *testing.T) {
	inv := fixtureInvoice()
	c := custdomain.Default()
	c.Colors.Primary = "red;} body { display: none"

	doc, err := ForTemplate(invdomain.TemplateModern).Render(Input{Invoice: inv, Customization: c})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(doc.HTML, "display: none") {
		t.Fatalf("unsanitized color value reached the stylesheet")
	}
	if !strings.Contains(doc.HTML, custdomain.Default().Colors.Primary) {
		t.Fatalf("expected default primary color as fallback")
	}
}

func TestKnobClamping(t *testing.T) {
	in := Input{Invoice: fixtureInvoice(), Customization: custdomain.Default()}
	in.Customization.LogoSize = 5000
	in.Customization.WatermarkOpacity = 500
	in.Customization.Padding = -40

	p := newPage(in)
	if p.LogoSizePx != logoBasePx*2 {
		t.Fatalf("LogoSizePx = %g, want %g", p.LogoSizePx, logoBasePx*2)
	}
	if p.WatermarkOpacity != 0.5 {
		t.Fatalf("WatermarkOpacity = %g, want 0.5", p.WatermarkOpacity)
	}
	if p.PaddingPx != 0 {
		t.Fatalf("PaddingPx = %g, want 0", p.PaddingPx)
	}
}

func TestEngineCachesPerRevision(t *testing.T) {
	e := NewEngine(zap.NewNop())
	in := Input{Invoice: fixtureInvoice(), Customization: custdomain.Default()}

	first, err := e.Render(7, invdomain.TemplateModern, in)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	again, err := e.Render(7, invdomain.TemplateModern, in)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first != again {
		t.Fatalf("same revision should serve the cached document")
	}

	next, err := e.Render(8, invdomain.TemplateModern, in)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if next == first {
		t.Fatalf("new revision must re-render")
	}
	if _, hit := e.cache.Get(7, invdomain.TemplateModern); hit {
		t.Fatalf("old revision should be purged after a newer render")
	}
}

func TestEngineFallsBackOnLegacyTags(t *testing.T) {
	e := NewEngine(zap.NewNop())
	in := Input{Invoice: fixtureInvoice(), Customization: custdomain.Default()}

	doc, err := e.Render(1, invdomain.TemplateLetterhead, in)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if doc.Template != invdomain.TemplateCustom {
		t.Fatalf("legacy tag rendered as %q, want custom", doc.Template)
	}
}
