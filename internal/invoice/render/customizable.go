package render

import (
	"html/template"

	invdomain "github.com/smallbiznis/facture/internal/invoice/domain"
)

// The customizable variant is the superset: every profile knob is live.
const customizableHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<title>Invoice {{.Invoice.InvoiceNumber}}</title>
<style>
  * { box-sizing: border-box; margin: 0; }
  .page {
    position: relative;
    width: 210mm;
    min-height: 297mm;
    overflow: hidden;
    font-family: {{.FontStack}};
    color: {{color .Colors.Text}};
    background: {{color .Colors.Background}};
    padding: {{px .PaddingPx}};
  }
  .page.border-on {
    border: 2px solid {{color .Colors.Border}};
    border-radius: {{px .RadiusPx}};
  }
  .watermark {
    position: absolute;
    inset: 0;
    display: flex;
    align-items: center;
    justify-content: center;
    pointer-events: none;
    z-index: 0;
  }
  .watermark img {
    width: {{pct .WatermarkWidthPc}};
    opacity: {{opacity .WatermarkOpacity}};
    filter: grayscale(100%);
  }
  .content { position: relative; z-index: 1; }
  .logo-row {
    display: flex;
    justify-content: {{.LogoAlign}};
    margin-bottom: {{px .SpacingPx}};
  }
  .logo-row img { max-width: {{px .LogoSizePx}}; max-height: 80px; object-fit: contain; }
  .header { margin-bottom: {{px .SpacingPx}}; }
  .header-gradient .header {
    background: linear-gradient(135deg, {{color .Colors.Primary}}, {{color .Colors.Secondary}});
    color: {{color .Colors.TableHeaderText}};
    padding: {{px .PaddingPx}};
    margin: -{{px .PaddingPx}} -{{px .PaddingPx}} {{px .SpacingPx}};
  }
  .header-bold .header {
    background: {{color .Colors.Primary}};
    color: {{color .Colors.TableHeaderText}};
    padding: {{px .PaddingPx}};
    margin: -{{px .PaddingPx}} -{{px .PaddingPx}} {{px .SpacingPx}};
  }
  .header-minimal .header h1 { font-weight: 400; letter-spacing: 0.08em; }
  .header h1 { font-size: {{px .C.FontSize.Heading}}; }
  .header .number { font-size: {{px .C.FontSize.Subheading}}; margin-top: 4px; }
  .header .dates { font-size: {{px .C.FontSize.Small}}; margin-top: 8px; }
  .parties { display: flex; gap: {{px .SpacingPx}}; margin-bottom: {{px .SpacingPx}}; }
  .layout-single-column .parties { flex-direction: column; }
  .layout-two-column .parties > div { flex: 1; }
  .layout-modern-grid .parties {
    display: grid;
    grid-template-columns: 1fr 1fr;
    gap: {{px .SpacingPx}};
  }
  .party h2 {
    font-size: {{px .C.FontSize.Small}};
    text-transform: uppercase;
    letter-spacing: 0.06em;
    color: {{color .Colors.TextSecondary}};
    margin-bottom: 6px;
  }
  .party .name { font-size: {{px .C.FontSize.Subheading}}; font-weight: 600; }
  .party div { font-size: {{px .C.FontSize.Body}}; }
  table { width: 100%; border-collapse: collapse; margin-bottom: {{px .SpacingPx}}; }
  th {
    background: {{color .Colors.TableHeaderBg}};
    color: {{color .Colors.TableHeaderText}};
    font-size: {{px .C.FontSize.Small}};
    text-transform: uppercase;
    letter-spacing: 0.04em;
    text-align: left;
    padding: 10px;
  }
  td { font-size: {{px .C.FontSize.Body}}; padding: 10px; }
  td.num, th.num { text-align: right; }
  .table-striped tr.striped td { background: {{color .Colors.TableBg}}; }
  .table-bordered td, .table-bordered th { border: 1px solid {{color .Colors.Border}}; }
  .table-minimal td { border-bottom: 1px solid {{color .Colors.Border}}; }
  .table-modern td { border-bottom: 2px solid {{color .Colors.TableHeaderBg}}; }
  .borders-on table { border: 1px solid {{color .Colors.Border}}; }
  .item-desc { color: {{color .Colors.TextSecondary}}; font-size: {{px .C.FontSize.Small}}; }
  .totals { display: flex; justify-content: flex-end; margin-bottom: {{px .SpacingPx}}; }
  .totals table { width: 45%; margin-bottom: 0; }
  .totals td { padding: 6px 10px; }
  .totals .grand td {
    font-size: {{px .C.FontSize.Subheading}};
    font-weight: 700;
    color: {{color .Colors.Primary}};
    border-top: 2px solid {{color .Colors.Primary}};
  }
  .note {
    margin-bottom: {{px .SpacingPx}};
    font-size: {{px .C.FontSize.Small}};
    color: {{color .Colors.TextSecondary}};
  }
  .note h3 {
    font-size: {{px .C.FontSize.Body}};
    color: {{color .Colors.Text}};
    margin-bottom: 4px;
  }
</style>
</head>
<body>
<div class="page {{.HeaderClass}} {{.LayoutClass}} {{.TableClass}} {{.BorderClass}}{{if .C.ShowTableBorders}} borders-on{{end}}">
  {{if .Watermark}}
  <div class="watermark"><img src="{{.LogoURL}}" alt="" /></div>
  {{end}}
  <div class="content">
    {{if .ShowLogo}}
    <div class="logo-row"><img src="{{.LogoURL}}" alt="Company logo" /></div>
    {{end}}
    <div class="header">
      <h1>INVOICE</h1>
      {{if .C.Sections.ShowInvoiceNumber}}<div class="number">{{.Invoice.InvoiceNumber}}</div>{{end}}
      {{if .C.Sections.ShowDates}}
      <div class="dates">
        <span>Date: {{.InvoiceDate}}</span>
        {{if .HasDueDate}}<span> &middot; Due: {{.DueDate}}</span>{{end}}
      </div>
      {{end}}
    </div>
    <div class="parties">
      {{if .C.Sections.ShowCompanyDetails}}
      <div class="party">
        <h2>From</h2>
        <div class="name">{{.Invoice.Company.Name}}</div>
        {{if .Invoice.Company.Address}}<div>{{nl2br .Invoice.Company.Address}}</div>{{end}}
        {{if .Invoice.Company.Email}}<div>{{.Invoice.Company.Email}}</div>{{end}}
        {{if .Invoice.Company.Phone}}<div>{{.Invoice.Company.Phone}}</div>{{end}}
        {{if .Invoice.Company.GST}}<div>GSTIN: {{.Invoice.Company.GST}}</div>{{end}}
      </div>
      {{end}}
      {{if .C.Sections.ShowClientDetails}}
      <div class="party">
        <h2>Bill To</h2>
        <div class="name">{{.Invoice.Client.Name}}</div>
        {{if .Invoice.Client.Address}}<div>{{nl2br .Invoice.Client.Address}}</div>{{end}}
        {{if .Invoice.Client.Email}}<div>{{.Invoice.Client.Email}}</div>{{end}}
        {{if .Invoice.Client.Phone}}<div>{{.Invoice.Client.Phone}}</div>{{end}}
      </div>
      {{end}}
    </div>
    <table>
      <thead>
        <tr>
          <th>Item</th>
          <th class="num">Qty</th>
          <th class="num">Price</th>
          {{if .C.ShowTaxColumn}}<th class="num">Tax</th>{{end}}
          <th class="num">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr{{if .Striped}} class="striped"{{end}}>
          <td>
            {{.Name}}
            {{if .Description}}<div class="item-desc">{{.Description}}</div>{{end}}
          </td>
          <td class="num">{{.Quantity}}</td>
          <td class="num">{{.Price}}</td>
          {{if $.C.ShowTaxColumn}}<td class="num">{{.TaxRate}}</td>{{end}}
          <td class="num">{{.Amount}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    <div class="totals">
      <table>
        <tr><td>Subtotal</td><td class="num">{{.Subtotal}}</td></tr>
        <tr><td>Tax</td><td class="num">{{.TaxTotal}}</td></tr>
        {{if .HasDiscount}}<tr><td>Discount</td><td class="num">&minus; {{.Discount}}</td></tr>{{end}}
        <tr class="grand"><td>Total</td><td class="num">{{.Total}}</td></tr>
      </table>
    </div>
    {{if and .C.Sections.ShowNotes .Invoice.Notes}}
    <div class="note"><h3>Notes</h3><div>{{nl2br .Invoice.Notes}}</div></div>
    {{end}}
    {{if and .C.Sections.ShowTerms .Invoice.Terms}}
    <div class="note"><h3>Terms &amp; Conditions</h3><div>{{nl2br .Invoice.Terms}}</div></div>
    {{end}}
  </div>
</div>
</body>
</html>
`

type customizableRenderer struct {
	tpl *template.Template
}

func newCustomizable() Renderer {
	return &customizableRenderer{tpl: mustParse("customizable", customizableHTML)}
}

func (r *customizableRenderer) Name() invdomain.Template { return invdomain.TemplateCustom }

func (r *customizableRenderer) Render(in Input) (*Document, error) {
	return execute(r.tpl, r.Name(), in)
}
