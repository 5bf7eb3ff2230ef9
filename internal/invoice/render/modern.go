package render

import (
	"html/template"

	invdomain "github.com/smallbiznis/facture/internal/invoice/domain"
)

// The modern variant: full-bleed gradient banner, card-like address
// grid, accent-ruled table.
const modernHTML = `<!doctype html>
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
  }
  .page.border-on { border: 2px solid {{color .Colors.Border}}; border-radius: {{px .RadiusPx}}; }
  .watermark {
    position: absolute;
    inset: 0;
    display: flex;
    align-items: center;
    justify-content: center;
    pointer-events: none;
    z-index: 0;
  }
  .watermark img { width: {{pct .WatermarkWidthPc}}; opacity: {{opacity .WatermarkOpacity}}; filter: grayscale(100%); }
  .content { position: relative; z-index: 1; }
  .banner {
    background: linear-gradient(120deg, {{color .Colors.Primary}}, {{color .Colors.Secondary}});
    color: {{color .Colors.TableHeaderText}};
    padding: {{px .PaddingPx}};
    display: flex;
    justify-content: space-between;
    align-items: flex-end;
    margin-bottom: {{px .SpacingPx}};
  }
  .banner h1 { font-size: {{px .C.FontSize.Heading}}; letter-spacing: 0.04em; }
  .banner .meta { text-align: right; font-size: {{px .C.FontSize.Small}}; }
  .body { padding: 0 {{px .PaddingPx}} {{px .PaddingPx}}; }
  .logo-row { display: flex; justify-content: {{.LogoAlign}}; margin-bottom: {{px .SpacingPx}}; }
  .logo-row img { max-width: {{px .LogoSizePx}}; max-height: 80px; object-fit: contain; }
  .cards { display: grid; grid-template-columns: 1fr 1fr; gap: {{px .SpacingPx}}; margin-bottom: {{px .SpacingPx}}; }
  .card {
    background: {{color .Colors.TableBg}};
    border-left: 4px solid {{color .Colors.Accent}};
    border-radius: {{px .RadiusPx}};
    padding: 14px;
    font-size: {{px .C.FontSize.Body}};
  }
  .card h2 {
    font-size: {{px .C.FontSize.Small}};
    text-transform: uppercase;
    letter-spacing: 0.08em;
    color: {{color .Colors.TextSecondary}};
    margin-bottom: 6px;
  }
  .card .name { font-size: {{px .C.FontSize.Subheading}}; font-weight: 600; }
  table { width: 100%; border-collapse: collapse; margin-bottom: {{px .SpacingPx}}; }
  th {
    background: {{color .Colors.TableHeaderBg}};
    color: {{color .Colors.TableHeaderText}};
    font-size: {{px .C.FontSize.Small}};
    text-transform: uppercase;
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
  .totals .panel {
    background: {{color .Colors.TableBg}};
    border-radius: {{px .RadiusPx}};
    padding: 14px;
    min-width: 45%;
    font-size: {{px .C.FontSize.Body}};
  }
  .totals .row { display: flex; justify-content: space-between; padding: 4px 0; }
  .totals .grand {
    font-size: {{px .C.FontSize.Subheading}};
    font-weight: 700;
    color: {{color .Colors.Primary}};
    border-top: 2px solid {{color .Colors.Primary}};
    margin-top: 6px;
    padding-top: 8px;
  }
  .note { margin-bottom: {{px .SpacingPx}}; font-size: {{px .C.FontSize.Small}}; color: {{color .Colors.TextSecondary}}; }
  .note h3 { font-size: {{px .C.FontSize.Body}}; color: {{color .Colors.Text}}; margin-bottom: 4px; }
</style>
</head>
<body>
<div class="page {{.TableClass}} {{.BorderClass}}{{if .C.ShowTableBorders}} borders-on{{end}}">
  {{if .Watermark}}
  <div class="watermark"><img src="{{.LogoURL}}" alt="" /></div>
  {{end}}
  <div class="content">
    <div class="banner">
      <h1>INVOICE</h1>
      <div class="meta">
        {{if .C.Sections.ShowInvoiceNumber}}<div><strong>{{.Invoice.InvoiceNumber}}</strong></div>{{end}}
        {{if .C.Sections.ShowDates}}
        <div>{{.InvoiceDate}}</div>
        {{if .HasDueDate}}<div>Due {{.DueDate}}</div>{{end}}
        {{end}}
      </div>
    </div>
    <div class="body">
      {{if .ShowLogo}}
      <div class="logo-row"><img src="{{.LogoURL}}" alt="Company logo" /></div>
      {{end}}
      <div class="cards">
        {{if .C.Sections.ShowCompanyDetails}}
        <div class="card">
          <h2>From</h2>
          <div class="name">{{.Invoice.Company.Name}}</div>
          {{if .Invoice.Company.Address}}<div>{{nl2br .Invoice.Company.Address}}</div>{{end}}
          {{if .Invoice.Company.Email}}<div>{{.Invoice.Company.Email}}</div>{{end}}
          {{if .Invoice.Company.Phone}}<div>{{.Invoice.Company.Phone}}</div>{{end}}
          {{if .Invoice.Company.GST}}<div>GSTIN: {{.Invoice.Company.GST}}</div>{{end}}
        </div>
        {{end}}
        {{if .C.Sections.ShowClientDetails}}
        <div class="card">
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
        <div class="panel">
          <div class="row"><span>Subtotal</span><span>{{.Subtotal}}</span></div>
          <div class="row"><span>Tax</span><span>{{.TaxTotal}}</span></div>
          {{if .HasDiscount}}<div class="row"><span>Discount</span><span>&minus; {{.Discount}}</span></div>{{end}}
          <div class="row grand"><span>Total</span><span>{{.Total}}</span></div>
        </div>
      </div>
      {{if and .C.Sections.ShowNotes .Invoice.Notes}}
      <div class="note"><h3>Notes</h3><div>{{nl2br .Invoice.Notes}}</div></div>
      {{end}}
      {{if and .C.Sections.ShowTerms .Invoice.Terms}}
      <div class="note"><h3>Terms &amp; Conditions</h3><div>{{nl2br .Invoice.Terms}}</div></div>
      {{end}}
    </div>
  </div>
</div>
</body>
</html>
`

type modernRenderer struct {
	tpl *template.Template
}

func newModern() Renderer {
	return &modernRenderer{tpl: mustParse("modern", modernHTML)}
}

func (r *modernRenderer) Name() invdomain.Template { return invdomain.TemplateModern }

func (r *modernRenderer) Render(in Input) (*Document, error) {
	return execute(r.tpl, r.Name(), in)
}
