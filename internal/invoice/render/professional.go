package render

import (
	"html/template"

	invdomain "github.com/smallbiznis/facture/internal/invoice/domain"
)

// The professional variant: a ruled letter-style header with the
// company block left and the invoice metadata right, dense table.
const professionalHTML = `<!doctype html>
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
  .page.border-on { border: 1px solid {{color .Colors.Border}}; border-radius: {{px .RadiusPx}}; }
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
  .masthead {
    display: flex;
    justify-content: space-between;
    align-items: flex-start;
    border-bottom: 3px double {{color .Colors.Primary}};
    padding-bottom: {{px .SpacingPx}};
    margin-bottom: {{px .SpacingPx}};
  }
  .masthead .issuer .name { font-size: {{px .C.FontSize.Heading}}; font-weight: 700; color: {{color .Colors.Primary}}; }
  .masthead .issuer div { font-size: {{px .C.FontSize.Small}}; color: {{color .Colors.TextSecondary}}; }
  .masthead .meta { text-align: right; font-size: {{px .C.FontSize.Body}}; }
  .masthead .meta .label {
    font-size: {{px .C.FontSize.Small}};
    text-transform: uppercase;
    letter-spacing: 0.08em;
    color: {{color .Colors.TextSecondary}};
  }
  .logo-row { display: flex; justify-content: {{.LogoAlign}}; margin-bottom: {{px .SpacingPx}}; }
  .logo-row img { max-width: {{px .LogoSizePx}}; max-height: 80px; object-fit: contain; }
  .billto { margin-bottom: {{px .SpacingPx}}; font-size: {{px .C.FontSize.Body}}; }
  .billto h2 {
    font-size: {{px .C.FontSize.Small}};
    text-transform: uppercase;
    letter-spacing: 0.06em;
    color: {{color .Colors.TextSecondary}};
    margin-bottom: 4px;
  }
  .billto .name { font-weight: 600; font-size: {{px .C.FontSize.Subheading}}; }
  table { width: 100%; border-collapse: collapse; margin-bottom: {{px .SpacingPx}}; }
  th {
    border-bottom: 2px solid {{color .Colors.Primary}};
    color: {{color .Colors.Primary}};
    font-size: {{px .C.FontSize.Small}};
    text-transform: uppercase;
    text-align: left;
    padding: 8px;
  }
  td { font-size: {{px .C.FontSize.Body}}; padding: 8px; border-bottom: 1px solid {{color .Colors.Border}}; }
  td.num, th.num { text-align: right; }
  .table-striped tr.striped td { background: {{color .Colors.TableBg}}; }
  .table-bordered td, .table-bordered th { border: 1px solid {{color .Colors.Border}}; }
  .table-modern td { border-bottom: 2px solid {{color .Colors.TableHeaderBg}}; }
  .borders-on table { border: 1px solid {{color .Colors.Border}}; }
  .item-desc { color: {{color .Colors.TextSecondary}}; font-size: {{px .C.FontSize.Small}}; }
  .totals { display: flex; justify-content: flex-end; margin-bottom: {{px .SpacingPx}}; }
  .totals table { width: 40%; margin-bottom: 0; }
  .totals td { padding: 5px 8px; border-bottom: none; }
  .totals .grand td {
    font-weight: 700;
    font-size: {{px .C.FontSize.Subheading}};
    border-top: 3px double {{color .Colors.Primary}};
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
    {{if .ShowLogo}}
    <div class="logo-row"><img src="{{.LogoURL}}" alt="Company logo" /></div>
    {{end}}
    <div class="masthead">
      <div class="issuer">
        {{if .C.Sections.ShowCompanyDetails}}
        <div class="name">{{.Invoice.Company.Name}}</div>
        {{if .Invoice.Company.Address}}<div>{{nl2br .Invoice.Company.Address}}</div>{{end}}
        {{if .Invoice.Company.Email}}<div>{{.Invoice.Company.Email}}</div>{{end}}
        {{if .Invoice.Company.Phone}}<div>{{.Invoice.Company.Phone}}</div>{{end}}
        {{if .Invoice.Company.GST}}<div>GSTIN: {{.Invoice.Company.GST}}</div>{{end}}
        {{end}}
      </div>
      <div class="meta">
        <div class="label">Invoice</div>
        {{if .C.Sections.ShowInvoiceNumber}}<div><strong>{{.Invoice.InvoiceNumber}}</strong></div>{{end}}
        {{if .C.Sections.ShowDates}}
        <div>Issued: {{.InvoiceDateLong}}</div>
        {{if .HasDueDate}}<div>Due: {{.DueDate}}</div>{{end}}
        {{end}}
      </div>
    </div>
    {{if .C.Sections.ShowClientDetails}}
    <div class="billto">
      <h2>Bill To</h2>
      <div class="name">{{.Invoice.Client.Name}}</div>
      {{if .Invoice.Client.Address}}<div>{{nl2br .Invoice.Client.Address}}</div>{{end}}
      {{if .Invoice.Client.Email}}<div>{{.Invoice.Client.Email}}</div>{{end}}
      {{if .Invoice.Client.Phone}}<div>{{.Invoice.Client.Phone}}</div>{{end}}
    </div>
    {{end}}
    <table>
      <thead>
        <tr>
          <th>Description</th>
          <th class="num">Qty</th>
          <th class="num">Unit Price</th>
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
        <tr class="grand"><td>Total Due</td><td class="num">{{.Total}}</td></tr>
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

type professionalRenderer struct {
	tpl *template.Template
}

func newProfessional() Renderer {
	return &professionalRenderer{tpl: mustParse("professional", professionalHTML)}
}

func (r *professionalRenderer) Name() invdomain.Template { return invdomain.TemplateProfessional }

func (r *professionalRenderer) Render(in Input) (*Document, error) {
	return execute(r.tpl, r.Name(), in)
}
