package export

import (
	"fmt"
	"strings"

	"github.com/smallbiznis/facture/internal/invoice/render"
)

const printStyle = `<style media="print">
  @page { size: A4; margin: 0; }
  html, body { margin: 0; padding: 0; }
</style>`

const printScript = `<script>
  window.addEventListener("load", function () {
    window.focus();
    window.print();
  });
</script>`

// printShell augments a rendered document so that opening it in a
// browser immediately triggers the native print dialog at A4 size.
func printShell(doc *render.Document) string {
	html := doc.HTML
	if i := strings.LastIndex(html, "</head>"); i >= 0 {
		html = html[:i] + printStyle + "\n" + html[i:]
	}
	if i := strings.LastIndex(html, "</body>"); i >= 0 {
		return html[:i] + printScript + "\n" + html[i:]
	}
	return html + printScript
}

func exportFilename(invoiceNumber, ext string) string {
	name := strings.TrimSpace(invoiceNumber)
	if name == "" {
		name = "invoice"
	} else {
		name = "invoice-" + name
	}
	return fmt.Sprintf("%s.%s", name, ext)
}
