package utils

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yourusername/dairy-ledger/models"
)

//go:embed templates/invoice.html
var invoiceTemplateFS embed.FS

var invoiceTmpl = template.Must(template.ParseFS(invoiceTemplateFS, "templates/invoice.html"))

// InvoiceDocument is everything the invoice template needs.
type InvoiceDocument struct {
	Business   models.BusinessProfile
	Customer   models.Customer
	Invoice    models.Invoice
	TotalWords string
	Generated  string
}

// RenderInvoiceHTML executes the invoice template.
func RenderInvoiceHTML(doc InvoiceDocument) ([]byte, error) {
	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderInvoicePDF writes the rendered invoice to a temp file and
// prints it to A4 PDF with headless Chrome.
func RenderInvoicePDF(doc InvoiceDocument) ([]byte, error) {
	html, err := RenderInvoiceHTML(doc)
	if err != nil {
		return nil, err
	}

	tmpHTML := filepath.Join(os.TempDir(), "invoice_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, html, 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	err = chromedp.Run(ctx,
		chromedp.Navigate("file://"+tmpHTML),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
