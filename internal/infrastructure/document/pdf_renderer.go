package document

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"invoicer/internal/domain/entities"
	"invoicer/internal/domain/totals"
	"invoicer/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

const pdfContentType = "application/pdf"

type rgb struct{ r, g, b int }

var accentColors = map[string]rgb{
	"blue":   {37, 99, 235},
	"green":  {22, 163, 74},
	"purple": {147, 51, 234},
	"red":    {220, 38, 38},
	"gray":   {75, 85, 99},
}

// PDFRenderer prints an invoice on a single A4 portrait page.
type PDFRenderer struct{}

var _ interfaces.IDocumentRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) ContentType() string {
	return pdfContentType
}

func (r *PDFRenderer) Render(inv entities.Invoice) ([]byte, error) {
	accent, ok := accentColors[inv.Color]
	if !ok {
		accent = accentColors[entities.DefaultColor]
	}
	tpl := entities.LookupTemplate(inv.Template)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Invoice "+inv.ID, true)
	pdf.AddPage()

	// header
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(accent.r, accent.g, accent.b)
	pdf.CellFormat(110, 10, "INVOICE", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(80, 10, tr(inv.ID), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(110, 5, tr(tpl.Name), "", 0, "L", false, 0, "")
	pdf.CellFormat(80, 5, "Status: "+strings.ToUpper(string(inv.Status)), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	// client block
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(110, 6, "Bill To", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, "Invoice Date", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(40, 6, inv.InvoiceDate, "", 1, "R", false, 0, "")
	pdf.CellFormat(110, 6, tr(inv.ClientName), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(40, 6, "Due Date", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(40, 6, inv.DueDate, "", 1, "R", false, 0, "")
	if inv.ClientAddress != "" {
		pdf.MultiCell(110, 5, tr(inv.ClientAddress), "", "L", false)
	}
	pdf.Ln(6)

	// items
	widths := []float64{95, 20, 35, 40}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(accent.r, accent.g, accent.b)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range []string{"Description", "Qty", "Unit", "Amount"} {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 8, h, "", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, it := range inv.Items {
		pdf.CellFormat(widths[0], 7, tr(it.Description), "B", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, formatQuantity(it.Quantity), "B", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, totals.FormatUSD(it.Amount), "B", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, totals.FormatUSD(it.Total()), "B", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// totals
	t := inv.Totals()
	rows := [][2]string{
		{"Subtotal", totals.FormatUSD(t.Subtotal)},
		{fmt.Sprintf("GST (%s%%)", formatQuantity(inv.GSTRate)), totals.FormatUSD(t.GST)},
		{fmt.Sprintf("Discount (%s%%)", formatQuantity(inv.DiscountRate)), "-" + totals.FormatUSD(t.Discount)},
	}
	for _, row := range rows {
		pdf.CellFormat(115, 6, "", "", 0, "", false, 0, "")
		pdf.CellFormat(35, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, row[1], "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(115, 8, "", "", 0, "", false, 0, "")
	pdf.CellFormat(35, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, totals.FormatUSD(t.Total), "T", 1, "R", false, 0, "")
	pdf.Ln(8)

	// bank details and terms
	if bank := inv.BankDetails; bank != nil && *bank != (entities.BankDetails{}) {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, "Bank Details", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, line := range [][2]string{
			{"Bank", bank.BankName},
			{"Account Name", bank.AccountName},
			{"Account Number", bank.AccountNumber},
			{"SWIFT", bank.SwiftCode},
		} {
			if line[1] == "" {
				continue
			}
			pdf.CellFormat(0, 5, tr(line[0]+": "+line[1]), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	terms := inv.Terms
	if len(terms) == 0 {
		terms = tpl.Terms
	}
	if len(terms) > 0 {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, "Terms & Conditions", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, term := range terms {
			pdf.MultiCell(0, 5, tr("- "+term), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("[invoice][document] pdf output failed id=%s err=%v", inv.ID, err)
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatQuantity drops trailing zeros so whole quantities print as integers.
func formatQuantity(v float64) string {
	s := fmt.Sprintf("%.2f", totals.Finite(v))
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
