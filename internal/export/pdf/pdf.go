// Package pdf renders an invoice as a printable PDF. The layout is a
// simplified print of the HTML document; each theme keeps its accent
// colour so a downloaded invoice still matches the on-screen preview.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"billforge/internal/domain"
	"billforge/internal/render"
)

type rgb struct{ r, g, b int }

// themeAccents maps each theme to its header fill colour. The core PDF
// fonts cannot render the rupee sign, so amounts use the "Rs." prefix.
var themeAccents = map[domain.Theme]rgb{
	domain.ThemeClassic:       {243, 244, 246},
	domain.ThemeModern:        {37, 99, 235},
	domain.ThemeMinimal:       {255, 255, 255},
	domain.ThemeModernMinimal: {17, 24, 39},
	domain.ThemeCorporate:     {67, 56, 202},
	domain.ThemeCreative:      {147, 51, 234},
}

// dark reports whether the accent needs white text on top.
func (c rgb) dark() bool {
	return c.r+c.g+c.b < 384
}

// Generate produces the PDF document for an invoice.
func Generate(inv *domain.Invoice) ([]byte, error) {
	theme := domain.ParseTheme(string(inv.Theme))
	accent := themeAccents[theme]

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFillColor(accent.r, accent.g, accent.b)
	if accent.dark() {
		pdf.SetTextColor(255, 255, 255)
	} else {
		pdf.SetTextColor(31, 41, 55)
	}
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(190, 14, "INVOICE", "", 1, "L", true, 0, "")

	pdf.SetTextColor(55, 65, 81)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Invoice #: %s", inv.InvoiceNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("Date: %s", inv.Date), "", 1, "L", false, 0, "")
	if inv.PaymentTerms != "" {
		pdf.CellFormat(190, 6, fmt.Sprintf("Payment Terms: %s", inv.PaymentTerms), "", 1, "L", false, 0, "")
	}
	if inv.DueDate != "" {
		pdf.CellFormat(190, 6, fmt.Sprintf("Due Date: %s", inv.DueDate), "", 1, "L", false, 0, "")
	}
	if inv.PONumber != "" {
		pdf.CellFormat(190, 6, fmt.Sprintf("PO Number: %s", inv.PONumber), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Parties
	writeParty(pdf, "From:", textOrNA(inv.From))
	writeParty(pdf, "To:", textOrNA(inv.ProposalTo))
	if strings.TrimSpace(inv.ShipTo) != "" {
		writeParty(pdf, "Ship To:", inv.ShipTo)
	}
	pdf.Ln(4)

	// Items table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(accent.r, accent.g, accent.b)
	if accent.dark() {
		pdf.SetTextColor(255, 255, 255)
	} else {
		pdf.SetTextColor(31, 41, 55)
	}
	pdf.CellFormat(25, 7, "HSN Code", "1", 0, "L", true, 0, "")
	pdf.CellFormat(75, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Rate (Rs.)", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Amount (Rs.)", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(55, 65, 81)
	for _, item := range inv.Items {
		hsn := item.HSNCode
		if hsn == "" {
			hsn = "-"
		}
		pdf.CellFormat(25, 6, hsn, "1", 0, "L", false, 0, "")
		pdf.CellFormat(75, 6, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, strconv.FormatFloat(item.Quantity, 'f', -1, 64), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, render.Money(item.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, render.Money(item.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals
	totals := inv.Totals()
	writeTotal(pdf, "Subtotal:", render.Money(totals.Subtotal), false)
	if inv.Discount > 0 {
		writeTotal(pdf, "Discount:", "-"+render.Money(inv.Discount), false)
	}
	if inv.Tax > 0 {
		writeTotal(pdf, "Tax:", render.Money(inv.Tax), false)
	}
	if inv.Shipping > 0 {
		writeTotal(pdf, "Shipping:", render.Money(inv.Shipping), false)
	}
	writeTotal(pdf, "Total:", render.Money(totals.Total), true)
	pdf.Ln(6)

	// Footer
	if strings.TrimSpace(inv.BankDetails) != "" {
		writeParty(pdf, "Bank Details:", inv.BankDetails)
	}
	if strings.TrimSpace(inv.Terms) != "" {
		writeParty(pdf, "Terms and Conditions:", inv.Terms)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generating pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeParty(pdf *gofpdf.Fpdf, label, text string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(190, 6, label, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, line := range strings.Split(text, "\n") {
		pdf.CellFormat(190, 5, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
}

func writeTotal(pdf *gofpdf.Fpdf, label, value string, grand bool) {
	if grand {
		pdf.SetFont("Arial", "B", 12)
	} else {
		pdf.SetFont("Arial", "", 10)
	}
	pdf.CellFormat(155, 7, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Rs. "+value, "", 1, "R", false, 0, "")
}

func textOrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
