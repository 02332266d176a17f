package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"billforge/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the line item CSV header row.
var columns = []string{
	"HSN Code",
	"Description",
	"Quantity",
	"Rate",
	"Amount",
}

// Writer wraps csv.Writer for exporting an invoice as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the line item header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoice writes one row per line item followed by the totals
// block. Discount, tax, and shipping rows appear only when set, the same
// rule the rendered document follows.
func (w *Writer) WriteInvoice(inv *domain.Invoice) error {
	for i := range inv.Items {
		if err := w.csv.Write(itemToRow(&inv.Items[i])); err != nil {
			return err
		}
	}

	totals := inv.Totals()
	rows := [][]string{
		{"", "", "", "Subtotal", formatMoney(totals.Subtotal)},
	}
	if inv.Discount > 0 {
		rows = append(rows, []string{"", "", "", "Discount", "-" + formatMoney(inv.Discount)})
	}
	if inv.Tax > 0 {
		rows = append(rows, []string{"", "", "", "Tax", formatMoney(inv.Tax)})
	}
	if inv.Shipping > 0 {
		rows = append(rows, []string{"", "", "", "Shipping", formatMoney(inv.Shipping)})
	}
	rows = append(rows, []string{"", "", "", "Total", formatMoney(totals.Total)})

	for _, row := range rows {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func itemToRow(item *domain.LineItem) []string {
	return []string{
		item.HSNCode,
		item.Description,
		strconv.FormatFloat(item.Quantity, 'f', -1, 64),
		formatMoney(item.Rate),
		formatMoney(item.Amount),
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans an invoice number for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_invoice_number}_{YYYY-MM-DD}.{ext}
func BuildFilename(invoiceNumber, ext string) string {
	sanitized := SanitizeFilename(invoiceNumber)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, ext)
}
