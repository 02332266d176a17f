// Package xlsx exports an invoice as a spreadsheet for downstream
// accounting tools.
package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"billforge/internal/domain"
)

const sheet = "Invoice"

// Generate produces an XLSX workbook with one sheet: header fields,
// the line item table, and the totals block. Adjustment rows follow the
// same visibility rule as the rendered document.
func Generate(inv *domain.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	row := 1
	setRow := func(values ...interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		row++
		return nil
	}

	header := [][]interface{}{
		{"Invoice Number", inv.InvoiceNumber},
		{"Date", inv.Date},
	}
	if inv.PaymentTerms != "" {
		header = append(header, []interface{}{"Payment Terms", inv.PaymentTerms})
	}
	if inv.DueDate != "" {
		header = append(header, []interface{}{"Due Date", inv.DueDate})
	}
	if inv.PONumber != "" {
		header = append(header, []interface{}{"PO Number", inv.PONumber})
	}
	header = append(header,
		[]interface{}{"From", inv.From},
		[]interface{}{"To", inv.ProposalTo},
	)
	if inv.ShipTo != "" {
		header = append(header, []interface{}{"Ship To", inv.ShipTo})
	}

	for _, h := range header {
		if err := setRow(h...); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}
	row++

	if err := setRow("HSN Code", "Description", "Quantity", "Rate", "Amount"); err != nil {
		return nil, fmt.Errorf("writing item header: %w", err)
	}
	for _, item := range inv.Items {
		if err := setRow(item.HSNCode, item.Description, item.Quantity, item.Rate, item.Amount); err != nil {
			return nil, fmt.Errorf("writing item: %w", err)
		}
	}
	row++

	totals := inv.Totals()
	if err := setRow("", "", "", "Subtotal", totals.Subtotal); err != nil {
		return nil, fmt.Errorf("writing totals: %w", err)
	}
	if inv.Discount > 0 {
		if err := setRow("", "", "", "Discount", -inv.Discount); err != nil {
			return nil, fmt.Errorf("writing totals: %w", err)
		}
	}
	if inv.Tax > 0 {
		if err := setRow("", "", "", "Tax", inv.Tax); err != nil {
			return nil, fmt.Errorf("writing totals: %w", err)
		}
	}
	if inv.Shipping > 0 {
		if err := setRow("", "", "", "Shipping", inv.Shipping); err != nil {
			return nil, fmt.Errorf("writing totals: %w", err)
		}
	}
	if err := setRow("", "", "", "Total", totals.Total); err != nil {
		return nil, fmt.Errorf("writing totals: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
