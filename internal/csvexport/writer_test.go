package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billforge/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, []string{"HSN Code", "Description", "Quantity", "Rate", "Amount"}, row)
}

func TestWriteInvoice(t *testing.T) {
	inv := &domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-042",
		Items: []domain.LineItem{
			{ID: uuid.New(), HSNCode: "4820", Description: "Notebook A4", Quantity: 2, Rate: 150, Amount: 300},
			{ID: uuid.New(), Description: "Pen Set", Quantity: 3.5, Rate: 200, Amount: 700},
		},
		Discount: 100,
		Tax:      50,
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteInvoice(inv))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 7)

	assert.Equal(t, []string{"4820", "Notebook A4", "2", "150.00", "300.00"}, rows[1])
	assert.Equal(t, []string{"", "Pen Set", "3.5", "200.00", "700.00"}, rows[2])
	assert.Equal(t, []string{"", "", "", "Subtotal", "1000.00"}, rows[3])
	assert.Equal(t, []string{"", "", "", "Discount", "-100.00"}, rows[4])
	assert.Equal(t, []string{"", "", "", "Tax", "50.00"}, rows[5])
	assert.Equal(t, []string{"", "", "", "Total", "950.00"}, rows[6])
}

func TestWriteInvoiceSkipsUnsetAdjustments(t *testing.T) {
	inv := &domain.Invoice{
		ID: uuid.New(),
		Items: []domain.LineItem{
			{ID: uuid.New(), Description: "Stapler", Quantity: 1, Rate: 350, Amount: 350},
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteInvoice(inv))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"", "", "", "Subtotal", "350.00"}, rows[1])
	assert.Equal(t, []string{"", "", "", "Total", "350.00"}, rows[2])
}

func TestWriteInvoiceEmptyItems(t *testing.T) {
	inv := &domain.Invoice{ID: uuid.New()}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteInvoice(inv))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"", "", "", "Subtotal", "0.00"}, rows[0])
	assert.Equal(t, []string{"", "", "", "Total", "0.00"}, rows[1])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "INV 001", "INV_001"},
		{"special chars", "INV/2025-26 #42 (Oct–Dec)", "INV_2025-26_42_Oct_Dec"},
		{"unicode", "चालान INV-001", "INV-001"},
		{"hyphens and underscores preserved", "INV-2025_042", "INV-2025_042"},
		{"consecutive underscores collapsed", "INV___042", "INV_042"},
		{"leading/trailing cleaned", "  INV-001  ", "INV-001"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, "INV-001_"+today+".csv", BuildFilename("INV-001", "csv"))
	assert.Equal(t, "INV-001_"+today+".pdf", BuildFilename("INV-001", "pdf"))
}
