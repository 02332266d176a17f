package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice_Defaults(t *testing.T) {
	inv := NewInvoice()

	assert.NotEqual(t, uuid.Nil, inv.ID)
	assert.Equal(t, "INV-001", inv.InvoiceNumber)
	assert.Equal(t, "Net 30", inv.PaymentTerms)
	assert.Equal(t, ThemeClassic, inv.Theme)
	assert.False(t, inv.Finalized)

	require.Len(t, inv.Items, 1)
	assert.Equal(t, 1.0, inv.Items[0].Quantity)
	assert.Equal(t, 0.0, inv.Items[0].Rate)
	assert.Equal(t, 0.0, inv.Items[0].Amount)
}

func TestInvoice_AddItem(t *testing.T) {
	inv := NewInvoice()
	item := inv.AddItem()

	require.Len(t, inv.Items, 2)
	assert.Equal(t, item.ID, inv.Items[1].ID)
	assert.NotEqual(t, inv.Items[0].ID, inv.Items[1].ID)
	assert.Equal(t, 1.0, item.Quantity)
	assert.Equal(t, 0.0, item.Amount)
}

func TestInvoice_UpdateItem_RecomputesAmount(t *testing.T) {
	inv := NewInvoice()
	id := inv.Items[0].ID

	assert.True(t, inv.UpdateItem(id, ItemFieldQuantity, "", 2))
	assert.Equal(t, 0.0, inv.Items[0].Amount) // rate still zero

	assert.True(t, inv.UpdateItem(id, ItemFieldRate, "", 150))
	assert.Equal(t, 2.0, inv.Items[0].Quantity)
	assert.Equal(t, 150.0, inv.Items[0].Rate)
	assert.Equal(t, 300.0, inv.Items[0].Amount)
}

func TestInvoice_UpdateItem_TextFieldsKeepAmount(t *testing.T) {
	inv := NewInvoice()
	id := inv.Items[0].ID
	inv.UpdateItem(id, ItemFieldQuantity, "", 3)
	inv.UpdateItem(id, ItemFieldRate, "", 10)

	assert.True(t, inv.UpdateItem(id, ItemFieldDescription, "Notebook A4", 0))
	assert.True(t, inv.UpdateItem(id, ItemFieldHSNCode, "4820", 0))

	assert.Equal(t, "Notebook A4", inv.Items[0].Description)
	assert.Equal(t, "4820", inv.Items[0].HSNCode)
	assert.Equal(t, 30.0, inv.Items[0].Amount)
}

func TestInvoice_UpdateItem_UnknownIDIsNoop(t *testing.T) {
	inv := NewInvoice()
	before := inv.Items[0]

	assert.False(t, inv.UpdateItem(uuid.New(), ItemFieldRate, "", 999))
	assert.Equal(t, before, inv.Items[0])
}

func TestInvoice_RemoveItem(t *testing.T) {
	inv := NewInvoice()
	first := inv.Items[0].ID
	inv.UpdateItem(first, ItemFieldRate, "", 50)
	second := inv.AddItem().ID
	third := inv.AddItem().ID

	assert.True(t, inv.RemoveItem(second))

	// Remaining items keep their ids, order, and amounts.
	require.Len(t, inv.Items, 2)
	assert.Equal(t, first, inv.Items[0].ID)
	assert.Equal(t, third, inv.Items[1].ID)
	assert.Equal(t, 50.0, inv.Items[0].Amount)
}

func TestInvoice_RemoveItem_LastItemAllowed(t *testing.T) {
	inv := NewInvoice()

	assert.True(t, inv.RemoveItem(inv.Items[0].ID))
	assert.Empty(t, inv.Items)
	assert.Equal(t, 0.0, inv.Totals().Subtotal)
}

func TestInvoice_RemoveItem_UnknownIDIsNoop(t *testing.T) {
	inv := NewInvoice()

	assert.False(t, inv.RemoveItem(uuid.New()))
	assert.Len(t, inv.Items, 1)
}

func TestInvoice_AddProduct(t *testing.T) {
	inv := NewInvoice()
	p := &Product{ID: "2", Name: "Pen Set", Description: "Ball point pens - pack of 10", Price: 200}

	item := inv.AddProduct(p)

	require.Len(t, inv.Items, 2)
	assert.Equal(t, "Pen Set", item.Description)
	assert.Equal(t, 1.0, item.Quantity)
	assert.Equal(t, 200.0, item.Rate)
	assert.Equal(t, 200.0, item.Amount)
	assert.Empty(t, item.HSNCode)
}

func TestInvoice_Validate(t *testing.T) {
	tests := []struct {
		name       string
		from       string
		proposalTo string
		wantFields []string
	}{
		{"both empty", "", "", []string{"from", "proposal_to"}},
		{"from empty", "", "Acme", []string{"from"}},
		{"proposal_to whitespace", "Sender Corp", "   ", []string{"proposal_to"}},
		{"valid", "Sender Corp", "Acme", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInvoice()
			inv.From = tt.from
			inv.ProposalTo = tt.proposalTo

			errs := inv.Validate()

			assert.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Equal(t, "This field is required", errs[f])
			}
		})
	}
}

func TestParseTheme(t *testing.T) {
	assert.Equal(t, ThemeModern, ParseTheme("modern"))
	assert.Equal(t, ThemeCreative, ParseTheme("creative"))
	// Unknown identifiers silently normalize to classic.
	assert.Equal(t, ThemeClassic, ParseTheme("retro"))
	assert.Equal(t, ThemeClassic, ParseTheme(""))
}

func TestParseItemField(t *testing.T) {
	f, ok := ParseItemField("rate")
	assert.True(t, ok)
	assert.Equal(t, ItemFieldRate, f)
	assert.True(t, f.Numeric())

	f, ok = ParseItemField("description")
	assert.True(t, ok)
	assert.False(t, f.Numeric())

	_, ok = ParseItemField("amount")
	assert.False(t, ok)
}
