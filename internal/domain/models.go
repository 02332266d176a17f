package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// LineItem is a single billable row on an invoice.
// Amount is derived (quantity × rate) and is never edited directly.
type LineItem struct {
	ID          uuid.UUID `json:"id"`
	HSNCode     string    `json:"hsn_code"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	Rate        float64   `json:"rate"`
	Amount      float64   `json:"amount"`
}

// Invoice is the canonical in-memory state of a single invoice draft.
// It is mutated only through the methods below; derived values
// (per-item amounts, subtotal, total) are recomputed on every edit.
type Invoice struct {
	ID            uuid.UUID  `json:"id"`
	Logo          string     `json:"logo"` // data URI, empty = no logo
	From          string     `json:"from"`
	ProposalTo    string     `json:"proposal_to"`
	ShipTo        string     `json:"ship_to"`
	InvoiceNumber string     `json:"invoice_number"`
	Date          string     `json:"date"` // YYYY-MM-DD
	PaymentTerms  string     `json:"payment_terms"`
	DueDate       string     `json:"due_date"`
	PONumber      string     `json:"po_number"`
	Items         []LineItem `json:"items"`
	Discount      float64    `json:"discount"`
	Tax           float64    `json:"tax"`
	Shipping      float64    `json:"shipping"`
	BankDetails   string     `json:"bank_details"`
	Terms         string     `json:"terms"`
	Theme         Theme      `json:"theme"`
	Finalized     bool       `json:"finalized"`
}

// NewInvoice creates a draft with the default header fields and a single
// blank line item, matching what the editor starts a session with.
func NewInvoice() *Invoice {
	return &Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-001",
		Date:          time.Now().Format("2006-01-02"),
		PaymentTerms:  "Net 30",
		Items:         []LineItem{newLineItem()},
		Theme:         ThemeClassic,
	}
}

func newLineItem() LineItem {
	return LineItem{ID: uuid.New(), Quantity: 1}
}

// AddItem appends a fresh blank line item (quantity 1, rate 0) and
// returns it.
func (inv *Invoice) AddItem() LineItem {
	item := newLineItem()
	inv.Items = append(inv.Items, item)
	return item
}

// UpdateItem overwrites a single field of the item with the given id.
// Quantity and rate edits recompute the item's amount from the updated
// values. Unknown ids are a no-op; returns false when no item matched.
func (inv *Invoice) UpdateItem(id uuid.UUID, field ItemField, text string, number float64) bool {
	for i := range inv.Items {
		item := &inv.Items[i]
		if item.ID != id {
			continue
		}
		switch field {
		case ItemFieldHSNCode:
			item.HSNCode = text
		case ItemFieldDescription:
			item.Description = text
		case ItemFieldQuantity:
			item.Quantity = number
			item.Amount = item.Quantity * item.Rate
		case ItemFieldRate:
			item.Rate = number
			item.Amount = item.Quantity * item.Rate
		}
		return true
	}
	return false
}

// RemoveItem deletes the item with the given id, preserving the order of
// the remaining items. Removing the last item is allowed; an empty item
// sequence is a valid draft. Returns false when no item matched.
func (inv *Invoice) RemoveItem(id uuid.UUID) bool {
	for i := range inv.Items {
		if inv.Items[i].ID == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}

// AddProduct appends a line item derived from a catalogue product:
// quantity 1, rate = price, amount = price, no HSN code.
func (inv *Invoice) AddProduct(p *Product) LineItem {
	item := LineItem{
		ID:          uuid.New(),
		Description: p.Name,
		Quantity:    1,
		Rate:        p.Price,
		Amount:      p.Price,
	}
	inv.Items = append(inv.Items, item)
	return item
}

// Clone returns a deep copy of the invoice. The item slice is copied so
// the clone can be mutated without affecting the original.
func (inv *Invoice) Clone() *Invoice {
	out := *inv
	out.Items = make([]LineItem, len(inv.Items))
	copy(out.Items, inv.Items)
	return &out
}

// SetLogo replaces the logo data URI wholesale. An empty string clears it.
func (inv *Invoice) SetLogo(dataURI string) {
	inv.Logo = dataURI
}

// Validate returns a field→message map for every required field that is
// empty or whitespace-only. From and ProposalTo are the only required
// fields; an empty map means the draft can be finalized.
func (inv *Invoice) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(inv.From) == "" {
		errs["from"] = "This field is required"
	}
	if strings.TrimSpace(inv.ProposalTo) == "" {
		errs["proposal_to"] = "This field is required"
	}
	return errs
}

// Totals computes the derived totals for the current item sequence and
// adjustments.
func (inv *Invoice) Totals() Totals {
	return ComputeTotals(inv.Items, inv.Discount, inv.Tax, inv.Shipping)
}

// Catalogue is a read-only grouping of products offered to the editor.
type Catalogue struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Products    []Product `json:"products,omitempty"`
}

// Product is a single catalogue entry selectable into an invoice.
type Product struct {
	ID          string  `json:"id" db:"id"`
	CatalogueID string  `json:"catalogue_id" db:"catalogue_id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
}
