package domain

// Totals holds the derived monetary summary of an invoice.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Total    float64 `json:"total"`
}

// ComputeTotals derives subtotal and total from the item sequence and the
// flat adjustments. Subtotal is the sum of item amounts in stored order;
// total = subtotal − discount + tax + shipping. No rounding is applied
// here: presentation formatting is a rendering concern. A discount larger
// than the subtotal yields a negative total; that is the accepted
// behavior, not an error.
func ComputeTotals(items []LineItem, discount, tax, shipping float64) Totals {
	var subtotal float64
	for i := range items {
		subtotal += items[i].Amount
	}
	return Totals{
		Subtotal: subtotal,
		Total:    subtotal - discount + tax + shipping,
	}
}
