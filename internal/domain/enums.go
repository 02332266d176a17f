package domain

// Theme identifies one of the fixed invoice layout variants.
type Theme string

const (
	ThemeClassic       Theme = "classic"
	ThemeModern        Theme = "modern"
	ThemeMinimal       Theme = "minimal"
	ThemeModernMinimal Theme = "modern-minimal"
	ThemeCorporate     Theme = "corporate"
	ThemeCreative      Theme = "creative"
)

// Themes lists every known theme in display order.
var Themes = []Theme{
	ThemeClassic,
	ThemeModern,
	ThemeMinimal,
	ThemeModernMinimal,
	ThemeCorporate,
	ThemeCreative,
}

// ParseTheme normalizes a theme identifier. Unknown values fall back to
// the classic theme rather than failing.
func ParseTheme(s string) Theme {
	for _, t := range Themes {
		if string(t) == s {
			return t
		}
	}
	return ThemeClassic
}

// ItemField names an editable field of a line item.
type ItemField string

const (
	ItemFieldHSNCode     ItemField = "hsn_code"
	ItemFieldDescription ItemField = "description"
	ItemFieldQuantity    ItemField = "quantity"
	ItemFieldRate        ItemField = "rate"
)

// ParseItemField validates an item field name from a request.
func ParseItemField(s string) (ItemField, bool) {
	switch ItemField(s) {
	case ItemFieldHSNCode, ItemFieldDescription, ItemFieldQuantity, ItemFieldRate:
		return ItemField(s), true
	}
	return "", false
}

// Numeric reports whether edits to the field recompute the item's
// amount.
func (f ItemField) Numeric() bool {
	return f == ItemFieldQuantity || f == ItemFieldRate
}

// AllowedLogoTypes is the set of accepted logo upload MIME types.
var AllowedLogoTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}
