// Package render turns invoice state into the printable HTML document.
// There is exactly one renderer: the live editor preview and the
// standalone shareable preview both call Render, so the two surfaces can
// never drift apart. Output is deterministic for a fixed invoice and
// theme.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"billforge/internal/domain"
)

//go:embed templates
var templateFS embed.FS

// themeFiles lists the template files composed for each theme. Classic,
// modern, and minimal share one body and differ only in styling.
var themeFiles = map[domain.Theme]string{
	domain.ThemeClassic:       "templates/themes/classic.tmpl",
	domain.ThemeModern:        "templates/themes/modern.tmpl",
	domain.ThemeMinimal:       "templates/themes/minimal.tmpl",
	domain.ThemeModernMinimal: "templates/themes/modern_minimal.tmpl",
	domain.ThemeCorporate:     "templates/themes/corporate.tmpl",
	domain.ThemeCreative:      "templates/themes/creative.tmpl",
}

// Renderer holds the parsed template set for every theme.
type Renderer struct {
	themes      map[domain.Theme]*template.Template
	placeholder *template.Template
}

// New parses the embedded theme templates. It fails only on a broken
// build, so callers treat an error as fatal.
func New() (*Renderer, error) {
	themes := make(map[domain.Theme]*template.Template, len(themeFiles))
	for theme, file := range themeFiles {
		t, err := template.ParseFS(templateFS,
			"templates/base.tmpl",
			"templates/partials.tmpl",
			file,
		)
		if err != nil {
			return nil, fmt.Errorf("parsing %s theme: %w", theme, err)
		}
		themes[theme] = t
	}

	placeholder, err := template.ParseFS(templateFS, "templates/placeholder.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing placeholder: %w", err)
	}

	return &Renderer{themes: themes, placeholder: placeholder}, nil
}

// Render produces the themed invoice document. An unknown theme id on
// the invoice falls back to classic.
func (r *Renderer) Render(inv *domain.Invoice) ([]byte, error) {
	theme := domain.ParseTheme(string(inv.Theme))
	t := r.themes[theme]

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "page", buildPage(inv)); err != nil {
		return nil, fmt.Errorf("rendering %s theme: %w", theme, err)
	}
	return buf.Bytes(), nil
}

// Placeholder produces the non-fatal "loading" page the standalone
// preview shows when the data parameter is absent or malformed.
func (r *Renderer) Placeholder() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.placeholder.ExecuteTemplate(&buf, "placeholder", nil); err != nil {
		return nil, fmt.Errorf("rendering placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

// page is the fully formatted view handed to the theme templates. All
// monetary strings are preformatted so the templates carry no logic
// beyond conditionals.
type page struct {
	Theme         string
	LogoURL       template.URL
	HasLogo       bool
	InvoiceNumber string
	Date          string
	PaymentTerms  string
	DueDate       string
	PONumber      string
	From          string
	To            string
	ShipTo        string
	HasShipTo     bool
	Items         []itemRow
	Subtotal      string
	Discount      string
	HasDiscount   bool
	Tax           string
	HasTax        bool
	Shipping      string
	HasShipping   bool
	Total         string
	BankDetails   string
	HasBank       bool
	Terms         string
	HasTerms      bool
	HasFooter     bool
}

type itemRow struct {
	HSN         string
	Description string
	Quantity    string
	Rate        string
	Amount      string
	Even        bool
}

func buildPage(inv *domain.Invoice) *page {
	totals := inv.Totals()

	p := &page{
		Theme:         string(domain.ParseTheme(string(inv.Theme))),
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.Date,
		PaymentTerms:  inv.PaymentTerms,
		DueDate:       inv.DueDate,
		PONumber:      inv.PONumber,
		From:          textOrNA(inv.From),
		To:            textOrNA(inv.ProposalTo),
		ShipTo:        inv.ShipTo,
		HasShipTo:     strings.TrimSpace(inv.ShipTo) != "",
		Subtotal:      Money(totals.Subtotal),
		Discount:      Money(inv.Discount),
		HasDiscount:   inv.Discount > 0,
		Tax:           Money(inv.Tax),
		HasTax:        inv.Tax > 0,
		Shipping:      Money(inv.Shipping),
		HasShipping:   inv.Shipping > 0,
		Total:         Money(totals.Total),
		BankDetails:   inv.BankDetails,
		HasBank:       strings.TrimSpace(inv.BankDetails) != "",
		Terms:         inv.Terms,
		HasTerms:      strings.TrimSpace(inv.Terms) != "",
	}
	p.HasFooter = p.HasBank || p.HasTerms

	// html/template refuses data: URIs in src attributes unless the
	// value is pre-approved, so vet the prefix here.
	if strings.HasPrefix(inv.Logo, "data:image/") {
		p.LogoURL = template.URL(inv.Logo)
		p.HasLogo = true
	}

	p.Items = make([]itemRow, len(inv.Items))
	for i, item := range inv.Items {
		hsn := item.HSNCode
		if hsn == "" {
			hsn = "-"
		}
		p.Items[i] = itemRow{
			HSN:         hsn,
			Description: item.Description,
			Quantity:    Quantity(item.Quantity),
			Rate:        Money(item.Rate),
			Amount:      Money(item.Amount),
			Even:        i%2 == 0,
		}
	}

	return p
}

func textOrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
