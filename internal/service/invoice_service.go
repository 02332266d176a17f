package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/url"

	"github.com/google/uuid"

	"billforge/internal/domain"
	"billforge/internal/port"
	"billforge/internal/render"
	"billforge/internal/share"
)

// UpdateInvoiceInput is the DTO for patching invoice header fields and
// adjustments. Nil pointers leave the corresponding field untouched.
type UpdateInvoiceInput struct {
	InvoiceID     uuid.UUID
	From          *string
	ProposalTo    *string
	ShipTo        *string
	InvoiceNumber *string
	Date          *string
	PaymentTerms  *string
	DueDate       *string
	PONumber      *string
	Discount      *float64
	Tax           *float64
	Shipping      *float64
	BankDetails   *string
	Terms         *string
	Theme         *string
}

// UpdateItemInput is the DTO for editing a single line item field.
type UpdateItemInput struct {
	InvoiceID uuid.UUID
	ItemID    uuid.UUID
	Field     string
	Text      string
	Number    float64
}

// SetLogoInput is the DTO for attaching a logo image.
type SetLogoInput struct {
	InvoiceID   uuid.UUID
	ContentType string
	Data        []byte
}

// InvoiceService defines the invoice draft lifecycle contract.
type InvoiceService interface {
	Create(ctx context.Context) (*domain.Invoice, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, input *UpdateInvoiceInput) (*domain.Invoice, error)
	AddItem(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	UpdateItem(ctx context.Context, input *UpdateItemInput) (*domain.Invoice, error)
	RemoveItem(ctx context.Context, id, itemID uuid.UUID) (*domain.Invoice, error)
	AddCatalogueProduct(ctx context.Context, id uuid.UUID, productID string) (*domain.Invoice, error)
	SetLogo(ctx context.Context, input *SetLogoInput) (*domain.Invoice, error)
	ClearLogo(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	Finalize(ctx context.Context, id uuid.UUID) (*domain.Invoice, map[string]string, error)
	ShareURL(ctx context.Context, id uuid.UUID) (string, error)
	RenderPreview(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type invoiceService struct {
	store         port.InvoiceStore
	catalogueRepo port.CatalogueRepository
	renderer      *render.Renderer
	previewURL    string
	maxLogoBytes  int64
}

// NewInvoiceService creates a new InvoiceService implementation.
// previewURL is the absolute address of the standalone preview page that
// share links point at.
func NewInvoiceService(
	store port.InvoiceStore,
	catalogueRepo port.CatalogueRepository,
	renderer *render.Renderer,
	previewURL string,
	maxLogoBytes int64,
) InvoiceService {
	return &invoiceService{
		store:         store,
		catalogueRepo: catalogueRepo,
		renderer:      renderer,
		previewURL:    previewURL,
		maxLogoBytes:  maxLogoBytes,
	}
}

func (s *invoiceService) Create(ctx context.Context) (*domain.Invoice, error) {
	inv := domain.NewInvoice()
	if err := s.store.Put(ctx, inv); err != nil {
		return nil, fmt.Errorf("storing invoice: %w", err)
	}
	log.Printf("invoiceService.Create: created invoice %s", inv.ID)
	return inv, nil
}

func (s *invoiceService) Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.store.Get(ctx, id)
}

// Delete discards a draft. Share links that were handed out keep
// working; they carry their own snapshot.
func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("invoiceService.Delete: discarded invoice %s", id)
	return nil
}

func (s *invoiceService) Update(ctx context.Context, input *UpdateInvoiceInput) (*domain.Invoice, error) {
	inv, err := s.store.Get(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&inv.From, input.From)
	applyString(&inv.ProposalTo, input.ProposalTo)
	applyString(&inv.ShipTo, input.ShipTo)
	applyString(&inv.InvoiceNumber, input.InvoiceNumber)
	applyString(&inv.Date, input.Date)
	applyString(&inv.PaymentTerms, input.PaymentTerms)
	applyString(&inv.DueDate, input.DueDate)
	applyString(&inv.PONumber, input.PONumber)
	applyString(&inv.BankDetails, input.BankDetails)
	applyString(&inv.Terms, input.Terms)

	if input.Discount != nil {
		inv.Discount = *input.Discount
	}
	if input.Tax != nil {
		inv.Tax = *input.Tax
	}
	if input.Shipping != nil {
		inv.Shipping = *input.Shipping
	}
	if input.Theme != nil {
		inv.Theme = domain.ParseTheme(*input.Theme)
	}

	if err := s.store.Put(ctx, inv); err != nil {
		return nil, fmt.Errorf("storing invoice: %w", err)
	}
	return inv, nil
}

func (s *invoiceService) AddItem(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	inv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.AddItem()
	if err := s.store.Put(ctx, inv); err != nil {
		return nil, fmt.Errorf("storing invoice: %w", err)
	}
	return inv, nil
}

func (s *invoiceService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*domain.Invoice, error) {
	inv, err := s.store.Get(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}

	field, ok := domain.ParseItemField(input.Field)
	if !ok {
		return nil, domain.ErrInvalidItemField
	}
	if !inv.UpdateItem(input.ItemID, field, input.Text, input.Number) {
		return nil, domain.ErrItemNotFound
	}

	if err := s.store.Put(ctx, inv); err != nil {
		return nil, fmt.Errorf("storing invoice: %w", err)
	}
	return inv, nil
}

func (s *invoiceService) RemoveItem(ctx context.Context, id, itemID uuid.UUID) (*domain.Invoice, error) {
	inv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !inv.RemoveItem(itemID) {
		return nil, domain.ErrItemNotFound
	}
	if err := s.store.Put(ctx, inv); err != nil {
		return nil, fmt.Errorf("storing invoice: %w", err)
	}
	return inv, nil
}

func (s *invoiceService) AddCatalogueProduct(ctx context.Context, id uuid.UUID, productID string) (*domain.Invoice, error) {
	inv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	product, err := s.catalogueRepo.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	inv.AddProduct(product)
	if err := s.store.Put(ctx, inv); err != nil {
		return nil, fmt.Errorf("storing invoice: %w", err)
	}
	log.Printf("invoiceService.AddCatalogueProduct: added product %s to invoice %s", productID, id)
	return inv, nil
}

func (s *invoiceService) SetLogo(ctx context.Context, input *SetLogoInput) (*domain.Invoice, error) {
	if !domain.AllowedLogoTypes[input.ContentType] {
		return nil, domain.ErrUnsupportedLogoType
	}
	if int64(len(input.Data)) > s.maxLogoBytes {
		return nil, domain.ErrLogoTooLarge
	}

	inv, err := s.store.Get(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s",
		input.ContentType, base64.StdEncoding.EncodeToString(input.Data))
	inv.SetLogo(dataURI)

	if err := s.store.Put(ctx, inv); err != nil {
		return nil, fmt.Errorf("storing invoice: %w", err)
	}
	return inv, nil
}

func (s *invoiceService) ClearLogo(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	inv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.SetLogo("")
	if err := s.store.Put(ctx, inv); err != nil {
		return nil, fmt.Errorf("storing invoice: %w", err)
	}
	return inv, nil
}

// Finalize validates the draft and marks it finalized. A non-empty field
// error map is returned with ErrValidationFailed; the draft is left
// untouched in that case.
func (s *invoiceService) Finalize(ctx context.Context, id uuid.UUID) (*domain.Invoice, map[string]string, error) {
	inv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if fieldErrs := inv.Validate(); len(fieldErrs) > 0 {
		return nil, fieldErrs, domain.ErrValidationFailed
	}

	inv.Finalized = true
	if err := s.store.Put(ctx, inv); err != nil {
		return nil, nil, fmt.Errorf("storing invoice: %w", err)
	}
	log.Printf("invoiceService.Finalize: finalized invoice %s", id)
	return inv, nil, nil
}

func (s *invoiceService) ShareURL(ctx context.Context, id uuid.UUID) (string, error) {
	inv, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if !inv.Finalized {
		return "", domain.ErrInvoiceNotFinalized
	}
	encoded, err := share.Encode(inv)
	if err != nil {
		return "", fmt.Errorf("encoding invoice: %w", err)
	}

	u, err := url.Parse(s.previewURL)
	if err != nil {
		return "", fmt.Errorf("parsing preview url: %w", err)
	}
	// The encoded payload is already URL-escaped; appending it through
	// url.Values would escape it a second time.
	u.RawQuery = "data=" + encoded
	return u.String(), nil
}

func (s *invoiceService) RenderPreview(ctx context.Context, id uuid.UUID) ([]byte, error) {
	inv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(inv)
}
