package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"billforge/internal/csvexport"
	"billforge/internal/domain"
	"billforge/internal/export/pdf"
	"billforge/internal/export/xlsx"
	"billforge/internal/port"
	"billforge/internal/render"
)

// ExportFile is a generated download: content plus the filename for the
// Content-Disposition header.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SendInvoiceInput is the DTO for emailing a rendered invoice.
type SendInvoiceInput struct {
	InvoiceID uuid.UUID
	ToEmail   string
	ToName    string
}

// ExportService turns a stored invoice into downloadable artifacts and
// outbound email.
type ExportService interface {
	CSV(ctx context.Context, id uuid.UUID) (*ExportFile, error)
	XLSX(ctx context.Context, id uuid.UUID) (*ExportFile, error)
	PDF(ctx context.Context, id uuid.UUID) (*ExportFile, error)
	Send(ctx context.Context, input *SendInvoiceInput) error
}

type exportService struct {
	invoiceSvc InvoiceService
	renderer   *render.Renderer
	sender     port.EmailSender
}

// NewExportService creates a new ExportService implementation.
func NewExportService(invoiceSvc InvoiceService, renderer *render.Renderer, sender port.EmailSender) ExportService {
	return &exportService{
		invoiceSvc: invoiceSvc,
		renderer:   renderer,
		sender:     sender,
	}
}

// getFinalized loads an invoice and rejects drafts that have not passed
// validation yet. Downloads and email always reflect a saved state.
func (s *exportService) getFinalized(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	inv, err := s.invoiceSvc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !inv.Finalized {
		return nil, domain.ErrInvoiceNotFinalized
	}
	return inv, nil
}

func (s *exportService) CSV(ctx context.Context, id uuid.UUID) (*ExportFile, error) {
	inv, err := s.getFinalized(ctx, id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(csvexport.BOM)
	w := csvexport.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}
	if err := w.WriteInvoice(inv); err != nil {
		return nil, fmt.Errorf("writing csv rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	return &ExportFile{
		Filename:    csvexport.BuildFilename(inv.InvoiceNumber, "csv"),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

func (s *exportService) XLSX(ctx context.Context, id uuid.UUID) (*ExportFile, error) {
	inv, err := s.getFinalized(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := xlsx.Generate(inv)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Filename:    csvexport.BuildFilename(inv.InvoiceNumber, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
	}, nil
}

func (s *exportService) PDF(ctx context.Context, id uuid.UUID) (*ExportFile, error) {
	inv, err := s.getFinalized(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := pdf.Generate(inv)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Filename:    csvexport.BuildFilename(inv.InvoiceNumber, "pdf"),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func (s *exportService) Send(ctx context.Context, input *SendInvoiceInput) error {
	inv, err := s.getFinalized(ctx, input.InvoiceID)
	if err != nil {
		return err
	}
	html, err := s.renderer.Render(inv)
	if err != nil {
		return err
	}
	shareURL, err := s.invoiceSvc.ShareURL(ctx, input.InvoiceID)
	if err != nil {
		return err
	}

	email := port.InvoiceEmail{
		ToEmail:       input.ToEmail,
		ToName:        input.ToName,
		InvoiceNumber: inv.InvoiceNumber,
		HTML:          html,
		ShareURL:      shareURL,
	}
	if err := s.sender.SendInvoice(ctx, email); err != nil {
		log.Printf("exportService.Send: sending invoice %s to %s failed: %v", inv.ID, input.ToEmail, err)
		return err
	}
	log.Printf("exportService.Send: sent invoice %s to %s", inv.ID, input.ToEmail)
	return nil
}
