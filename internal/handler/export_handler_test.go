package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"billforge/internal/domain"
	"billforge/internal/handler"
	"billforge/internal/service"
	"billforge/mocks"
)

func newExportHandler() (*handler.ExportHandler, *mocks.MockExportService) {
	svc := new(mocks.MockExportService)
	return handler.NewExportHandler(svc), svc
}

func TestExportCSV(t *testing.T) {
	h, svc := newExportHandler()
	id := uuid.New()
	svc.On("CSV", mock.Anything, id).Return(&service.ExportFile{
		Filename:    "INV-001_2026-09-01.csv",
		ContentType: "text/csv; charset=utf-8",
		Data:        []byte("HSN Code,Description\n"),
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/export/csv", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.CSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "INV-001_2026-09-01.csv")
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestExportPDFNotFound(t *testing.T) {
	h, svc := newExportHandler()
	id := uuid.New()
	svc.On("PDF", mock.Anything, id).Return(nil, domain.ErrInvoiceNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/export/pdf", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.PDF(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportSend(t *testing.T) {
	h, svc := newExportHandler()
	id := uuid.New()
	svc.On("Send", mock.Anything, mock.MatchedBy(func(input *service.SendInvoiceInput) bool {
		return input.InvoiceID == id && input.ToEmail == "billing@globex.example"
	})).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	jsonRequest(c, http.MethodPost, "/send", gin.H{"to_email": "billing@globex.example", "to_name": "Globex"})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Send(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestExportSendInvalidEmail(t *testing.T) {
	h, _ := newExportHandler()
	id := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	jsonRequest(c, http.MethodPost, "/send", gin.H{"to_email": "not-an-email"})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
