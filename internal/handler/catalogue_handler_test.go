package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"billforge/internal/domain"
	"billforge/internal/handler"
	"billforge/mocks"
)

func TestCatalogueList(t *testing.T) {
	svc := new(mocks.MockCatalogueService)
	h := handler.NewCatalogueHandler(svc)
	svc.On("ListCatalogues", mock.Anything).Return([]domain.Catalogue{
		{ID: "office-supplies", Name: "Office Supplies"},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/catalogues", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Office Supplies")
}

func TestCatalogueListFailure(t *testing.T) {
	svc := new(mocks.MockCatalogueService)
	h := handler.NewCatalogueHandler(svc)
	svc.On("ListCatalogues", mock.Anything).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/catalogues", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
