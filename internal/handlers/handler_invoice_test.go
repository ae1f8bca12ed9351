package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/billbook-app/billbook_backend/internal/apperrors"
	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portssvc "github.com/billbook-app/billbook_backend/internal/core/ports/services"
	"github.com/billbook-app/billbook_backend/internal/dto"
	"github.com/billbook-app/billbook_backend/internal/middleware"
	"github.com/billbook-app/billbook_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "handler-test-secret"

type stubUserService struct {
	user *domain.User
	err  error
}

func (s *stubUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

type stubInvoiceService struct {
	created *domain.Invoice
	err     error
}

func (s *stubInvoiceService) CreateInvoice(ctx context.Context, businessID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if s.err != nil {
		return nil, s.err
	}
	inv := *s.created
	inv.BusinessID = businessID
	return &inv, nil
}

func (s *stubInvoiceService) ListInvoices(ctx context.Context, businessID string) ([]domain.Invoice, error) {
	return []domain.Invoice{}, nil
}

func (s *stubInvoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return nil, apperrors.ErrNotFound
}

func (s *stubInvoiceService) DeleteInvoice(ctx context.Context, invoiceID string, businessID string) error {
	return nil
}

func newInvoiceTestRouter(userSvc portssvc.UserSvcFacade, invoiceSvc portssvc.InvoiceSvcFacade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.AuthMiddleware(handlerTestSecret))

	h := NewInvoiceHandler(invoiceSvc, userSvc)
	engine.POST("/api/invoices", h.Create)
	engine.GET("/api/invoices/:id", h.Get)
	return engine
}

func bearerToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := utils.GenerateJWT(userID, "user@example.com", handlerTestSecret, time.Hour, "test")
	require.NoError(t, err)
	return "Bearer " + token
}

func TestCreateInvoiceRequiresToken(t *testing.T) {
	engine := newInvoiceTestRouter(&stubUserService{}, &stubInvoiceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateInvoiceWithoutBusinessIsBadRequest(t *testing.T) {
	userSvc := &stubUserService{user: &domain.User{ID: "u1"}} // no business yet
	engine := newInvoiceTestRouter(userSvc, &stubInvoiceService{})

	body := `{"customer_id":"c1","items":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(body))
	req.Header.Set("Authorization", bearerToken(t, "u1"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "business")
}

func TestCreateInvoiceSuccess(t *testing.T) {
	businessID := "b1"
	userSvc := &stubUserService{user: &domain.User{ID: "u1", BusinessID: &businessID}}
	invoiceSvc := &stubInvoiceService{created: &domain.Invoice{
		ID:            "inv1",
		InvoiceNumber: "INV-00001",
		Total:         decimal.NewFromInt(174),
		Status:        domain.InvoiceStatusUnpaid,
	}}
	engine := newInvoiceTestRouter(userSvc, invoiceSvc)

	body := `{"customer_id":"c1","items":[{"product_id":"p1","quantity":"2","price":"50","amount":"100"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewBufferString(body))
	req.Header.Set("Authorization", bearerToken(t, "u1"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got domain.Invoice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "INV-00001", got.InvoiceNumber)
	assert.Equal(t, "b1", got.BusinessID)
	assert.Equal(t, domain.InvoiceStatusUnpaid, got.Status)
}

func TestGetInvoiceUnknownIDIsNotFound(t *testing.T) {
	businessID := "b1"
	userSvc := &stubUserService{user: &domain.User{ID: "u1", BusinessID: &businessID}}
	engine := newInvoiceTestRouter(userSvc, &stubInvoiceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/ghost", nil)
	req.Header.Set("Authorization", bearerToken(t, "u1"))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
