package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"invoicer/internal/adapter/http/handlers/mocks"
	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestInvoicePaymentHandler_PayInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.PayInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/INV-2026-1001/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.PayInvoice)

		uc.EXPECT().PayInvoice(gomock.Any(), "INV-2026-1001", gomock.Any()).Return(entities.InvoicePayment{}, usecase.ErrInvoiceNotPayable)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/INV-2026-1001/payments", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVOICE_NOT_PAYABLE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.PayInvoice)

		now := time.Now().UTC()
		uc.EXPECT().PayInvoice(gomock.Any(), "INV-2026-1001", json.RawMessage(`{"payment_method_id":"pix"}`)).
			Return(entities.InvoicePayment{ID: "pay-1", InvoiceID: "INV-2026-1001", Amount: 105, Date: now, Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/INV-2026-1001/payments", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["formatted_amount"] != "105.00 USD" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoicePaymentHandler_ListInvoicePayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:id/payments", h.ListInvoicePayments)

		uc.EXPECT().ListByInvoiceID(gomock.Any(), "INV-2026-1001").Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/INV-2026-1001/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:id/payments", h.ListInvoicePayments)

		uc.EXPECT().ListByInvoiceID(gomock.Any(), "INV-2026-1001").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/INV-2026-1001/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 with empty array, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestReadProviderPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readProviderPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readProviderPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readProviderPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readProviderPayload(makeCtx(`{"provider_payload":null}`)); err == nil {
		t.Fatalf("expected provider_payload empty error")
	}

	payload, err = readProviderPayload(makeCtx(`{"provider_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readProviderPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}

func TestMapInvoicePaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code string
		http int
	}{
		{usecase.ErrInvalidPaymentInvoiceID, "INVALID_REQUEST", http.StatusBadRequest},
		{usecase.ErrInvalidProviderPayload, "INVALID_REQUEST", http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, "INVALID_REQUEST", http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, "PAYMENT_PROVIDER_UNAUTHORIZED", http.StatusUnauthorized},
		{usecase.ErrPaymentGatewayNotConfigured, "PAYMENT_PROVIDER_UNAVAILABLE", http.StatusServiceUnavailable},
		{usecase.ErrInvoiceNotFound, "INVOICE_NOT_FOUND", http.StatusNotFound},
		{usecase.ErrInvoiceAlreadyPaid, "INVOICE_ALREADY_PAID", http.StatusConflict},
		{usecase.ErrInvoiceNotPayable, "INVOICE_NOT_PAYABLE", http.StatusConflict},
		{usecase.ErrInvoiceSaveFailed, "INVOICE_SAVE_FAILED", http.StatusInternalServerError},
		{errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		appErr := mapInvoicePaymentError(tc.err)
		if appErr.Code != tc.code || appErr.HTTPStatus != tc.http {
			t.Fatalf("err=%v: expected %s/%d, got %s/%d", tc.err, tc.code, tc.http, appErr.Code, appErr.HTTPStatus)
		}
	}
}
