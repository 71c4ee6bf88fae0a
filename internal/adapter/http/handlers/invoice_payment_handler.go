package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "invoicer/internal/adapter/http/dto/response"
	"invoicer/internal/usecase"
	"invoicer/pkg"

	"github.com/gin-gonic/gin"
)

// InvoicePaymentHandler handles HTTP requests for invoice payments.

type InvoicePaymentHandler struct {
	usecase usecase.IInvoicePaymentUseCase
}

func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase) *InvoicePaymentHandler {
	return &InvoicePaymentHandler{usecase: uc}
}

// PayInvoice godoc
// @Summary      Pay invoice
// @Description  Charges a pending invoice through the payment provider. An approved payment marks the invoice as paid.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true   "Invoice id"
// @Param        body  body      request.InvoicePaymentRequest  false  "Provider payload, bare or wrapped in provider_payload"
// @Success      200   {object}  response.InvoicePaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /invoices/{id}/payments [post]
func (h *InvoicePaymentHandler) PayInvoice(c *gin.Context) {
	invoiceID := c.Param("id")
	log.Printf("[payment][handler] pay start invoice_id=%s", invoiceID)

	payload, err := readProviderPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload invoice_id=%s err=%v", invoiceID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.PayInvoice(c.Request.Context(), invoiceID, payload)
	if err != nil {
		log.Printf("[payment][handler] pay failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapInvoicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] pay success invoice_id=%s payment_id=%s status=%s", invoiceID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromInvoicePayment(created))
}

// ListInvoicePayments godoc
// @Summary      List invoice payments
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {array}   response.InvoicePaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /invoices/{id}/payments [get]
func (h *InvoicePaymentHandler) ListInvoicePayments(c *gin.Context) {
	invoiceID := c.Param("id")

	payments, err := h.usecase.ListByInvoiceID(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[payment][handler] list failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapInvoicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoicePayments(payments))
}

// readProviderPayload accepts the provider payload either bare or wrapped in
// a provider_payload envelope. An empty body means an empty object.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapInvoicePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInvoiceID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found at the payment provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAYABLE", "Only pending invoices with an amount due can be paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceSaveFailed):
		return pkg.NewDomainErrorSimple("INVOICE_SAVE_FAILED", "Payment recorded but invoice status could not be updated", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
