package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	request "invoicer/internal/adapter/http/dto/request"
	response "invoicer/internal/adapter/http/dto/response"
	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase"
	"invoicer/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for invoices and the totals preview.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// CalculateTotals godoc
// @Summary      Preview invoice totals
// @Description  Computes subtotal, GST, discount and total without saving anything.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      request.TotalsRequest  true  "Items and rates"
// @Success      200   {object}  response.TotalsResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /totals [post]
func (h *InvoiceHandler) CalculateTotals(c *gin.Context) {
	var payload request.TotalsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	t := h.usecase.CalculateTotals(request.ToLineItems(payload.Items), payload.GSTRate.Float64(), payload.DiscountRate.Float64())
	c.JSON(http.StatusOK, response.FromTotals(t))
}

// ListInvoices godoc
// @Summary      List invoices
// @Description  Dashboard listing with optional status filter and sort order.
// @Tags         invoices
// @Produce      json
// @Param        status  query     string  false  "all | draft | pending | paid"
// @Param        sort    query     string  false  "date | amount | client"
// @Success      200     {object}  response.InvoiceListResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	q := usecase.ListQuery{Status: c.Query("status"), SortBy: c.Query("sort")}

	invoices, err := h.usecase.List(c.Request.Context(), q)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.InvoiceListResponse{Invoices: response.FromInvoices(invoices), Count: len(invoices)})
}

// NextInvoiceID godoc
// @Summary      Next invoice id
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  response.NextIDResponse
// @Router       /invoices/next-id [get]
func (h *InvoiceHandler) NextInvoiceID(c *gin.Context) {
	c.JSON(http.StatusOK, response.NextIDResponse{ID: h.usecase.NextID(c.Request.Context())})
}

// NewInvoice godoc
// @Summary      New invoice draft
// @Description  Returns an unsaved draft with a fresh id, default dates, template defaults and one empty line item.
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  response.InvoiceResponse
// @Router       /invoices/new [get]
func (h *InvoiceHandler) NewInvoice(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromInvoice(h.usecase.NewDraft(c.Request.Context())))
}

// GetInvoice godoc
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// CreateInvoice godoc
// @Summary      Save invoice
// @Description  Inserts or replaces the invoice with the body id. A blank id gets the next generated id.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      request.InvoiceRequest  true  "Invoice"
// @Success      201   {object}  response.InvoiceResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[invoice][handler] invalid payload err=%v", err)
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv := payload.ToDomain()
	if inv.ID == "" {
		inv.ID = h.usecase.NextID(c.Request.Context())
	}
	h.save(c, inv, http.StatusCreated)
}

// UpdateInvoice godoc
// @Summary      Replace invoice
// @Description  Inserts or replaces the invoice. The path id wins over the body id.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Invoice id"
// @Param        body  body      request.InvoiceRequest  true  "Invoice"
// @Success      200   {object}  response.InvoiceResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[invoice][handler] invalid payload id=%s err=%v", c.Param("id"), err)
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv := payload.ToDomain()
	inv.ID = strings.TrimSpace(c.Param("id"))
	h.save(c, inv, http.StatusOK)
}

func (h *InvoiceHandler) save(c *gin.Context, inv entities.Invoice, status int) {

	saved, err := h.usecase.Save(c.Request.Context(), inv)
	if err != nil {
		log.Printf("[invoice][handler] save failed id=%s err=%v", inv.ID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(status, response.FromInvoice(saved))
}

// DeleteInvoice godoc
// @Summary      Delete invoice
// @Description  Deleting an unknown id succeeds.
// @Tags         invoices
// @Param        id   path  string  true  "Invoice id"
// @Success      204
// @Failure      500  {object}  pkg.HTTPError
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetInvoiceDocument godoc
// @Summary      Printable invoice
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path  string  true  "Invoice id"
// @Success      200  {file}    binary
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{id}/document [get]
func (h *InvoiceHandler) GetInvoiceDocument(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	doc, contentType, err := h.usecase.RenderDocument(c.Request.Context(), id)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", id+".pdf"))
	c.Data(http.StatusOK, contentType, doc)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvoiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_STATUS", "Invalid invoice status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainError("INVALID_LINE_ITEM", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceSaveFailed):
		return pkg.NewDomainErrorSimple("INVOICE_SAVE_FAILED", "Invoice could not be saved", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvoiceDeleteFailed):
		return pkg.NewDomainErrorSimple("INVOICE_DELETE_FAILED", "Invoice could not be deleted", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrDocumentRendererNotReady):
		return pkg.NewDomainErrorSimple("DOCUMENT_UNAVAILABLE", "Document export not available", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
