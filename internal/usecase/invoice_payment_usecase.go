package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"invoicer/internal/domain/entities"
	"invoicer/internal/domain/totals"
	"invoicer/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentInvoiceID        = errors.New("invalid invoice_id")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrInvoiceNotPayable              = errors.New("invoice not payable")
	ErrInvoiceAlreadyPaid             = errors.New("invoice already paid")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IInvoicePaymentUseCase charges pending invoices through the payment provider.
//
//   - an approved provider result marks the invoice as paid
//   - every attempt is persisted with the provider response

type IInvoicePaymentUseCase interface {
	PayInvoice(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}

type InvoicePaymentUseCase struct {
	repo     interfaces.IInvoicePaymentRepository
	invoices interfaces.IInvoiceRepository
	gateway  interfaces.IPaymentGateway
	now      func() time.Time
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(repo interfaces.IInvoicePaymentRepository, invoices interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{repo: repo, invoices: invoices, gateway: gateway, now: time.Now}
}

func (u *InvoicePaymentUseCase) PayInvoice(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.InvoicePayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	log.Printf("[payment][usecase] pay start invoice_id=%q payload_len=%d", invoiceID, len(payload))
	if invoiceID == "" {
		return entities.InvoicePayment{}, ErrInvalidPaymentInvoiceID
	}
	if len(strings.TrimSpace(string(payload))) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		log.Printf("[payment][usecase] invalid payload (not-json) invoice_id=%s", invoiceID)
		return entities.InvoicePayment{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured invoice_id=%s", invoiceID)
		return entities.InvoicePayment{}, ErrPaymentGatewayNotConfigured
	}

	inv, found := u.invoices.GetByID(ctx, invoiceID)
	if !found {
		log.Printf("[payment][usecase] invoice not found invoice_id=%s", invoiceID)
		return entities.InvoicePayment{}, ErrInvoiceNotFound
	}
	switch {
	case inv.Status == entities.InvoiceStatusPaid:
		return entities.InvoicePayment{}, ErrInvoiceAlreadyPaid
	case inv.Status != entities.InvoiceStatusPending:
		log.Printf("[payment][usecase] invoice not payable invoice_id=%s status=%s", invoiceID, inv.Status)
		return entities.InvoicePayment{}, ErrInvoiceNotPayable
	case inv.Total <= 0:
		log.Printf("[payment][usecase] invoice has no amount due invoice_id=%s total=%v", invoiceID, inv.Total)
		return entities.InvoicePayment{}, ErrInvoiceNotPayable
	}

	amount := totals.Round2(inv.Total)
	payload = enrichProviderPayload(payload, inv, amount)

	log.Printf("[payment][usecase] calling payment gateway invoice_id=%s amount=%s", invoiceID, totals.FormatUSD(amount))
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed invoice_id=%s err=%v", invoiceID, err)
		return entities.InvoicePayment{}, classifyGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway success invoice_id=%s provider_payment_id=%s provider_status=%s", invoiceID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed invoice_id=%s err=%v", invoiceID, err)
	}
	if providerPaymentID == "" {
		providerPaymentID = uuid.NewString()
	}

	p := entities.InvoicePayment{
		ID:                 providerPaymentID,
		InvoiceID:          invoiceID,
		Amount:             amount,
		Date:               u.now().UTC(),
		Status:             mapProviderStatus(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed invoice_id=%s payment_id=%s err=%v", invoiceID, p.ID, err)
		return entities.InvoicePayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		inv.Status = entities.InvoiceStatusPaid
		if _, ok := u.invoices.Upsert(ctx, inv); !ok {
			log.Printf("[payment][usecase] invoice status update failed invoice_id=%s payment_id=%s", invoiceID, created.ID)
			return created, ErrInvoiceSaveFailed
		}
	}
	log.Printf("[payment][usecase] pay success invoice_id=%s payment_id=%s status=%s", invoiceID, created.ID, created.Status)
	return created, nil
}

func (u *InvoicePaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidPaymentInvoiceID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}

// enrichProviderPayload links the provider payment to the invoice. The amount
// always comes from the stored invoice. Non-object payloads pass through.
func enrichProviderPayload(payload json.RawMessage, inv entities.Invoice, amount float64) json.RawMessage {
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		log.Printf("[payment][usecase] payload is not an object; sending as-is invoice_id=%s", inv.ID)
		return payload
	}

	if !hasNonEmptyString(reqMap, "external_reference") {
		reqMap["external_reference"] = inv.ID
	}
	if !hasNonEmptyString(reqMap, "description") {
		reqMap["description"] = fmt.Sprintf("Invoice %s", inv.ID)
	}
	reqMap["transaction_amount"] = amount

	b, err := json.Marshal(reqMap)
	if err != nil {
		return payload
	}
	return b
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func mapProviderStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
