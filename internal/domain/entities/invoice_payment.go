package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome reported by the
// provider.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// InvoicePayment records one provider payment attempt for an invoice.
//
// ProviderPayloadRaw keeps the provider response body for traceability;
// ProviderPayload is its parsed form when the body is a JSON object.
type InvoicePayment struct {
	ID        string        `json:"id"`
	InvoiceID string        `json:"invoice_id"`
	Amount    float64       `json:"amount"`
	Date      time.Time     `json:"date"`
	Status    PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
