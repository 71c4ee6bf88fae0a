package response

import (
	"time"

	"invoicer/internal/domain/entities"
	"invoicer/internal/domain/totals"
)

type InvoicePaymentResponse struct {
	PaymentID       string    `json:"payment_id"`
	InvoiceID       string    `json:"invoice_id"`
	Amount          float64   `json:"amount"`
	FormattedAmount string    `json:"formatted_amount" example:"105.00 USD"`
	PaymentDate     time.Time `json:"payment_date"`
	Status          string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromInvoicePayment(p entities.InvoicePayment) InvoicePaymentResponse {
	return InvoicePaymentResponse{
		PaymentID:          p.ID,
		InvoiceID:          p.InvoiceID,
		Amount:             p.Amount,
		FormattedAmount:    totals.FormatUSD(p.Amount),
		PaymentDate:        p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromInvoicePayments(payments []entities.InvoicePayment) []InvoicePaymentResponse {
	out := make([]InvoicePaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromInvoicePayment(p))
	}
	return out
}
