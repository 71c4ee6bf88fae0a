package request

import "encoding/json"

// InvoicePaymentRequest is the optional envelope for POST /invoices/:id/payments.
//
// `provider_payload` is forwarded as-is (raw JSON) to support varying Mercado
// Pago schemas. A body without the envelope is used as the payload itself.

type InvoicePaymentRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload" swaggertype:"object"`
}
