package request

import (
	"strings"

	"invoicer/internal/domain/entities"
)

type LineItemRequest struct {
	Description Text   `json:"description" swaggertype:"string" example:"Website design"`
	Quantity    Number `json:"quantity" swaggertype:"number" example:"2"`
	Amount      Number `json:"amount" swaggertype:"number" example:"150.5"`
}

type BankDetailsRequest struct {
	BankName      Text `json:"bank_name" swaggertype:"string"`
	AccountName   Text `json:"account_name" swaggertype:"string"`
	AccountNumber Text `json:"account_number" swaggertype:"string"`
	SwiftCode     Text `json:"swift_code" swaggertype:"string"`
}

// InvoiceRequest is the body of POST /invoices and PUT /invoices/:id.
// Totals sent by clients are ignored; they are recomputed on save.
type InvoiceRequest struct {
	ID            string              `json:"id" example:"INV-2026-1001"`
	ClientName    Text                `json:"client_name" swaggertype:"string" example:"Acme Pty"`
	ClientAddress Text                `json:"client_address" swaggertype:"string"`
	InvoiceDate   string              `json:"invoice_date" example:"2026-10-18"`
	DueDate       string              `json:"due_date" example:"2026-11-17"`
	Items         []LineItemRequest   `json:"items"`
	GSTRate       Number              `json:"gst_rate" swaggertype:"number" example:"10"`
	DiscountRate  Number              `json:"discount_rate" swaggertype:"number" example:"0"`
	Status        string              `json:"status" example:"pending"`
	Template      string              `json:"template" example:"professional"`
	Color         string              `json:"color" example:"blue"`
	BankDetails   *BankDetailsRequest `json:"bank_details"`
	Terms         []string            `json:"terms"`
}

func (r InvoiceRequest) ToDomain() entities.Invoice {
	inv := entities.Invoice{
		ID:            strings.TrimSpace(r.ID),
		ClientName:    r.ClientName.String(),
		ClientAddress: r.ClientAddress.String(),
		InvoiceDate:   strings.TrimSpace(r.InvoiceDate),
		DueDate:       strings.TrimSpace(r.DueDate),
		Items:         ToLineItems(r.Items),
		GSTRate:       r.GSTRate.Float64(),
		DiscountRate:  r.DiscountRate.Float64(),
		Status:        entities.InvoiceStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		Template:      strings.TrimSpace(r.Template),
		Color:         strings.TrimSpace(r.Color),
	}
	if r.BankDetails != nil {
		inv.BankDetails = &entities.BankDetails{
			BankName:      r.BankDetails.BankName.String(),
			AccountName:   r.BankDetails.AccountName.String(),
			AccountNumber: r.BankDetails.AccountNumber.String(),
			SwiftCode:     r.BankDetails.SwiftCode.String(),
		}
	}
	if r.Terms != nil {
		inv.Terms = append([]string(nil), r.Terms...)
	}
	return inv
}

func ToLineItems(items []LineItemRequest) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem{
			Description: it.Description.String(),
			Quantity:    it.Quantity.Float64(),
			Amount:      it.Amount.Float64(),
		})
	}
	return out
}

// TotalsRequest is the body of POST /totals.
type TotalsRequest struct {
	Items        []LineItemRequest `json:"items"`
	GSTRate      Number            `json:"gst_rate" swaggertype:"number" example:"10"`
	DiscountRate Number            `json:"discount_rate" swaggertype:"number" example:"5"`
}
