package response

import (
	"time"

	"invoicer/internal/domain/entities"
	"invoicer/internal/domain/totals"
)

type LineItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Amount      float64 `json:"amount"`
	LineTotal   float64 `json:"line_total"`
}

type InvoiceResponse struct {
	ID            string                `json:"id"`
	ClientName    string                `json:"client_name"`
	ClientAddress string                `json:"client_address"`
	InvoiceDate   string                `json:"invoice_date"`
	DueDate       string                `json:"due_date"`
	Items         []LineItemResponse    `json:"items"`
	GSTRate       float64               `json:"gst_rate"`
	DiscountRate  float64               `json:"discount_rate"`
	Status        string                `json:"status"`
	Template      string                `json:"template"`
	Color         string                `json:"color"`
	BankDetails   *entities.BankDetails `json:"bank_details,omitempty"`
	Terms         []string              `json:"terms"`

	Subtotal       float64 `json:"subtotal"`
	GST            float64 `json:"gst"`
	Discount       float64 `json:"discount"`
	Total          float64 `json:"total"`
	FormattedTotal string  `json:"formatted_total" example:"1234.50 USD"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// FromInvoice omits timestamps of invoices that were never saved (drafts).
func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, LineItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			Amount:      it.Amount,
			LineTotal:   it.Total(),
		})
	}
	terms := inv.Terms
	if terms == nil {
		terms = []string{}
	}

	res := InvoiceResponse{
		ID:             inv.ID,
		ClientName:     inv.ClientName,
		ClientAddress:  inv.ClientAddress,
		InvoiceDate:    inv.InvoiceDate,
		DueDate:        inv.DueDate,
		Items:          items,
		GSTRate:        inv.GSTRate,
		DiscountRate:   inv.DiscountRate,
		Status:         string(inv.Status),
		Template:       inv.Template,
		Color:          inv.Color,
		BankDetails:    inv.BankDetails,
		Terms:          terms,
		Subtotal:       inv.Subtotal,
		GST:            inv.GST,
		Discount:       inv.Discount,
		Total:          inv.Total,
		FormattedTotal: totals.FormatUSD(inv.Total),
	}
	if !inv.CreatedAt.IsZero() {
		createdAt := inv.CreatedAt
		res.CreatedAt = &createdAt
	}
	if !inv.UpdatedAt.IsZero() {
		updatedAt := inv.UpdatedAt
		res.UpdatedAt = &updatedAt
	}
	return res
}

func FromInvoices(invs []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, FromInvoice(inv))
	}
	return out
}

type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Count    int               `json:"count"`
}

type NextIDResponse struct {
	ID string `json:"id" example:"INV-2026-1001"`
}

type TotalsResponse struct {
	Subtotal          float64 `json:"subtotal"`
	GST               float64 `json:"gst"`
	Discount          float64 `json:"discount"`
	Total             float64 `json:"total"`
	FormattedSubtotal string  `json:"formatted_subtotal" example:"100.00 USD"`
	FormattedGST      string  `json:"formatted_gst" example:"10.00 USD"`
	FormattedDiscount string  `json:"formatted_discount" example:"5.00 USD"`
	FormattedTotal    string  `json:"formatted_total" example:"105.00 USD"`
}

func FromTotals(t entities.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:          t.Subtotal,
		GST:               t.GST,
		Discount:          t.Discount,
		Total:             t.Total,
		FormattedSubtotal: totals.FormatUSD(t.Subtotal),
		FormattedGST:      totals.FormatUSD(t.GST),
		FormattedDiscount: totals.FormatUSD(t.Discount),
		FormattedTotal:    totals.FormatUSD(t.Total),
	}
}
