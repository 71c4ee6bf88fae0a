package entities

import "time"

// InvoiceStatus represents the lifecycle of an invoice.
//
// Domain notes:
//   - New invoices start as draft.
//   - pending means the invoice was issued and awaits payment.
//   - paid is set either manually or by an approved provider payment.

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusPending, InvoiceStatusPaid:
		return true
	}
	return false
}

// LineItem is one billable row of an invoice. Amount is the unit price.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Amount      float64 `json:"amount"`
}

func (li LineItem) Total() float64 {
	return li.Quantity * li.Amount
}

// Totals holds the derived numbers of an invoice.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	GST      float64 `json:"gst"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Invoice is the persisted aggregate.
//
// Storage model:
//   - one serialized list of invoices under a single storage key
//   - ID is the upsert key (INV-<year>-<sequence>)
//
// Subtotal, GST, Discount and Total are cached at save time and are never
// recomputed by the store.
type Invoice struct {
	ID            string        `json:"id"`
	ClientName    string        `json:"client_name"`
	ClientAddress string        `json:"client_address"`
	InvoiceDate   string        `json:"invoice_date"`
	DueDate       string        `json:"due_date"`
	Items         []LineItem    `json:"items"`
	GSTRate       float64       `json:"gst_rate"`
	DiscountRate  float64       `json:"discount_rate"`
	Status        InvoiceStatus `json:"status"`

	Template    string       `json:"template"`
	Color       string       `json:"color"`
	BankDetails *BankDetails `json:"bank_details,omitempty"`
	Terms       []string     `json:"terms,omitempty"`

	Subtotal float64 `json:"subtotal"`
	GST      float64 `json:"gst"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i Invoice) Totals() Totals {
	return Totals{Subtotal: i.Subtotal, GST: i.GST, Discount: i.Discount, Total: i.Total}
}

func (i *Invoice) ApplyTotals(t Totals) {
	i.Subtotal = t.Subtotal
	i.GST = t.GST
	i.Discount = t.Discount
	i.Total = t.Total
}

// DateLayout is the ISO calendar date format used by InvoiceDate and DueDate.
const DateLayout = "2006-01-02"
