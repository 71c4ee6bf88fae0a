package entities

const (
	DefaultTemplate = "professional"
	DefaultColor    = "blue"
)

// BankDetails is printed at the bottom of an invoice.
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	SwiftCode     string `json:"swift_code"`
}

// InvoiceTemplate carries the defaults applied to invoices that do not set
// their own bank details or terms.
type InvoiceTemplate struct {
	Name        string
	BankDetails BankDetails
	Terms       []string
}

var defaultTerms = []string{
	"Payment is due within 30 days",
	"Please include invoice number on your payment",
	"Thank you for your business",
}

var invoiceTemplates = map[string]InvoiceTemplate{
	"professional": {Name: "Professional", Terms: defaultTerms},
	"modern":       {Name: "Modern", Terms: defaultTerms},
}

// LookupTemplate returns the named template, falling back to the
// professional one for unknown names. Terms are copied so callers may
// mutate them.
func LookupTemplate(name string) InvoiceTemplate {
	t, ok := invoiceTemplates[name]
	if !ok {
		t = invoiceTemplates[DefaultTemplate]
	}
	t.Terms = append([]string(nil), t.Terms...)
	return t
}
