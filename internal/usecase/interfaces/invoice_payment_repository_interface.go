package interfaces

import (
	"context"
	"invoicer/internal/domain/entities"
)

// IInvoicePaymentRepository persists provider payments of invoices.

type IInvoicePaymentRepository interface {
	Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}
