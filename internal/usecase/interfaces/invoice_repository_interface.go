package interfaces

import (
	"context"
	"invoicer/internal/domain/entities"
)

// IInvoiceRepository is the invoice store.
//
// None of the operations return errors:
//   - List returns an empty slice when the collection cannot be read
//   - Upsert and Remove report success as a boolean
//   - NextID is advisory; it is derived from the collection size

type IInvoiceRepository interface {
	List(ctx context.Context) []entities.Invoice
	GetByID(ctx context.Context, id string) (entities.Invoice, bool)
	Upsert(ctx context.Context, inv entities.Invoice) (entities.Invoice, bool)
	Remove(ctx context.Context, id string) bool
	NextID(ctx context.Context) string
}
