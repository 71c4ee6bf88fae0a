package repository

import (
	"context"
	"errors"
	"sync"

	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase/interfaces"
)

const DefaultPaymentsStorageKey = "invoice_payments"

var ErrPaymentAlreadyExists = errors.New("payment already exists")

type invoicePaymentDocument struct {
	ID                 string                 `json:"id"`
	InvoiceID          string                 `json:"invoiceId"`
	Amount             float64                `json:"amount"`
	Date               string                 `json:"date"`
	Status             string                 `json:"status"`
	ProviderPayload    map[string]interface{} `json:"providerPayload,omitempty"`
	ProviderPayloadRaw string                 `json:"providerPayloadRaw,omitempty"`
}

// InvoicePaymentBlobRepository keeps invoice payments as one JSON array under
// a single key, next to the invoice collection.
type InvoicePaymentBlobRepository struct {
	collection blobCollection[invoicePaymentDocument]
	mu         sync.Mutex
}

var _ interfaces.IInvoicePaymentRepository = (*InvoicePaymentBlobRepository)(nil)

func NewInvoicePaymentBlobRepository(blobs interfaces.IBlobStore, storageKey string) *InvoicePaymentBlobRepository {
	if storageKey == "" {
		storageKey = DefaultPaymentsStorageKey
	}
	return &InvoicePaymentBlobRepository{
		collection: blobCollection[invoicePaymentDocument]{blobs: blobs, key: storageKey},
	}
}

func (r *InvoicePaymentBlobRepository) Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, err := r.collection.load(ctx)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	for _, d := range docs {
		if d.ID == p.ID {
			return entities.InvoicePayment{}, ErrPaymentAlreadyExists
		}
	}

	docs = append(docs, toInvoicePaymentDocument(p))
	if err := r.collection.save(ctx, docs); err != nil {
		return entities.InvoicePayment{}, err
	}
	return p, nil
}

func (r *InvoicePaymentBlobRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	docs, err := r.collection.load(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]entities.InvoicePayment, 0, len(docs))
	for _, d := range docs {
		if d.InvoiceID == invoiceID {
			items = append(items, fromInvoicePaymentDocument(d))
		}
	}
	return items, nil
}

func toInvoicePaymentDocument(p entities.InvoicePayment) invoicePaymentDocument {
	return invoicePaymentDocument{
		ID:                 p.ID,
		InvoiceID:          p.InvoiceID,
		Amount:             p.Amount,
		Date:               formatTimestamp(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromInvoicePaymentDocument(d invoicePaymentDocument) entities.InvoicePayment {
	var raw []byte
	if d.ProviderPayloadRaw != "" {
		raw = []byte(d.ProviderPayloadRaw)
	}
	return entities.InvoicePayment{
		ID:                 d.ID,
		InvoiceID:          d.InvoiceID,
		Amount:             d.Amount,
		Date:               parseTimestamp(d.Date),
		Status:             entities.PaymentStatus(d.Status),
		ProviderPayload:    d.ProviderPayload,
		ProviderPayloadRaw: raw,
	}
}
