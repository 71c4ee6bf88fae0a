package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"invoicer/internal/domain/entities"
	"invoicer/internal/domain/totals"
	"invoicer/internal/usecase/interfaces"
)

const (
	DefaultInvoicesStorageKey = "invoices"
	firstInvoiceSequence      = 1001
)

type lineItemDocument struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Amount      float64 `json:"amount"`
}

type bankDetailsDocument struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	SwiftCode     string `json:"swiftCode"`
}

type invoiceDocument struct {
	ID            string               `json:"id"`
	ClientName    string               `json:"clientName"`
	ClientAddress string               `json:"clientAddress"`
	InvoiceDate   string               `json:"invoiceDate"`
	DueDate       string               `json:"dueDate"`
	Items         []lineItemDocument   `json:"items"`
	GSTRate       float64              `json:"gstRate"`
	DiscountRate  float64              `json:"discountRate"`
	Status        string               `json:"status"`
	Template      string               `json:"template"`
	Color         string               `json:"color"`
	BankDetails   *bankDetailsDocument `json:"bankDetails,omitempty"`
	Terms         []string             `json:"terms,omitempty"`
	Subtotal      float64              `json:"subtotal"`
	GST           float64              `json:"gst"`
	Discount      float64              `json:"discount"`
	Total         float64              `json:"total"`
	CreatedAt     string               `json:"createdAt"`
	UpdatedAt     string               `json:"updatedAt"`
}

// InvoiceBlobRepository is the invoice store: one JSON array of invoices kept
// under a single key of a blob backend.
//
// Every Upsert/Remove is a full read-modify-write of the collection followed
// by a single Put. The mutex only serializes writers inside this process;
// separate processes sharing the backend can still overwrite each other.

type InvoiceBlobRepository struct {
	collection blobCollection[invoiceDocument]
	now        func() time.Time
	mu         sync.Mutex
}

var _ interfaces.IInvoiceRepository = (*InvoiceBlobRepository)(nil)

func NewInvoiceBlobRepository(blobs interfaces.IBlobStore, storageKey string, now func() time.Time) *InvoiceBlobRepository {
	if storageKey == "" {
		storageKey = DefaultInvoicesStorageKey
	}
	if now == nil {
		now = time.Now
	}
	return &InvoiceBlobRepository{
		collection: blobCollection[invoiceDocument]{blobs: blobs, key: storageKey},
		now:        now,
	}
}

func (r *InvoiceBlobRepository) List(ctx context.Context) []entities.Invoice {
	docs, err := r.collection.load(ctx)
	if err != nil {
		log.Printf("[invoice][store] list failed key=%s err=%v", r.collection.key, err)
		return []entities.Invoice{}
	}

	out := make([]entities.Invoice, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromInvoiceDocument(d))
	}
	return out
}

func (r *InvoiceBlobRepository) GetByID(ctx context.Context, id string) (entities.Invoice, bool) {
	for _, inv := range r.List(ctx) {
		if inv.ID == id {
			return inv, true
		}
	}
	return entities.Invoice{}, false
}

func (r *InvoiceBlobRepository) Upsert(ctx context.Context, inv entities.Invoice) (entities.Invoice, bool) {
	if strings.TrimSpace(inv.ID) == "" {
		log.Printf("[invoice][store] upsert rejected: empty id")
		return entities.Invoice{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	docs, ok := r.loadForWrite(ctx)
	if !ok {
		return entities.Invoice{}, false
	}

	now := r.now().UTC()
	saved := NormalizeInvoice(inv, now)

	idx := indexOfInvoice(docs, saved.ID)
	if idx >= 0 {
		saved.CreatedAt = parseTimestamp(docs[idx].CreatedAt)
		if saved.CreatedAt.IsZero() {
			saved.CreatedAt = now
		}
	} else {
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now
	if saved.UpdatedAt.Before(saved.CreatedAt) {
		saved.UpdatedAt = saved.CreatedAt
	}

	doc := toInvoiceDocument(saved)
	if idx >= 0 {
		docs[idx] = doc
	} else {
		docs = append(docs, doc)
	}

	if err := r.collection.save(ctx, docs); err != nil {
		log.Printf("[invoice][store] upsert write failed id=%s err=%v", saved.ID, err)
		return entities.Invoice{}, false
	}
	log.Printf("[invoice][store] upsert success id=%s created=%t count=%d", saved.ID, idx < 0, len(docs))
	return saved, true
}

// Remove succeeds for ids that are not stored; the collection is rewritten
// unchanged.
func (r *InvoiceBlobRepository) Remove(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, ok := r.loadForWrite(ctx)
	if !ok {
		return false
	}

	kept := make([]invoiceDocument, 0, len(docs))
	for _, d := range docs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}

	if err := r.collection.save(ctx, kept); err != nil {
		log.Printf("[invoice][store] remove write failed id=%s err=%v", id, err)
		return false
	}
	log.Printf("[invoice][store] remove success id=%s removed=%d", id, len(docs)-len(kept))
	return true
}

// NextID derives INV-<year>-<1001+count>. It is not unique when two callers
// allocate ids before either saves, or after deletions.
func (r *InvoiceBlobRepository) NextID(ctx context.Context) string {
	count := len(r.List(ctx))
	return fmt.Sprintf("INV-%d-%04d", r.now().Year(), firstInvoiceSequence+count)
}

// loadForWrite treats a corrupt collection as empty, so the next write
// replaces it. An unavailable backend aborts the write.
func (r *InvoiceBlobRepository) loadForWrite(ctx context.Context) ([]invoiceDocument, bool) {
	docs, err := r.collection.load(ctx)
	if err == nil {
		return docs, true
	}
	if errors.Is(err, errCorruptCollection) {
		log.Printf("[invoice][store] discarding unreadable collection key=%s err=%v", r.collection.key, err)
		return []invoiceDocument{}, true
	}
	log.Printf("[invoice][store] read failed key=%s err=%v", r.collection.key, err)
	return nil, false
}

// NormalizeInvoice applies the write-time defaults and coercions: non-finite
// numbers become 0, status defaults to draft, and template, colour, bank
// details, terms and invoice date are filled in when absent.
func NormalizeInvoice(inv entities.Invoice, now time.Time) entities.Invoice {
	out := inv
	out.ID = strings.TrimSpace(inv.ID)

	out.Items = make([]entities.LineItem, 0, len(inv.Items))
	for _, it := range inv.Items {
		out.Items = append(out.Items, entities.LineItem{
			Description: it.Description,
			Quantity:    totals.Finite(it.Quantity),
			Amount:      totals.Finite(it.Amount),
		})
	}

	out.GSTRate = totals.Finite(inv.GSTRate)
	out.DiscountRate = totals.Finite(inv.DiscountRate)
	out.Subtotal = totals.Finite(inv.Subtotal)
	out.GST = totals.Finite(inv.GST)
	out.Discount = totals.Finite(inv.Discount)
	out.Total = totals.Finite(inv.Total)

	switch {
	case inv.Status == "":
		out.Status = entities.InvoiceStatusDraft
	case !inv.Status.IsValid():
		log.Printf("[invoice][store] unknown status %q id=%s; using draft", inv.Status, out.ID)
		out.Status = entities.InvoiceStatusDraft
	}

	if out.Template == "" {
		out.Template = entities.DefaultTemplate
	}
	if out.Color == "" {
		out.Color = entities.DefaultColor
	}
	tpl := entities.LookupTemplate(out.Template)
	if out.BankDetails == nil {
		bd := tpl.BankDetails
		out.BankDetails = &bd
	} else {
		bd := *inv.BankDetails
		out.BankDetails = &bd
	}
	if len(out.Terms) == 0 {
		out.Terms = tpl.Terms
	} else {
		out.Terms = append([]string(nil), inv.Terms...)
	}

	if out.InvoiceDate == "" {
		out.InvoiceDate = now.UTC().Format(entities.DateLayout)
	}
	return out
}

func indexOfInvoice(docs []invoiceDocument, id string) int {
	for i, d := range docs {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func toInvoiceDocument(inv entities.Invoice) invoiceDocument {
	items := make([]lineItemDocument, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, lineItemDocument{Description: it.Description, Quantity: it.Quantity, Amount: it.Amount})
	}

	var bank *bankDetailsDocument
	if inv.BankDetails != nil {
		bank = &bankDetailsDocument{
			BankName:      inv.BankDetails.BankName,
			AccountName:   inv.BankDetails.AccountName,
			AccountNumber: inv.BankDetails.AccountNumber,
			SwiftCode:     inv.BankDetails.SwiftCode,
		}
	}

	return invoiceDocument{
		ID:            inv.ID,
		ClientName:    inv.ClientName,
		ClientAddress: inv.ClientAddress,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		Items:         items,
		GSTRate:       inv.GSTRate,
		DiscountRate:  inv.DiscountRate,
		Status:        string(inv.Status),
		Template:      inv.Template,
		Color:         inv.Color,
		BankDetails:   bank,
		Terms:         inv.Terms,
		Subtotal:      inv.Subtotal,
		GST:           inv.GST,
		Discount:      inv.Discount,
		Total:         inv.Total,
		CreatedAt:     formatTimestamp(inv.CreatedAt),
		UpdatedAt:     formatTimestamp(inv.UpdatedAt),
	}
}

func fromInvoiceDocument(d invoiceDocument) entities.Invoice {
	items := make([]entities.LineItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, entities.LineItem{Description: it.Description, Quantity: it.Quantity, Amount: it.Amount})
	}

	var bank *entities.BankDetails
	if d.BankDetails != nil {
		bank = &entities.BankDetails{
			BankName:      d.BankDetails.BankName,
			AccountName:   d.BankDetails.AccountName,
			AccountNumber: d.BankDetails.AccountNumber,
			SwiftCode:     d.BankDetails.SwiftCode,
		}
	}

	return entities.Invoice{
		ID:            d.ID,
		ClientName:    d.ClientName,
		ClientAddress: d.ClientAddress,
		InvoiceDate:   d.InvoiceDate,
		DueDate:       d.DueDate,
		Items:         items,
		GSTRate:       d.GSTRate,
		DiscountRate:  d.DiscountRate,
		Status:        entities.InvoiceStatus(d.Status),
		Template:      d.Template,
		Color:         d.Color,
		BankDetails:   bank,
		Terms:         d.Terms,
		Subtotal:      d.Subtotal,
		GST:           d.GST,
		Discount:      d.Discount,
		Total:         d.Total,
		CreatedAt:     parseTimestamp(d.CreatedAt),
		UpdatedAt:     parseTimestamp(d.UpdatedAt),
	}
}
