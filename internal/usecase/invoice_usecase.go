package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"invoicer/internal/domain/entities"
	"invoicer/internal/domain/totals"
	"invoicer/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrInvalidInvoiceID         = errors.New("invalid invoice id")
	ErrInvalidInvoiceStatus     = errors.New("invalid invoice status")
	ErrInvalidLineItem          = errors.New("invalid line item")
	ErrInvoiceSaveFailed        = errors.New("invoice could not be saved")
	ErrInvoiceDeleteFailed      = errors.New("invoice could not be deleted")
	ErrDocumentRendererNotReady = errors.New("document renderer not configured")
)

const (
	StatusFilterAll = "all"

	SortByDate   = "date"
	SortByAmount = "amount"
	SortByClient = "client"

	draftDueDays = 30
)

// ListQuery drives the dashboard listing. An empty Status means all.
type ListQuery struct {
	Status string
	SortBy string
}

// IInvoiceUseCase exposes invoice operations.
//
//   - NewDraft / NextID => navigate-to-create
//   - CalculateTotals   => recompute on every item or rate change
//   - Save / Delete     => explicit save and delete actions
//   - List              => dashboard (filter + sort)

type IInvoiceUseCase interface {
	NewDraft(ctx context.Context) entities.Invoice
	NextID(ctx context.Context) string
	CalculateTotals(items []entities.LineItem, gstRate, discountRate float64) entities.Totals
	Save(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, q ListQuery) ([]entities.Invoice, error)
	Delete(ctx context.Context, id string) error
	RenderDocument(ctx context.Context, id string) ([]byte, string, error)
}

type InvoiceUseCase struct {
	repo     interfaces.IInvoiceRepository
	renderer interfaces.IDocumentRenderer
	strict   bool
	now      func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

// NewInvoiceUseCase wires the invoice store. With strictValidation, Save
// rejects blank descriptions, quantities below 1, negative amounts and
// unknown statuses; otherwise the store's lenient normalization applies.
func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, renderer interfaces.IDocumentRenderer, strictValidation bool) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, renderer: renderer, strict: strictValidation, now: time.Now}
}

func (u *InvoiceUseCase) NewDraft(ctx context.Context) entities.Invoice {
	now := u.now().UTC()
	tpl := entities.LookupTemplate(entities.DefaultTemplate)
	bank := tpl.BankDetails

	return entities.Invoice{
		ID:          u.repo.NextID(ctx),
		InvoiceDate: now.Format(entities.DateLayout),
		DueDate:     now.AddDate(0, 0, draftDueDays).Format(entities.DateLayout),
		Items:       []entities.LineItem{{Description: "", Quantity: 1, Amount: 0}},
		Status:      entities.InvoiceStatusDraft,
		Template:    entities.DefaultTemplate,
		Color:       entities.DefaultColor,
		BankDetails: &bank,
		Terms:       tpl.Terms,
	}
}

func (u *InvoiceUseCase) NextID(ctx context.Context) string {
	return u.repo.NextID(ctx)
}

func (u *InvoiceUseCase) CalculateTotals(items []entities.LineItem, gstRate, discountRate float64) entities.Totals {
	return totals.Calculate(items, gstRate, discountRate)
}

// Save recomputes the cached totals from items and rates before upserting,
// so the stored record always satisfies total == subtotal + gst - discount.
func (u *InvoiceUseCase) Save(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	inv.ID = strings.TrimSpace(inv.ID)
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if u.strict {
		if err := validateInvoice(inv); err != nil {
			log.Printf("[invoice][usecase] validation failed id=%s err=%v", inv.ID, err)
			return entities.Invoice{}, err
		}
	}

	inv.ApplyTotals(totals.Calculate(inv.Items, inv.GSTRate, inv.DiscountRate))

	saved, ok := u.repo.Upsert(ctx, inv)
	if !ok {
		log.Printf("[invoice][usecase] save failed id=%s", inv.ID)
		return entities.Invoice{}, ErrInvoiceSaveFailed
	}
	log.Printf("[invoice][usecase] saved id=%s status=%s total=%s", saved.ID, saved.Status, totals.FormatUSD(saved.Total))
	return saved, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, found := u.repo.GetByID(ctx, id)
	if !found {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// List filters by status and sorts: date (newest invoice date first), amount
// (highest total first) or client (A-Z). Unknown sort keys keep storage order.
func (u *InvoiceUseCase) List(ctx context.Context, q ListQuery) ([]entities.Invoice, error) {
	status := strings.ToLower(strings.TrimSpace(q.Status))
	if status != "" && status != StatusFilterAll && !entities.InvoiceStatus(status).IsValid() {
		return nil, ErrInvalidInvoiceStatus
	}

	all := u.repo.List(ctx)
	out := make([]entities.Invoice, 0, len(all))
	for _, inv := range all {
		if status == "" || status == StatusFilterAll || string(inv.Status) == status {
			out = append(out, inv)
		}
	}

	switch strings.ToLower(strings.TrimSpace(q.SortBy)) {
	case SortByDate:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].InvoiceDate != out[j].InvoiceDate {
				return out[i].InvoiceDate > out[j].InvoiceDate
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortByAmount:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	case SortByClient:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].ClientName) < strings.ToLower(out[j].ClientName)
		})
	}
	return out, nil
}

// Delete succeeds for unknown ids.
func (u *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInvoiceID
	}
	if !u.repo.Remove(ctx, id) {
		log.Printf("[invoice][usecase] delete failed id=%s", id)
		return ErrInvoiceDeleteFailed
	}
	return nil
}

func (u *InvoiceUseCase) RenderDocument(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if u.renderer == nil {
		return nil, "", ErrDocumentRendererNotReady
	}

	doc, err := u.renderer.Render(inv)
	if err != nil {
		log.Printf("[invoice][usecase] render failed id=%s err=%v", inv.ID, err)
		return nil, "", err
	}
	return doc, u.renderer.ContentType(), nil
}

func validateInvoice(inv entities.Invoice) error {
	if inv.Status != "" && !inv.Status.IsValid() {
		return ErrInvalidInvoiceStatus
	}
	for i, it := range inv.Items {
		switch {
		case strings.TrimSpace(it.Description) == "":
			return fmt.Errorf("%w: item %d description is required", ErrInvalidLineItem, i+1)
		case it.Quantity < 1:
			return fmt.Errorf("%w: item %d quantity must be at least 1", ErrInvalidLineItem, i+1)
		case it.Amount < 0:
			return fmt.Errorf("%w: item %d amount must not be negative", ErrInvalidLineItem, i+1)
		}
	}
	return nil
}
