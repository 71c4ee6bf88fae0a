package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"invoicer/internal/domain/entities"
	mock_interfaces "invoicer/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingInvoice() entities.Invoice {
	return entities.Invoice{
		ID:     "INV-2026-1001",
		Status: entities.InvoiceStatusPending,
		Items:  []entities.LineItem{{Description: "Design", Quantity: 1, Amount: 100}},
		Total:  105.004,
	}
}

func TestInvoicePaymentUseCase_PayInvoice_Validation(t *testing.T) {
	t.Run("invalid invoice id", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil)
		_, err := uc.PayInvoice(context.Background(), "  ", nil)
		if !errors.Is(err, ErrInvalidPaymentInvoiceID) {
			t.Fatalf("expected ErrInvalidPaymentInvoiceID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil)
		_, err := uc.PayInvoice(context.Background(), "INV-2026-1001", json.RawMessage("{nope"))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil)
		_, err := uc.PayInvoice(context.Background(), "INV-2026-1001", nil)
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestInvoicePaymentUseCase_PayInvoice_InvoiceState(t *testing.T) {
	paid := pendingInvoice()
	paid.Status = entities.InvoiceStatusPaid
	draft := pendingInvoice()
	draft.Status = entities.InvoiceStatusDraft
	empty := pendingInvoice()
	empty.Total = 0

	cases := []struct {
		name  string
		inv   entities.Invoice
		found bool
		want  error
	}{
		{name: "not found", found: false, want: ErrInvoiceNotFound},
		{name: "already paid", inv: paid, found: true, want: ErrInvoiceAlreadyPaid},
		{name: "draft", inv: draft, found: true, want: ErrInvoiceNotPayable},
		{name: "nothing due", inv: empty, found: true, want: ErrInvoiceNotPayable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
			invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewInvoicePaymentUseCase(repo, invoices, gateway)

			invoices.EXPECT().GetByID(gomock.Any(), "INV-2026-1001").Return(tc.inv, tc.found)

			_, err := uc.PayInvoice(context.Background(), "INV-2026-1001", nil)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestInvoicePaymentUseCase_PayInvoice_Approved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
	invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewInvoicePaymentUseCase(repo, invoices, gateway)
	uc.now = fixedNow

	invoices.EXPECT().GetByID(gomock.Any(), "INV-2026-1001").Return(pendingInvoice(), true)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var m map[string]any
			if err := json.Unmarshal(payload, &m); err != nil {
				t.Fatalf("payload must be an object: %v", err)
			}
			if m["transaction_amount"] != 105.0 {
				t.Fatalf("expected rounded invoice total, got %v", m["transaction_amount"])
			}
			if m["external_reference"] != "INV-2026-1001" || m["description"] != "Invoice INV-2026-1001" {
				t.Fatalf("expected invoice reference in payload: %v", m)
			}
			if m["payment_method_id"] != "pix" {
				t.Fatalf("caller fields must be kept: %v", m)
			}
			return "123", "approved", json.RawMessage(`{"id":123,"status":"approved"}`), nil
		},
	)
	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.InvoicePayment{})).DoAndReturn(
		func(_ context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
			if p.ID != "123" || p.Amount != 105 || p.Status != entities.PaymentStatusApproved {
				t.Fatalf("unexpected payment %+v", p)
			}
			if !p.Date.Equal(fixedNow()) {
				t.Fatalf("unexpected payment date %v", p.Date)
			}
			if p.ProviderPayload["status"] != "approved" {
				t.Fatalf("expected parsed provider payload, got %v", p.ProviderPayload)
			}
			return p, nil
		},
	)
	invoices.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
		func(_ context.Context, inv entities.Invoice) (entities.Invoice, bool) {
			if inv.Status != entities.InvoiceStatusPaid {
				t.Fatalf("expected invoice marked paid, got %s", inv.Status)
			}
			return inv, true
		},
	)

	p, err := uc.PayInvoice(context.Background(), " INV-2026-1001 ", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.InvoiceID != "INV-2026-1001" {
		t.Fatalf("unexpected invoice id %q", p.InvoiceID)
	}
}

func TestInvoicePaymentUseCase_PayInvoice_PendingProviderStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
	invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewInvoicePaymentUseCase(repo, invoices, gateway)

	invoices.EXPECT().GetByID(gomock.Any(), "INV-2026-1001").Return(pendingInvoice(), true)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "in_process", json.RawMessage(`not-json`), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) { return p, nil },
	)

	p, err := uc.PayInvoice(context.Background(), "INV-2026-1001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != entities.PaymentStatusPending {
		t.Fatalf("expected pending, got %s", p.Status)
	}
	if p.ID == "" {
		t.Fatalf("expected generated payment id")
	}
	if p.ProviderPayload != nil {
		t.Fatalf("expected no parsed payload, got %v", p.ProviderPayload)
	}
}

func TestInvoicePaymentUseCase_PayInvoice_GatewayErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "bad request", err: errors.New(`{"error":"bad_request","status":400}`), want: ErrPaymentGatewayBadRequest},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized","status":401}`), want: ErrPaymentGatewayUnauthorized},
		{name: "customer not found", err: errors.New(`{"message":"Customer not found","code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
			invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewInvoicePaymentUseCase(repo, invoices, gateway)

			invoices.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(pendingInvoice(), true)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.PayInvoice(context.Background(), "INV-2026-1001", nil)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unclassified error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, invoices, gateway)

		boom := errors.New("timeout")
		invoices.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(pendingInvoice(), true)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, boom)

		_, err := uc.PayInvoice(context.Background(), "INV-2026-1001", nil)
		if !errors.Is(err, boom) {
			t.Fatalf("expected timeout error, got %v", err)
		}
	})
}

func TestInvoicePaymentUseCase_PayInvoice_PersistenceErrors(t *testing.T) {
	t.Run("payment repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, invoices, gateway)

		invoices.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(pendingInvoice(), true)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("1", "approved", json.RawMessage(`{}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InvoicePayment{}, errors.New("db"))

		_, err := uc.PayInvoice(context.Background(), "INV-2026-1001", nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("invoice status update fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, invoices, gateway)

		invoices.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(pendingInvoice(), true)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("1", "approved", json.RawMessage(`{}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) { return p, nil },
		)
		invoices.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, false)

		p, err := uc.PayInvoice(context.Background(), "INV-2026-1001", nil)
		if !errors.Is(err, ErrInvoiceSaveFailed) {
			t.Fatalf("expected ErrInvoiceSaveFailed, got %v", err)
		}
		if p.ID != "1" {
			t.Fatalf("expected recorded payment to be returned, got %+v", p)
		}
	})
}

func TestInvoicePaymentUseCase_ListByInvoiceID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil)
		_, err := uc.ListByInvoiceID(context.Background(), "")
		if !errors.Is(err, ErrInvalidPaymentInvoiceID) {
			t.Fatalf("expected ErrInvalidPaymentInvoiceID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		uc := NewInvoicePaymentUseCase(repo, nil, nil)
		repo.EXPECT().ListByInvoiceID(gomock.Any(), "INV-2026-1001").Return([]entities.InvoicePayment{{ID: "1"}}, nil)

		res, err := uc.ListByInvoiceID(context.Background(), "INV-2026-1001")
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}
