package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"invoicer/internal/adapter/persistence/blob"
	"invoicer/internal/domain/entities"
	mock_interfaces "invoicer/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInvoicePaymentBlobRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoicePaymentBlobRepository(blob.NewMemoryBlobStore(), "")
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	p1 := entities.InvoicePayment{
		ID:                 "pay-1",
		InvoiceID:          "INV-2026-1001",
		Amount:             105,
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: json.RawMessage(`{"id":"pay-1"}`),
		ProviderPayload:    map[string]interface{}{"id": "pay-1"},
	}
	_, err := repo.Create(ctx, p1)
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.InvoicePayment{ID: "pay-2", InvoiceID: "INV-2026-1002", Date: now})
	require.NoError(t, err)

	_, err = repo.Create(ctx, p1)
	assert.ErrorIs(t, err, ErrPaymentAlreadyExists)

	got, err := repo.ListByInvoiceID(ctx, "INV-2026-1001")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "pay-1", got[0].ID)
	assert.Equal(t, 105.0, got[0].Amount)
	assert.True(t, got[0].Date.Equal(now))
	assert.Equal(t, entities.PaymentStatusApproved, got[0].Status)
	assert.JSONEq(t, `{"id":"pay-1"}`, string(got[0].ProviderPayloadRaw))
	assert.Equal(t, "pay-1", got[0].ProviderPayload["id"])

	none, err := repo.ListByInvoiceID(ctx, "INV-2026-7777")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInvoicePaymentBlobRepository_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupt collection", func(t *testing.T) {
		blobs := blob.NewMemoryBlobStore()
		blobs.Seed(DefaultPaymentsStorageKey, []byte(`[`))
		repo := NewInvoicePaymentBlobRepository(blobs, "")

		_, err := repo.ListByInvoiceID(ctx, "INV-2026-1001")
		assert.ErrorIs(t, err, errCorruptCollection)
	})

	t.Run("write error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		blobs := mock_interfaces.NewMockIBlobStore(ctrl)
		repo := NewInvoicePaymentBlobRepository(blobs, "payments")

		blobs.EXPECT().Get(gomock.Any(), "payments").Return(nil, false, nil)
		blobs.EXPECT().Put(gomock.Any(), "payments", gomock.Any()).Return(errors.New("db"))

		_, err := repo.Create(ctx, entities.InvoicePayment{ID: "pay-1"})
		assert.EqualError(t, err, "db")
	})
}
