package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billforge/internal/domain"
	"billforge/internal/service"
	"billforge/mocks"
)

func newInvoice() *domain.Invoice {
	return &domain.Invoice{
		InvoiceDate:  domain.NewDate(2025, time.March, 14),
		DueDate:      domain.NewDate(2025, time.April, 13),
		BillTo:       domain.PartyAddress{Name: "Acme Traders", GSTIN: "29ABCDE1234F1Z5"},
		ShipTo:       domain.PartyAddress{Name: "Acme Warehouse"},
		Items:        domain.LineItems{{Description: "Widget", Quantity: 1, Total: 590}},
		AmountDue:    590,
		ValueInWords: "Five Hundred Ninety Only",
	}
}

func todayPrefix() string {
	return "INV-" + time.Now().Format("060102")
}

func TestInvoiceCreate_AllocatesNumber(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("LastNumberWithPrefix", mock.Anything, todayPrefix()).Return("", nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := service.NewInvoiceService(repo, nil, nil, nil)
	created, err := svc.Create(context.Background(), newInvoice())

	require.NoError(t, err)
	assert.Equal(t, todayPrefix()+"-001", created.InvoiceNo)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, domain.DefaultCurrency, created.Currency)
	assert.Equal(t, domain.PaymentBankTransfer, created.PaymentMode)
	repo.AssertExpectations(t)
}

func TestInvoiceCreate_SecondOfDayIncrements(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("LastNumberWithPrefix", mock.Anything, todayPrefix()).Return(todayPrefix()+"-001", nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := service.NewInvoiceService(repo, nil, nil, nil)
	created, err := svc.Create(context.Background(), newInvoice())

	require.NoError(t, err)
	assert.Equal(t, todayPrefix()+"-002", created.InvoiceNo)
}

func TestInvoiceCreate_KeepsCallerSuppliedNumber(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	inv := newInvoice()
	inv.InvoiceNo = "INV-CUSTOM-042"

	svc := service.NewInvoiceService(repo, nil, nil, nil)
	created, err := svc.Create(context.Background(), inv)

	require.NoError(t, err)
	assert.Equal(t, "INV-CUSTOM-042", created.InvoiceNo)
	repo.AssertNotCalled(t, "LastNumberWithPrefix", mock.Anything, mock.Anything)
}

func TestInvoiceCreate_RetriesOnceOnCollision(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("LastNumberWithPrefix", mock.Anything, todayPrefix()).Return("", nil).Once()
	repo.On("LastNumberWithPrefix", mock.Anything, todayPrefix()).Return(todayPrefix()+"-001", nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: taken", domain.ErrDuplicateNumber)).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := service.NewInvoiceService(repo, nil, nil, nil)
	created, err := svc.Create(context.Background(), newInvoice())

	require.NoError(t, err)
	assert.Equal(t, todayPrefix()+"-002", created.InvoiceNo)
	repo.AssertExpectations(t)
}

func TestInvoiceCreate_GivesUpAfterSecondCollision(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("LastNumberWithPrefix", mock.Anything, mock.Anything).Return("", nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: taken", domain.ErrDuplicateNumber))

	svc := service.NewInvoiceService(repo, nil, nil, nil)
	_, err := svc.Create(context.Background(), newInvoice())

	assert.ErrorIs(t, err, domain.ErrDuplicateNumber)
	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestInvoiceCreate_SuppliedNumberCollisionNotRetried(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: taken", domain.ErrDuplicateNumber))

	inv := newInvoice()
	inv.InvoiceNo = "INV-CUSTOM-042"

	svc := service.NewInvoiceService(repo, nil, nil, nil)
	_, err := svc.Create(context.Background(), inv)

	assert.ErrorIs(t, err, domain.ErrDuplicateNumber)
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestInvoiceUpdate_PreservesNumberAndCreatedAt(t *testing.T) {
	id := uuid.New()
	createdAt := time.Now().Add(-24 * time.Hour)
	existing := newInvoice()
	existing.ID = id
	existing.InvoiceNo = "INV-250313-005"
	existing.CreatedAt = createdAt

	repo := new(mocks.MockInvoiceRepo)
	repo.On("GetByID", mock.Anything, id).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	incoming := newInvoice()
	incoming.InvoiceNo = "INV-HIJACKED-001"
	incoming.AmountDue = 1180

	svc := service.NewInvoiceService(repo, nil, nil, nil)
	updated, err := svc.Update(context.Background(), id, incoming)

	require.NoError(t, err)
	assert.Equal(t, "INV-250313-005", updated.InvoiceNo)
	assert.Equal(t, id, updated.ID)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.Equal(t, float64(1180), updated.AmountDue)
}

func TestInvoiceUpdate_NotFound(t *testing.T) {
	id := uuid.New()
	repo := new(mocks.MockInvoiceRepo)
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrInvoiceNotFound)

	svc := service.NewInvoiceService(repo, nil, nil, nil)
	_, err := svc.Update(context.Background(), id, newInvoice())

	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestInvoiceDeleteMany_NothingMatched(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("DeleteByIDs", mock.Anything, mock.Anything).Return(int64(0), nil)

	svc := service.NewInvoiceService(repo, nil, nil, nil)
	_, err := svc.DeleteMany(context.Background(), []uuid.UUID{uuid.New()})

	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestInvoiceDeleteMany_ReportsCount(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("DeleteByIDs", mock.Anything, mock.Anything).Return(int64(3), nil)

	svc := service.NewInvoiceService(repo, nil, nil, nil)
	deleted, err := svc.DeleteMany(context.Background(), []uuid.UUID{uuid.New(), uuid.New(), uuid.New()})

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestInvoiceList_PropagatesRepoError(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	repo.On("List", mock.Anything, "acme", 10, 10).Return(nil, 0, errors.New("db down"))

	svc := service.NewInvoiceService(repo, nil, nil, nil)
	_, _, err := svc.List(context.Background(), "acme", 2, 10)

	assert.Error(t, err)
	repo.AssertExpectations(t)
}
