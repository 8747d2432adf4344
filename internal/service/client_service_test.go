package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billforge/internal/domain"
	"billforge/internal/service"
	"billforge/mocks"
)

func validClient() *domain.Client {
	return &domain.Client{
		Name:      "Acme Traders",
		Address:   "12 MG Road, Bengaluru",
		StateCode: "29",
		GSTIN:     "29ABCDE1234F1Z5",
	}
}

func TestClientCreate_Valid(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := service.NewClientService(repo)
	created, err := svc.Create(context.Background(), validClient())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	repo.AssertExpectations(t)
}

func TestClientCreate_InvalidGSTIN(t *testing.T) {
	cases := []struct {
		name  string
		gstin string
	}{
		{"too short", "29ABCDE1234F1Z"},
		{"lowercase", "29abcde1234f1z5"},
		{"missing Z", "29ABCDE1234F1A5"},
		{"zero entity code", "29ABCDE1234F0Z5"},
		{"empty", ""},
	}

	repo := new(mocks.MockClientRepo)
	svc := service.NewClientService(repo)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validClient()
			c.GSTIN = tc.gstin
			_, err := svc.Create(context.Background(), c)
			assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClientUpdate_ValidatesGSTIN(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewClientService(repo)

	c := validClient()
	c.GSTIN = "not-a-gstin"
	_, err := svc.Update(context.Background(), uuid.New(), c)

	assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestClientUpdate_PreservesIdentity(t *testing.T) {
	id := uuid.New()
	existing := validClient()
	existing.ID = id

	repo := new(mocks.MockClientRepo)
	repo.On("GetByID", mock.Anything, id).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	incoming := validClient()
	incoming.Name = "Acme Traders Pvt Ltd"

	svc := service.NewClientService(repo)
	updated, err := svc.Update(context.Background(), id, incoming)

	require.NoError(t, err)
	assert.Equal(t, id, updated.ID)
	assert.Equal(t, "Acme Traders Pvt Ltd", updated.Name)
}

func TestClientDelete_PropagatesNotFound(t *testing.T) {
	id := uuid.New()
	repo := new(mocks.MockClientRepo)
	repo.On("Delete", mock.Anything, id).Return(domain.ErrClientNotFound)

	svc := service.NewClientService(repo)
	assert.ErrorIs(t, svc.Delete(context.Background(), id), domain.ErrClientNotFound)
}
