package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"billforge/internal/domain"
	"billforge/internal/port"
)

// gstinPattern validates the 15-character GSTIN registration format.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)

// ClientService defines the counterparty-directory use cases.
type ClientService interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, search string) ([]domain.Client, error)
	Update(ctx context.Context, id uuid.UUID, c *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	repo port.ClientRepository
}

// NewClientService creates a ClientService implementation.
func NewClientService(repo port.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	if !gstinPattern.MatchString(c.GSTIN) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidGSTIN, c.GSTIN)
	}

	c.ID = uuid.New()
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *clientService) List(ctx context.Context, search string) ([]domain.Client, error) {
	return s.repo.List(ctx, search)
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, c *domain.Client) (*domain.Client, error) {
	if !gstinPattern.MatchString(c.GSTIN) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidGSTIN, c.GSTIN)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
