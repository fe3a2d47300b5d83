package aircraft

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CreateParams carries the fields needed to register an aircraft.
type CreateParams struct {
	Model       string `validate:"required"`
	Capacity    int    `validate:"required,gt=0"`
	SeatsPerRow int    `validate:"required,gt=0,lte=26"`
}

// Service implements aircraft management.
type Service interface {
	GetByID(ctx context.Context, id ID) (*Aircraft, error)
	List(ctx context.Context) []*Aircraft
	Create(ctx context.Context, params CreateParams) (*Aircraft, error)
	Update(ctx context.Context, id ID, params CreateParams) error
	Delete(ctx context.Context, id ID) error
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService creates an aircraft service instance.
func NewService(repo Repository) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *service) GetByID(ctx context.Context, id ID) (*Aircraft, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) []*Aircraft {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Aircraft, error) {
	if err := s.validate.Struct(&params); err != nil {
		return nil, fmt.Errorf("invalid aircraft parameters: %w", err)
	}
	a, err := New(params.Model, params.Capacity, params.SeatsPerRow)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces the layout of an existing aircraft, re-validating the
// capacity/row invariants.
func (s *service) Update(ctx context.Context, id ID, params CreateParams) error {
	if err := s.validate.Struct(&params); err != nil {
		return fmt.Errorf("invalid aircraft parameters: %w", err)
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	updated := &Aircraft{
		ID:          a.ID,
		Model:       params.Model,
		Capacity:    params.Capacity,
		SeatsPerRow: params.SeatsPerRow,
	}
	if err := updated.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, updated)
}

func (s *service) Delete(ctx context.Context, id ID) error {
	return s.repo.Delete(ctx, id)
}
