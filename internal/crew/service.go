package crew

import "context"

// Service implements crew member management.
type Service interface {
	GetByID(ctx context.Context, id ID) (*Member, error)
	List(ctx context.Context) []*Member
	ListByRole(ctx context.Context, role Role) []*Member
	Create(ctx context.Context, name string, role Role) (*Member, error)
	Update(ctx context.Context, id ID, name string, role Role) error
	Delete(ctx context.Context, id ID) error
}

type service struct {
	repo Repository
}

// NewService creates a crew service instance.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id ID) (*Member, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) []*Member {
	return s.repo.List(ctx)
}

func (s *service) ListByRole(ctx context.Context, role Role) []*Member {
	return s.repo.ListByRole(ctx, role)
}

func (s *service) Create(ctx context.Context, name string, role Role) (*Member, error) {
	m, err := New(name, role)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Update(ctx context.Context, id ID, name string, role Role) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	updated := &Member{ID: m.ID, Name: name, Role: role}
	if err := updated.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, updated)
}

func (s *service) Delete(ctx context.Context, id ID) error {
	return s.repo.Delete(ctx, id)
}
