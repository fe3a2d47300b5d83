package crew

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"flightly/internal/shared/storage"
)

var (
	ErrCrewMemberNotFound = errors.New("crew member not found")
	ErrDuplicateID        = errors.New("crew member id already exists")
)

const crewFile = "crew_members.json"

// Repository is the in-memory crew collection backed by crew_members.json.
type Repository interface {
	Load(ctx context.Context) error
	Flush(ctx context.Context) error

	FindByID(ctx context.Context, id ID) (*Member, error)
	List(ctx context.Context) []*Member
	ListByRole(ctx context.Context, role Role) []*Member
	Create(ctx context.Context, m *Member) error
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, id ID) error
}

type repository struct {
	store   *storage.Store
	members map[ID]*Member
}

// NewRepository creates a crew repository over the given store.
func NewRepository(store *storage.Store) Repository {
	return &repository{
		store:   store,
		members: make(map[ID]*Member),
	}
}

func (r *repository) Load(ctx context.Context) error {
	var records []*Member
	if err := r.store.ReadArray(crewFile, &records); err != nil {
		return err
	}
	for _, m := range records {
		if _, ok := r.members[m.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, m.ID)
		}
		r.members[m.ID] = m
	}
	return nil
}

func (r *repository) Flush(ctx context.Context) error {
	return r.store.WriteArray(crewFile, r.List(ctx))
}

func (r *repository) FindByID(ctx context.Context, id ID) (*Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, ErrCrewMemberNotFound
	}
	return m, nil
}

func (r *repository) List(ctx context.Context) []*Member {
	records := make([]*Member, 0, len(r.members))
	for _, m := range r.members {
		records = append(records, m)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

func (r *repository) ListByRole(ctx context.Context, role Role) []*Member {
	var filtered []*Member
	for _, m := range r.List(ctx) {
		if m.Role == role {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

func (r *repository) Create(ctx context.Context, m *Member) error {
	if _, ok := r.members[m.ID]; ok {
		return ErrDuplicateID
	}
	r.members[m.ID] = m
	return nil
}

func (r *repository) Update(ctx context.Context, m *Member) error {
	if _, ok := r.members[m.ID]; !ok {
		return ErrCrewMemberNotFound
	}
	r.members[m.ID] = m
	return nil
}

func (r *repository) Delete(ctx context.Context, id ID) error {
	if _, ok := r.members[id]; !ok {
		return ErrCrewMemberNotFound
	}
	delete(r.members, id)
	return nil
}
