package aircraft

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"flightly/internal/shared/storage"
)

var (
	ErrAircraftNotFound = errors.New("aircraft not found")
	ErrDuplicateID      = errors.New("aircraft id already exists")
)

const aircraftFile = "aircrafts.json"

// Repository is the in-memory aircraft collection backed by aircrafts.json.
type Repository interface {
	Load(ctx context.Context) error
	Flush(ctx context.Context) error

	FindByID(ctx context.Context, id ID) (*Aircraft, error)
	List(ctx context.Context) []*Aircraft
	Create(ctx context.Context, a *Aircraft) error
	Update(ctx context.Context, a *Aircraft) error
	Delete(ctx context.Context, id ID) error
}

type repository struct {
	store    *storage.Store
	aircraft map[ID]*Aircraft
}

// NewRepository creates an aircraft repository over the given store.
func NewRepository(store *storage.Store) Repository {
	return &repository{
		store:    store,
		aircraft: make(map[ID]*Aircraft),
	}
}

func (r *repository) Load(ctx context.Context) error {
	var records []*Aircraft
	if err := r.store.ReadArray(aircraftFile, &records); err != nil {
		return err
	}
	for _, a := range records {
		if _, ok := r.aircraft[a.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, a.ID)
		}
		r.aircraft[a.ID] = a
	}
	return nil
}

func (r *repository) Flush(ctx context.Context) error {
	return r.store.WriteArray(aircraftFile, r.List(ctx))
}

func (r *repository) FindByID(ctx context.Context, id ID) (*Aircraft, error) {
	a, ok := r.aircraft[id]
	if !ok {
		return nil, ErrAircraftNotFound
	}
	return a, nil
}

func (r *repository) List(ctx context.Context) []*Aircraft {
	records := make([]*Aircraft, 0, len(r.aircraft))
	for _, a := range r.aircraft {
		records = append(records, a)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

func (r *repository) Create(ctx context.Context, a *Aircraft) error {
	if _, ok := r.aircraft[a.ID]; ok {
		return ErrDuplicateID
	}
	r.aircraft[a.ID] = a
	return nil
}

func (r *repository) Update(ctx context.Context, a *Aircraft) error {
	if _, ok := r.aircraft[a.ID]; !ok {
		return ErrAircraftNotFound
	}
	r.aircraft[a.ID] = a
	return nil
}

func (r *repository) Delete(ctx context.Context, id ID) error {
	if _, ok := r.aircraft[id]; !ok {
		return ErrAircraftNotFound
	}
	delete(r.aircraft, id)
	return nil
}
