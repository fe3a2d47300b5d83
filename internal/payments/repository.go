package payments

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"flightly/internal/shared/storage"
	"flightly/internal/users"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrDuplicateID     = errors.New("duplicate payment id")
)

const paymentsFile = "payments.json"

type Repository interface {
	Load(ctx context.Context) error
	Flush(ctx context.Context) error
	FindByID(ctx context.Context, id ID) (*Payment, error)
	List(ctx context.Context) ([]*Payment, error)
	ListByPassenger(ctx context.Context, passengerID users.ID) ([]*Payment, error)
	Create(ctx context.Context, p *Payment) error
	Update(ctx context.Context, p *Payment) error
	Delete(ctx context.Context, id ID) error
}

type repository struct {
	store    *storage.Store
	userRepo users.Repository
	payments map[ID]*Payment
}

func NewRepository(store *storage.Store, userRepo users.Repository) Repository {
	return &repository{
		store:    store,
		userRepo: userRepo,
		payments: make(map[ID]*Payment),
	}
}

func (r *repository) Load(ctx context.Context) error {
	var records []*Payment
	if err := r.store.ReadArray(paymentsFile, &records); err != nil {
		return fmt.Errorf("failed to load payments: %w", err)
	}
	payments := make(map[ID]*Payment, len(records))
	for _, p := range records {
		if _, ok := payments[p.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		if _, err := r.userRepo.FindByID(ctx, p.PassengerID); err != nil {
			return fmt.Errorf("payment %s references unknown passenger %s: %w", p.ID, p.PassengerID, err)
		}
		payments[p.ID] = p
	}
	r.payments = payments
	return nil
}

func (r *repository) Flush(ctx context.Context) error {
	records, err := r.List(ctx)
	if err != nil {
		return err
	}
	if err := r.store.WriteArray(paymentsFile, records); err != nil {
		return fmt.Errorf("failed to flush payments: %w", err)
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id ID) (*Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPaymentNotFound, id)
	}
	return p, nil
}

func (r *repository) List(ctx context.Context) ([]*Payment, error) {
	records := make([]*Payment, 0, len(r.payments))
	for _, p := range r.payments {
		records = append(records, p)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (r *repository) ListByPassenger(ctx context.Context, passengerID users.ID) ([]*Payment, error) {
	var records []*Payment
	for _, p := range r.payments {
		if p.PassengerID == passengerID {
			records = append(records, p)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (r *repository) Create(ctx context.Context, p *Payment) error {
	if _, ok := r.payments[p.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
	}
	r.payments[p.ID] = p
	return nil
}

func (r *repository) Update(ctx context.Context, p *Payment) error {
	if _, ok := r.payments[p.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrPaymentNotFound, p.ID)
	}
	r.payments[p.ID] = p
	return nil
}

func (r *repository) Delete(ctx context.Context, id ID) error {
	if _, ok := r.payments[id]; !ok {
		return fmt.Errorf("%w: %s", ErrPaymentNotFound, id)
	}
	delete(r.payments, id)
	return nil
}
