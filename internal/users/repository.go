package users

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"flightly/internal/shared/storage"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateID   = errors.New("user id already exists")
	ErrUsernameTaken = errors.New("username already taken")
)

const usersFile = "users.json"

// Repository is the in-memory user collection backed by users.json.
type Repository interface {
	Load(ctx context.Context) error
	Flush(ctx context.Context) error

	FindByID(ctx context.Context, id ID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) []*User
	ListByRole(ctx context.Context, role Role) []*User
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id ID) error
}

type repository struct {
	store  *storage.Store
	users  map[ID]*User
	byName map[string]ID
}

// NewRepository creates a user repository over the given store.
func NewRepository(store *storage.Store) Repository {
	return &repository{
		store:  store,
		users:  make(map[ID]*User),
		byName: make(map[string]ID),
	}
}

// Load reads users.json into memory, rebuilding the username index.
func (r *repository) Load(ctx context.Context) error {
	var records []*User
	if err := r.store.ReadArray(usersFile, &records); err != nil {
		return err
	}
	for _, user := range records {
		if _, ok := r.users[user.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, user.ID)
		}
		if _, ok := r.byName[user.Username]; ok {
			return fmt.Errorf("%w: %s", ErrUsernameTaken, user.Username)
		}
		r.users[user.ID] = user
		r.byName[user.Username] = user.ID
	}
	return nil
}

// Flush writes the in-memory state back to users.json.
func (r *repository) Flush(ctx context.Context) error {
	records := r.List(ctx)
	return r.store.WriteArray(usersFile, records)
}

func (r *repository) FindByID(ctx context.Context, id ID) (*User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	id, ok := r.byName[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *repository) List(ctx context.Context) []*User {
	records := make([]*User, 0, len(r.users))
	for _, user := range r.users {
		records = append(records, user)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

func (r *repository) ListByRole(ctx context.Context, role Role) []*User {
	var filtered []*User
	for _, user := range r.List(ctx) {
		if user.Role == role {
			filtered = append(filtered, user)
		}
	}
	return filtered
}

func (r *repository) Create(ctx context.Context, user *User) error {
	if _, ok := r.users[user.ID]; ok {
		return ErrDuplicateID
	}
	if _, ok := r.byName[user.Username]; ok {
		return ErrUsernameTaken
	}
	r.users[user.ID] = user
	r.byName[user.Username] = user.ID
	return nil
}

func (r *repository) Update(ctx context.Context, user *User) error {
	existing, ok := r.users[user.ID]
	if !ok {
		return ErrUserNotFound
	}
	if existing.Username != user.Username {
		if takenBy, ok := r.byName[user.Username]; ok && takenBy != user.ID {
			return ErrUsernameTaken
		}
		delete(r.byName, existing.Username)
		r.byName[user.Username] = user.ID
	}
	r.users[user.ID] = user
	return nil
}

func (r *repository) Delete(ctx context.Context, id ID) error {
	existing, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}
	delete(r.byName, existing.Username)
	delete(r.users, id)
	return nil
}
