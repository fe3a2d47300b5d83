package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"flightly/internal/shared/identifier"
	"flightly/pkg/logger"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// CreateParams carries the fields needed to open a new account.
type CreateParams struct {
	Username      string  `validate:"required,min=3,max=64"`
	Password      string  `validate:"required,min=6"`
	Role          Role    `validate:"required"`
	LoyaltyPoints float64 `validate:"gte=0,lte=100"`
}

// Service implements account management and authentication.
type Service interface {
	Authenticate(ctx context.Context, username, password string) (*User, error)
	Create(ctx context.Context, params CreateParams) (*User, error)
	GetByID(ctx context.Context, id ID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetRole(ctx context.Context, id ID) (Role, error)
	List(ctx context.Context) []*User
	ListByRole(ctx context.Context, role Role) []*User
	UpdatePassword(ctx context.Context, id ID, newPassword string) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id ID) error
}

type service struct {
	repo       Repository
	validate   *validator.Validate
	bcryptCost int
	log        *logger.Logger
}

// NewService creates a user service instance.
func NewService(repo Repository, bcryptCost int, log *logger.Logger) Service {
	return &service{
		repo:       repo,
		validate:   validator.New(),
		bcryptCost: bcryptCost,
		log:        log,
	}
}

// Authenticate verifies a username/password pair against the stored bcrypt
// hash and returns the matching account.
func (s *service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		s.log.LogAuthFailure(username, "unknown username")
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.log.LogAuthFailure(username, "wrong password")
		return nil, ErrInvalidCredentials
	}
	s.log.LogAuthSuccess(string(user.ID), string(user.Role))
	return user, nil
}

// Create validates params, hashes the password, and stores the account
// under a fresh role-prefixed ID.
func (s *service) Create(ctx context.Context, params CreateParams) (*User, error) {
	if err := s.validate.Struct(&params); err != nil {
		return nil, fmt.Errorf("invalid user parameters: %w", err)
	}
	if !params.Role.Valid() {
		return nil, fmt.Errorf("invalid user role %q", params.Role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:       ID(identifier.New(params.Role.IDPrefix())),
		Username: params.Username,
		Password: string(hashed),
		Role:     params.Role,
	}
	if params.Role == RolePassenger {
		user.LoyaltyPoints = params.LoyaltyPoints
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) GetByID(ctx context.Context, id ID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// GetRole resolves the role of an account; unknown accounts yield an error.
func (s *service) GetRole(ctx context.Context, id ID) (Role, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (s *service) List(ctx context.Context) []*User {
	return s.repo.List(ctx)
}

func (s *service) ListByRole(ctx context.Context, role Role) []*User {
	return s.repo.ListByRole(ctx, role)
}

// UpdatePassword rehashes and stores a new password for the account.
func (s *service) UpdatePassword(ctx context.Context, id ID, newPassword string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if len(newPassword) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hashed)
	return s.repo.Update(ctx, user)
}

func (s *service) Update(ctx context.Context, user *User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, user)
}

func (s *service) Delete(ctx context.Context, id ID) error {
	return s.repo.Delete(ctx, id)
}
