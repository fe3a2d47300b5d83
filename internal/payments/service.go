package payments

import (
	"context"
	"fmt"

	"flightly/internal/datetime"
	"flightly/internal/users"
	"flightly/pkg/logger"
)

type Service interface {
	GetByID(ctx context.Context, id ID) (*Payment, error)
	List(ctx context.Context) ([]*Payment, error)
	ListByPassenger(ctx context.Context, passengerID users.ID) ([]*Payment, error)
	// Create records a pending payment for a passenger after validating
	// the method-specific details.
	Create(ctx context.Context, passengerID users.ID, amount float64, method Method, details Details) (*Payment, error)
	// Process settles a pending payment and returns the confirmation message.
	Process(ctx context.Context, id ID) (string, error)
	// Refund reverses a completed payment and returns the confirmation message.
	Refund(ctx context.Context, id ID) (string, error)
}

type service struct {
	repo     Repository
	userRepo users.Repository
	log      *logger.Logger
}

func NewService(repo Repository, userRepo users.Repository, log *logger.Logger) Service {
	return &service{repo: repo, userRepo: userRepo, log: log}
}

func (s *service) GetByID(ctx context.Context, id ID) (*Payment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Payment, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByPassenger(ctx context.Context, passengerID users.ID) ([]*Payment, error) {
	return s.repo.ListByPassenger(ctx, passengerID)
}

func (s *service) Create(ctx context.Context, passengerID users.ID, amount float64, method Method, details Details) (*Payment, error) {
	passenger, err := s.userRepo.FindByID(ctx, passengerID)
	if err != nil {
		return nil, err
	}
	if passenger.Role != users.RolePassenger {
		return nil, fmt.Errorf("user %s is not a passenger", passengerID)
	}
	p, err := New(passengerID, amount, method, details, datetime.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Process(ctx context.Context, id ID) (string, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	msg, err := p.Process()
	if err != nil {
		return "", err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return "", err
	}
	s.log.LogPaymentProcessed(string(p.ID), string(p.Status), p.Amount)
	return msg, nil
}

func (s *service) Refund(ctx context.Context, id ID) (string, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	msg, err := p.Refund()
	if err != nil {
		return "", err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return "", err
	}
	s.log.Info("payment refunded", "payment_id", p.ID, "amount", p.Amount, "method", p.Method)
	return msg, nil
}
