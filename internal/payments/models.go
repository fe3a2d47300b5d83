package payments

import (
	"encoding/json"
	"fmt"

	"flightly/internal/datetime"
	"flightly/internal/shared/identifier"
	"flightly/internal/users"
)

// ID uniquely identifies a payment.
type ID string

const IDPrefix = "PAY-"

// Status tracks a payment through its lifecycle.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusRefunded  Status = "REFUNDED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusRefunded:
		return true
	}
	return false
}

// Payment records a single settlement attempt by a passenger.
type Payment struct {
	ID          ID
	PassengerID users.ID
	Amount      float64
	Method      Method
	Details     Details
	Date        datetime.DateTime
	Status      Status
}

// New builds a pending payment after validating the method details.
func New(passengerID users.ID, amount float64, method Method, details Details, date datetime.DateTime) (*Payment, error) {
	if err := ValidateDetails(method, details); err != nil {
		return nil, err
	}
	p := &Payment{
		ID:          ID(identifier.New(IDPrefix)),
		PassengerID: passengerID,
		Amount:      amount,
		Method:      method,
		Details:     details,
		Date:        date,
		Status:      StatusPending,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Payment) Validate() error {
	if err := identifier.Validate(string(p.ID), IDPrefix); err != nil {
		return fmt.Errorf("payment id: %w", err)
	}
	if p.PassengerID == "" {
		return fmt.Errorf("payment %s: passenger id is required", p.ID)
	}
	if p.Amount <= 0 {
		return fmt.Errorf("payment %s: amount must be positive", p.ID)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("payment %s: invalid status %q", p.ID, p.Status)
	}
	if !p.Date.Valid() {
		return fmt.Errorf("payment %s: invalid payment date", p.ID)
	}
	return ValidateDetails(p.Method, p.Details)
}

// Process settles a pending payment and returns a confirmation message.
func (p *Payment) Process() (string, error) {
	if p.Status != StatusPending {
		return "", fmt.Errorf("payment %s: cannot process payment in status %s", p.ID, p.Status)
	}
	p.Status = StatusCompleted
	return processMessage(p.Method, p.Details, p.Amount), nil
}

// Refund reverses a completed payment and returns a confirmation message.
func (p *Payment) Refund() (string, error) {
	if p.Status != StatusCompleted {
		return "", fmt.Errorf("payment %s: cannot refund payment in status %s", p.ID, p.Status)
	}
	p.Status = StatusRefunded
	return refundMessage(p.Method, p.Details, p.Amount), nil
}

type paymentJSON struct {
	ID          ID                `json:"id"`
	PassengerID users.ID          `json:"passengerId"`
	Amount      float64           `json:"amount"`
	Method      Method            `json:"method"`
	Details     Details           `json:"details"`
	Date        datetime.DateTime `json:"paymentDate"`
	Status      Status            `json:"status"`
}

func (p *Payment) MarshalJSON() ([]byte, error) {
	return json.Marshal(paymentJSON{
		ID:          p.ID,
		PassengerID: p.PassengerID,
		Amount:      p.Amount,
		Method:      p.Method,
		Details:     p.Details,
		Date:        p.Date,
		Status:      p.Status,
	})
}

func (p *Payment) UnmarshalJSON(data []byte) error {
	var raw paymentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode payment: %w", err)
	}
	*p = Payment{
		ID:          raw.ID,
		PassengerID: raw.PassengerID,
		Amount:      raw.Amount,
		Method:      raw.Method,
		Details:     raw.Details,
		Date:        raw.Date,
		Status:      raw.Status,
	}
	return p.Validate()
}
