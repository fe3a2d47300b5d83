package payments

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Method selects how a payment is settled. The former strategy-class
// hierarchy becomes a tag plus switch dispatch: the behavior differences
// are confined to validation and message formatting.
type Method string

const (
	MethodCash   Method = "cash"
	MethodCredit Method = "credit"
	MethodPaypal Method = "paypal"
)

// ErrUnknownMethod is returned for a payment method outside the supported set.
var ErrUnknownMethod = errors.New("unknown payment method")

// Details holds the method-specific payment fields. Only the fields for
// the payment's method are populated; cash carries none.
type Details struct {
	CardNumber     string `json:"cardNumber,omitempty"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	CVV            string `json:"cvv,omitempty"`
	Email          string `json:"email,omitempty"`
}

type creditDetails struct {
	CardNumber     string `validate:"required,len=16,numeric"`
	ExpirationDate string `validate:"required,len=5"`
	CVV            string `validate:"required,len=3,numeric"`
}

type paypalDetails struct {
	Email string `validate:"required,email"`
}

// One instance per package; Struct() caches parsed tags per type.
var validate = validator.New()

// ValidateDetails checks that details satisfy the method's requirements:
// credit needs a 16-digit card number, an MM/YY expiration date, and a
// 3-digit CVV; paypal needs an email in the paypal.com domain; cash takes
// no details.
func ValidateDetails(method Method, details Details) error {
	switch method {
	case MethodCash:
		return nil
	case MethodCredit:
		params := creditDetails{
			CardNumber:     details.CardNumber,
			ExpirationDate: details.ExpirationDate,
			CVV:            details.CVV,
		}
		if err := validate.Struct(&params); err != nil {
			return fmt.Errorf("invalid credit card details: %w", err)
		}
		if err := validateExpiry(details.ExpirationDate); err != nil {
			return err
		}
		return nil
	case MethodPaypal:
		params := paypalDetails{Email: details.Email}
		if err := validate.Struct(&params); err != nil {
			return fmt.Errorf("invalid paypal details: %w", err)
		}
		if domain := details.Email[strings.IndexByte(details.Email, '@')+1:]; domain != "paypal.com" {
			return fmt.Errorf("invalid paypal email: domain must be paypal.com")
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

func validateExpiry(expiry string) error {
	if len(expiry) != 5 || expiry[2] != '/' {
		return fmt.Errorf("expiration date must be in MM/YY format")
	}
	for i, c := range expiry {
		if i == 2 {
			continue
		}
		if c < '0' || c > '9' {
			return fmt.Errorf("expiration date must contain only digits and '/'")
		}
	}
	return nil
}

// maskCardNumber hides all but the last four card digits.
func maskCardNumber(number string) string {
	return "****-****-****-" + number[len(number)-4:]
}

// processMessage formats the settlement confirmation for the method.
func processMessage(method Method, details Details, amount float64) string {
	switch method {
	case MethodCredit:
		return fmt.Sprintf("Credit card payment of %.2f using credit card number %s processed successfully.",
			amount, maskCardNumber(details.CardNumber))
	case MethodPaypal:
		return fmt.Sprintf("PayPal payment of %.2f using %s processed successfully.", amount, details.Email)
	default:
		return fmt.Sprintf("Cash payment of %.2f processed successfully.", amount)
	}
}

// refundMessage formats the refund confirmation for the method.
func refundMessage(method Method, details Details, amount float64) string {
	switch method {
	case MethodCredit:
		return fmt.Sprintf("Credit card refund of %.2f to credit card number %s processed successfully.",
			amount, maskCardNumber(details.CardNumber))
	case MethodPaypal:
		return fmt.Sprintf("PayPal payment of %.2f using %s refunded successfully.", amount, details.Email)
	default:
		return fmt.Sprintf("Cash payment of %.2f refunded successfully.", amount)
	}
}
