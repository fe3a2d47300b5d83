package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDetails(t *testing.T) {
	tests := []struct {
		name    string
		method  Method
		details Details
		wantErr bool
	}{
		{name: "cash needs nothing", method: MethodCash},
		{
			name:    "valid credit card",
			method:  MethodCredit,
			details: Details{CardNumber: "4111111111111111", ExpirationDate: "12/27", CVV: "123"},
		},
		{
			name:    "card number too short",
			method:  MethodCredit,
			details: Details{CardNumber: "4111", ExpirationDate: "12/27", CVV: "123"},
			wantErr: true,
		},
		{
			name:    "card number not numeric",
			method:  MethodCredit,
			details: Details{CardNumber: "41111111111111ab", ExpirationDate: "12/27", CVV: "123"},
			wantErr: true,
		},
		{
			name:    "expiry missing slash",
			method:  MethodCredit,
			details: Details{CardNumber: "4111111111111111", ExpirationDate: "12-27", CVV: "123"},
			wantErr: true,
		},
		{
			name:    "expiry with letters",
			method:  MethodCredit,
			details: Details{CardNumber: "4111111111111111", ExpirationDate: "ab/cd", CVV: "123"},
			wantErr: true,
		},
		{
			name:    "cvv too long",
			method:  MethodCredit,
			details: Details{CardNumber: "4111111111111111", ExpirationDate: "12/27", CVV: "1234"},
			wantErr: true,
		},
		{
			name:    "valid paypal",
			method:  MethodPaypal,
			details: Details{Email: "traveler@paypal.com"},
		},
		{
			name:    "paypal wrong domain",
			method:  MethodPaypal,
			details: Details{Email: "traveler@gmail.com"},
			wantErr: true,
		},
		{
			name:    "paypal empty email",
			method:  MethodPaypal,
			wantErr: true,
		},
		{name: "unknown method", method: Method("wire"), wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDetails(tc.method, tc.details)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndRefundMessages(t *testing.T) {
	credit := Details{CardNumber: "4111111111111111", ExpirationDate: "12/27", CVV: "123"}

	p, err := New("PAS-AB12CD34", 220, MethodCredit, credit, testDate(t))
	require.NoError(t, err)
	assert.Equal(t, StatusPending, p.Status)

	msg, err := p.Process()
	require.NoError(t, err)
	assert.Equal(t, "Credit card payment of 220.00 using credit card number ****-****-****-1111 processed successfully.", msg)
	assert.Equal(t, StatusCompleted, p.Status)

	msg, err = p.Refund()
	require.NoError(t, err)
	assert.Equal(t, "Credit card refund of 220.00 to credit card number ****-****-****-1111 processed successfully.", msg)
	assert.Equal(t, StatusRefunded, p.Status)
}

func TestProcessRequiresPendingStatus(t *testing.T) {
	p, err := New("PAS-AB12CD34", 100, MethodCash, Details{}, testDate(t))
	require.NoError(t, err)

	_, err = p.Refund()
	assert.Error(t, err, "cannot refund before processing")

	_, err = p.Process()
	require.NoError(t, err)
	_, err = p.Process()
	assert.Error(t, err, "cannot process twice")
}

func TestPaypalMessages(t *testing.T) {
	p, err := New("PAS-AB12CD34", 150, MethodPaypal, Details{Email: "traveler@paypal.com"}, testDate(t))
	require.NoError(t, err)

	msg, err := p.Process()
	require.NoError(t, err)
	assert.Equal(t, "PayPal payment of 150.00 using traveler@paypal.com processed successfully.", msg)

	msg, err = p.Refund()
	require.NoError(t, err)
	assert.Equal(t, "PayPal payment of 150.00 using traveler@paypal.com refunded successfully.", msg)
}
