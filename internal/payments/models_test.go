package payments

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightly/internal/datetime"
)

func testDate(t *testing.T) datetime.DateTime {
	t.Helper()
	dt, err := datetime.Parse("2026-10-01 08:30")
	require.NoError(t, err)
	return dt
}

func TestNewPaymentValidatesDetails(t *testing.T) {
	_, err := New("PAS-AB12CD34", 100, MethodCredit, Details{CardNumber: "bogus"}, testDate(t))
	assert.Error(t, err)

	p, err := New("PAS-AB12CD34", 100, MethodCash, Details{}, testDate(t))
	require.NoError(t, err)
	assert.Equal(t, "PAY-", string(p.ID[:4]))
}

func TestPaymentJSONRoundTrip(t *testing.T) {
	p, err := New("PAS-AB12CD34", 195.5, MethodPaypal, Details{Email: "traveler@paypal.com"}, testDate(t))
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"paymentDate"`)
	assert.Contains(t, string(data), `"passengerId"`)

	var got Payment
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Method, got.Method)
	assert.Equal(t, p.Details, got.Details)
	assert.Equal(t, p.Status, got.Status)
	assert.InDelta(t, p.Amount, got.Amount, 1e-9)
}

func TestPaymentRejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []float64{0, -10} {
		_, err := New("PAS-AB12CD34", amount, MethodCash, Details{}, testDate(t))
		assert.Error(t, err, "amount %v", amount)
	}

	raw := `{"id":"PAY-AB12CD34","passengerId":"PAS-AB12CD34","amount":0,"method":"cash","details":{},"paymentDate":"2026-10-01 08:30","status":"PENDING"}`
	var p Payment
	assert.Error(t, json.Unmarshal([]byte(raw), &p))
}

func TestPaymentUnmarshalRejectsBadStatus(t *testing.T) {
	raw := `{"id":"PAY-AB12CD34","passengerId":"PAS-AB12CD34","amount":100,"method":"cash","details":{},"paymentDate":"2026-10-01 08:30","status":"VOID"}`
	var p Payment
	assert.Error(t, json.Unmarshal([]byte(raw), &p))
}
