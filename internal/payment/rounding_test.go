package payment_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/megamart-checkout/internal/domain"
	"github.com/noah-isme/megamart-checkout/internal/payment"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRoundForPaymentNonCash(t *testing.T) {
	t.Parallel()

	for _, method := range []domain.PaymentMethod{domain.PaymentCredit, domain.PaymentDebit} {
		total, err := payment.RoundForPayment(dec("10.424"), method)
		require.NoError(t, err)
		require.True(t, total.Equal(dec("10.42")), "non-cash only normalises to 2dp, got %s", total)
	}
}

func TestRoundForPaymentCashDigitTable(t *testing.T) {
	t.Parallel()

	// Ones digit of the cents amount: 1,2,6,7 round down; 3,4,8,9 round
	// up; 0 and 5 are already on a bucket.
	cases := map[string]string{
		"1.40": "1.40",
		"1.41": "1.40",
		"1.42": "1.40",
		"1.43": "1.45",
		"1.44": "1.45",
		"1.45": "1.45",
		"1.46": "1.45",
		"1.47": "1.45",
		"1.48": "1.50",
		"1.49": "1.50",
	}
	for input, want := range cases {
		total, err := payment.RoundForPayment(dec(input), domain.PaymentCash)
		require.NoError(t, err)
		require.True(t, total.Equal(dec(want)), "cash %s should round to %s, got %s", input, want, total)
	}
}

func TestRoundForPaymentCashNormalisesFirst(t *testing.T) {
	t.Parallel()

	// 1.427 -> 1.43 after the 2dp rounding, then up to 1.45.
	total, err := payment.RoundForPayment(dec("1.427"), domain.PaymentCash)
	require.NoError(t, err)
	require.True(t, total.Equal(dec("1.45")), "got %s", total)
}

func TestRoundForPaymentRequiresMethod(t *testing.T) {
	t.Parallel()

	_, err := payment.RoundForPayment(dec("10.00"), "")
	require.ErrorIs(t, err, domain.ErrPayment)
}
