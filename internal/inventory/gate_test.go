package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/megamart-checkout/internal/domain"
	"github.com/noah-isme/megamart-checkout/internal/inventory"
)

func intptr(n int) *int { return &n }

func testInventory() inventory.Inventory {
	limited := &domain.Item{ID: "limited"}
	unlimited := &domain.Item{ID: "unlimited"}
	return inventory.Inventory{
		"limited":   {Item: limited, Stock: 10, Limit: intptr(3)},
		"unlimited": {Item: unlimited, Stock: 5},
	}
}

func TestPurchaseLimit(t *testing.T) {
	t.Parallel()

	inv := testInventory()

	limit, err := inventory.PurchaseLimit(&domain.Item{ID: "limited"}, inv)
	require.NoError(t, err)
	require.NotNil(t, limit)
	require.Equal(t, 3, *limit)

	limit, err = inventory.PurchaseLimit(&domain.Item{ID: "unlimited"}, inv)
	require.NoError(t, err)
	require.Nil(t, limit)

	limit, err = inventory.PurchaseLimit(&domain.Item{ID: "missing"}, inv)
	require.NoError(t, err)
	require.Nil(t, limit)
}

func TestPurchaseLimitRequiredInputs(t *testing.T) {
	t.Parallel()

	_, err := inventory.PurchaseLimit(nil, testInventory())
	require.ErrorIs(t, err, domain.ErrInventory)

	_, err = inventory.PurchaseLimit(&domain.Item{ID: "limited"}, nil)
	require.ErrorIs(t, err, domain.ErrInventory)
}

func TestSufficientlyStocked(t *testing.T) {
	t.Parallel()

	inv := testInventory()
	item := &domain.Item{ID: "unlimited"}

	ok, err := inventory.SufficientlyStocked(item, 5, inv)
	require.NoError(t, err)
	require.True(t, ok, "quantity equal to stock is servable")

	ok, err = inventory.SufficientlyStocked(item, 6, inv)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = inventory.SufficientlyStocked(&domain.Item{ID: "missing"}, 1, inv)
	require.NoError(t, err)
	require.False(t, ok, "unknown items are not stocked")
}

func TestSufficientlyStockedRejectsBadInputs(t *testing.T) {
	t.Parallel()

	inv := testInventory()
	item := &domain.Item{ID: "unlimited"}

	_, err := inventory.SufficientlyStocked(nil, 1, inv)
	require.ErrorIs(t, err, domain.ErrInventory)

	_, err = inventory.SufficientlyStocked(item, 0, inv)
	require.ErrorIs(t, err, domain.ErrInventory)

	_, err = inventory.SufficientlyStocked(item, -2, inv)
	require.ErrorIs(t, err, domain.ErrInventory)

	_, err = inventory.SufficientlyStocked(item, 1, nil)
	require.ErrorIs(t, err, domain.ErrInventory)
}

func TestSufficientlyStockedRejectsCorruptStock(t *testing.T) {
	t.Parallel()

	item := &domain.Item{ID: "broken"}
	inv := inventory.Inventory{"broken": {Item: item, Stock: -1}}

	_, err := inventory.SufficientlyStocked(item, 1, inv)
	require.ErrorIs(t, err, domain.ErrInventory)
}
