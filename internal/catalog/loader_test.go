package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/megamart-checkout/internal/catalog"
	"github.com/noah-isme/megamart-checkout/internal/inventory"
	"github.com/noah-isme/megamart-checkout/internal/pricing"
)

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, `{
		"items": [
			{"id": "bread", "name": "Bread", "originalPrice": "4.50", "stock": 5},
			{"id": "beer", "name": "Beer", "originalPrice": "6.00", "categories": ["Alcohol"], "stock": 12, "purchaseLimit": 6}
		],
		"discounts": [
			{"itemId": "bread", "type": "PERCENTAGE", "value": "25"}
		]
	}`)

	store, err := catalog.Load(path)
	require.NoError(t, err)
	require.NoError(t, store.Healthy())

	item, ok := store.Item("beer")
	require.True(t, ok)
	require.Equal(t, "Beer", item.Name)
	require.Equal(t, []string{"Alcohol"}, item.Categories)

	d, ok := store.Discount("bread")
	require.True(t, ok)
	require.True(t, d.Value.Equal(decimal.RequireFromString("25")))

	var limit *int
	require.NoError(t, store.Session(func(inv inventory.Inventory, _ pricing.Discounts) error {
		limit = inv["beer"].Limit
		return nil
	}))
	require.NotNil(t, limit)
	require.Equal(t, 6, *limit)
}

func TestLoadCatalogRejectsBadFiles(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"duplicate item": `{"items": [
			{"id": "bread", "originalPrice": "4.50", "stock": 1},
			{"id": "bread", "originalPrice": "4.50", "stock": 1}
		]}`,
		"missing id":     `{"items": [{"originalPrice": "4.50", "stock": 1}]}`,
		"negative stock": `{"items": [{"id": "bread", "originalPrice": "4.50", "stock": -1}]}`,
		"negative price": `{"items": [{"id": "bread", "originalPrice": "-4.50", "stock": 1}]}`,
		"negative limit": `{"items": [{"id": "bread", "originalPrice": "4.50", "stock": 1, "purchaseLimit": -2}]}`,
		"orphan discount": `{"items": [],
			"discounts": [{"itemId": "ghost", "type": "FLAT", "value": "1.00"}]}`,
		"unknown discount type": `{"items": [{"id": "bread", "originalPrice": "4.50", "stock": 1}],
			"discounts": [{"itemId": "bread", "type": "BOGOF", "value": "1.00"}]}`,
		"duplicate discount": `{"items": [{"id": "bread", "originalPrice": "4.50", "stock": 1}],
			"discounts": [
				{"itemId": "bread", "type": "FLAT", "value": "1.00"},
				{"itemId": "bread", "type": "FLAT", "value": "2.00"}
			]}`,
		"not json": `[`,
	}
	for name, contents := range cases {
		path := writeCatalog(t, contents)
		_, err := catalog.Load(path)
		require.Error(t, err, "case %s", name)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	t.Parallel()

	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestStoreHealthyRequiresItems(t *testing.T) {
	t.Parallel()

	store := catalog.NewStore(nil, nil)
	require.Error(t, store.Healthy())
}
