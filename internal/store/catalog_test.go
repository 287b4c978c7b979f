package store

import (
	"os"
	"path/filepath"
	"testing"

	"cart-service/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCatalogLoadMissingFile(t *testing.T) {
	s := NewCatalogStore(filepath.Join(t.TempDir(), "absent.json"))

	catalog, err := s.Load()

	require.NoError(t, err)
	assert.Equal(t, 0, catalog.Len())
}

func TestCatalogLoadSkipsRecordsWithoutProductID(t *testing.T) {
	path := writeFile(t, `[
		{"type": "base", "product_id": "P1", "name": "Mug", "price": 5.0, "quantity_available": 10},
		{"type": "base", "name": "Orphan", "price": 1.0, "quantity_available": 2},
		{"type": "digital", "product_id": "D1", "name": "EBook", "price": 3.5, "quantity_available": 99, "download_link": "https://example.com/ebook"}
	]`)

	catalog, err := NewCatalogStore(path).Load()

	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())
	_, ok := catalog.Get("P1")
	assert.True(t, ok)
	_, ok = catalog.Get("D1")
	assert.True(t, ok)
}

func TestCatalogLoadSkipsMalformedRecord(t *testing.T) {
	path := writeFile(t, `[
		{"product_id": "P1", "name": "Mug", "price": 5.0, "quantity_available": 10},
		"not an object",
		{"product_id": "P2", "name": "Pen", "price": 1.5, "quantity_available": 4}
	]`)

	catalog, err := NewCatalogStore(path).Load()

	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())
}

func TestCatalogLoadDispatchesVariants(t *testing.T) {
	path := writeFile(t, `[
		{"product_id": "P1", "name": "Chair", "price": 25.0, "quantity_available": 5, "type": "physical", "weight": 4.5},
		{"product_id": "D1", "name": "EBook", "price": 3.5, "quantity_available": 99, "type": "digital", "download_link": "https://example.com/ebook"},
		{"product_id": "B1", "name": "Mug", "price": 5.0, "quantity_available": 10}
	]`)

	catalog, err := NewCatalogStore(path).Load()
	require.NoError(t, err)

	physical, ok := catalog.Get("P1")
	require.True(t, ok)
	assert.Equal(t, models.TypePhysical, physical.Type)
	assert.True(t, physical.Weight.Equal(decimal.RequireFromString("4.5")))

	digital, ok := catalog.Get("D1")
	require.True(t, ok)
	assert.Equal(t, models.TypeDigital, digital.Type)
	assert.Equal(t, "https://example.com/ebook", digital.DownloadLink)

	// No type tag defaults to base.
	base, ok := catalog.Get("B1")
	require.True(t, ok)
	assert.Equal(t, models.TypeBase, base.Type)
	assert.Equal(t, 10, base.Quantity)
	assert.True(t, base.Price.Equal(decimal.RequireFromString("5.0")))
}

func TestCatalogSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	s := NewCatalogStore(path)

	catalog := models.NewCatalog()
	catalog.Add(&models.Product{
		ID: "P1", Type: models.TypePhysical, Name: "Chair",
		Price: decimal.RequireFromString("25.0"), Quantity: 5,
		Weight: decimal.RequireFromString("4.5"),
	})
	catalog.Add(&models.Product{
		ID: "D1", Type: models.TypeDigital, Name: "EBook",
		Price: decimal.RequireFromString("3.5"), Quantity: 99,
		DownloadLink: "https://example.com/ebook",
	})
	catalog.Add(&models.Product{
		ID: "B1", Type: models.TypeBase, Name: "Mug",
		Price: decimal.RequireFromString("5.0"), Quantity: 10,
	})

	require.NoError(t, s.Save(catalog))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, 3, loaded.Len())

	var ids []string
	for _, p := range loaded.Products() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"P1", "D1", "B1"}, ids)

	for _, want := range catalog.Products() {
		got, ok := loaded.Get(want.ID)
		require.True(t, ok)
		assert.Equal(t, want.Type, got.Type)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Quantity, got.Quantity)
		assert.True(t, got.Price.Equal(want.Price))
		assert.True(t, got.Weight.Equal(want.Weight))
		assert.Equal(t, want.DownloadLink, got.DownloadLink)
	}
}
