package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cart-service/internal/models"
	"cart-service/internal/util"

	"go.uber.org/zap"
)

// CartStore persists cart line items as {product_id, quantity} records.
type CartStore struct {
	path   string
	logger *zap.Logger
}

// NewCartStore creates a cart store backed by the given file path.
func NewCartStore(path string) *CartStore {
	return &CartStore{
		path:   path,
		logger: util.GetLogger(),
	}
}

// Load reads the cart file and reconciles it against the catalog. Each
// persisted line represents stock that was already reserved, so the
// referenced product's availability is reduced by the persisted quantity.
// Lines whose product no longer exists in the catalog are dropped. A missing
// file yields an empty cart.
func (s *CartStore) Load(catalog *models.Catalog) (*models.Cart, error) {
	cart := models.NewCart()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return cart, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var records []models.CartItemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse cart file %s: %w", s.path, err)
	}

	for _, rec := range records {
		product, ok := catalog.Get(rec.ProductID)
		if !ok {
			continue
		}
		cart.Add(&models.CartItem{Product: product, Quantity: rec.Quantity})
		if !product.DecreaseQuantity(rec.Quantity) {
			s.logger.Warn("Persisted cart quantity exceeds catalog stock",
				zap.String("product_id", rec.ProductID),
				zap.Int("quantity", rec.Quantity),
				zap.Int("available", product.Quantity))
		}
	}

	return cart, nil
}

// Save writes every line item's {product_id, quantity} pair, in cart order.
func (s *CartStore) Save(cart *models.Cart) error {
	records := make([]models.CartItemRecord, 0, cart.Len())
	for _, item := range cart.Items() {
		records = append(records, item.Record())
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file %s: %w", s.path, err)
	}
	return nil
}
