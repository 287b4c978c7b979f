package service

import (
	"fmt"

	"cart-service/internal/models"
	"cart-service/internal/store"
	"cart-service/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ShoppingCart orchestrates cart operations against the catalog, keeping
// reserved cart quantities and catalog stock in lockstep. Every mutation is
// written through to the cart file immediately.
//
// Operations report expected failures (unknown product, insufficient stock,
// missing line item) as a boolean; they never return errors for those cases.
type ShoppingCart struct {
	catalog   *models.Catalog
	cart      *models.Cart
	cartStore *store.CartStore
	logger    *zap.Logger
}

// NewShoppingCart loads the catalog and the persisted cart state, reconciling
// outstanding reservations against catalog stock.
func NewShoppingCart(catalogStore *store.CatalogStore, cartStore *store.CartStore) (*ShoppingCart, error) {
	catalog, err := catalogStore.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	cart, err := cartStore.Load(catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	return &ShoppingCart{
		catalog:   catalog,
		cart:      cart,
		cartStore: cartStore,
		logger:    util.GetLogger(),
	}, nil
}

// AddItem reserves quantity units of the product and adds them to the cart,
// extending an existing line for the same product if there is one. It reports
// false, with no state change, when the product is unknown or stock cannot
// cover the quantity.
func (s *ShoppingCart) AddItem(productID string, quantity int) bool {
	product, ok := s.catalog.Get(productID)
	if !ok {
		s.logger.Warn("Product not found", zap.String("product_id", productID))
		return false
	}

	if !product.DecreaseQuantity(quantity) {
		s.logger.Warn("Not enough stock",
			zap.String("product_id", productID),
			zap.Int("requested", quantity),
			zap.Int("available", product.Quantity))
		return false
	}

	if item, exists := s.cart.Get(productID); exists {
		item.Quantity += quantity
	} else {
		s.cart.Add(&models.CartItem{Product: product, Quantity: quantity})
	}

	s.persist()
	return true
}

// RemoveItem drops the line item and releases its reservation back to the
// product's stock.
func (s *ShoppingCart) RemoveItem(productID string) bool {
	item, ok := s.cart.Remove(productID)
	if !ok {
		return false
	}

	item.Product.IncreaseQuantity(item.Quantity)
	s.persist()
	return true
}

// UpdateQuantity sets the line item to newQuantity, reserving or releasing
// the difference against the product's stock. Increases fail when stock
// cannot cover the difference. Setting the current quantity again reports
// false with no change.
func (s *ShoppingCart) UpdateQuantity(productID string, newQuantity int) bool {
	if newQuantity < 0 {
		return false
	}

	item, ok := s.cart.Get(productID)
	if !ok {
		return false
	}

	diff := newQuantity - item.Quantity
	switch {
	case diff > 0:
		if !item.Product.DecreaseQuantity(diff) {
			s.logger.Warn("Not enough stock for update",
				zap.String("product_id", productID),
				zap.Int("requested", diff),
				zap.Int("available", item.Product.Quantity))
			return false
		}
	case diff < 0:
		item.Product.IncreaseQuantity(-diff)
	default:
		return false
	}

	item.Quantity = newQuantity
	s.persist()
	return true
}

// Total sums every line item's subtotal, recomputed on each call.
func (s *ShoppingCart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.cart.Items() {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Checkout simulates placing an order. No stock or cart state changes; the
// returned receipt id only identifies the simulated transaction.
func (s *ShoppingCart) Checkout() string {
	receipt := uuid.New().String()
	s.logger.Info("Checkout simulated",
		zap.String("receipt_id", receipt),
		zap.Int("items", s.cart.Len()),
		zap.String("total", s.Total().String()))
	return receipt
}

// ProductLines renders one display line per catalog product, in catalog
// order.
func (s *ShoppingCart) ProductLines() []string {
	lines := make([]string, 0, s.catalog.Len())
	for _, p := range s.catalog.Products() {
		lines = append(lines, p.DisplayDetails())
	}
	return lines
}

// CartLines renders one display line per cart item plus the grand total, or
// nothing when the cart is empty.
func (s *ShoppingCart) CartLines() []string {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil
	}

	lines := make([]string, 0, len(items)+1)
	for _, item := range items {
		lines = append(lines, item.String())
	}
	lines = append(lines, fmt.Sprintf("Grand Total: $%s", s.Total()))
	return lines
}

// persist writes the full cart state through to storage. Unexpected I/O
// failures terminate the process.
func (s *ShoppingCart) persist() {
	if err := s.cartStore.Save(s.cart); err != nil {
		s.logger.Fatal("Failed to persist cart state", zap.Error(err))
	}
}
