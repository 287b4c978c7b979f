package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CartItem is a cart line: a non-owning reference into the catalog plus the
// quantity reserved from that product's stock. The quantity always reflects
// stock already deducted from the product; the service layer keeps the two in
// lockstep.
type CartItem struct {
	Product  *Product
	Quantity int
}

// Subtotal recomputes price times quantity on every call.
func (ci *CartItem) Subtotal() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// String renders the cart line for display.
func (ci *CartItem) String() string {
	return fmt.Sprintf("Item: %s, Quantity: %d, Price: $%s, Subtotal: $%s",
		ci.Product.Name, ci.Quantity, ci.Product.Price, ci.Subtotal())
}

// CartItemRecord is the persisted form of a cart line. Price and name stay
// out deliberately; they are re-resolved from the catalog on load.
type CartItemRecord struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Record produces the persisted form of the cart line.
func (ci *CartItem) Record() CartItemRecord {
	return CartItemRecord{ProductID: ci.Product.ID, Quantity: ci.Quantity}
}

// Cart holds the current line items keyed by product id, preserving insertion
// order like the catalog.
type Cart struct {
	byID  map[string]*CartItem
	order []string
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{byID: make(map[string]*CartItem)}
}

// Add inserts a line item, replacing any existing line for the same product.
func (c *Cart) Add(item *CartItem) {
	id := item.Product.ID
	if _, ok := c.byID[id]; !ok {
		c.order = append(c.order, id)
	}
	c.byID[id] = item
}

// Get looks up a line item by product id.
func (c *Cart) Get(productID string) (*CartItem, bool) {
	item, ok := c.byID[productID]
	return item, ok
}

// Remove deletes the line item for the product and returns it.
func (c *Cart) Remove(productID string) (*CartItem, bool) {
	item, ok := c.byID[productID]
	if !ok {
		return nil, false
	}
	delete(c.byID, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return item, true
}

// Len returns the number of line items.
func (c *Cart) Len() int {
	return len(c.order)
}

// Items returns all line items in insertion order.
func (c *Cart) Items() []*CartItem {
	items := make([]*CartItem, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, c.byID[id])
	}
	return items
}
