package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Catalog files carry prices and weights as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product variant tags
const (
	TypeBase     = "base"
	TypePhysical = "physical"
	TypeDigital  = "digital"
)

// Product represents a catalog entry. The Type tag selects which variant
// fields are meaningful: Weight for physical products, DownloadLink for
// digital ones. Base products carry neither.
type Product struct {
	ID           string
	Type         string
	Name         string
	Price        decimal.Decimal
	Quantity     int
	Weight       decimal.Decimal
	DownloadLink string
}

// DecreaseQuantity deducts amount units from available stock. It succeeds
// only when 0 < amount <= current stock; otherwise it reports false and
// leaves stock untouched.
func (p *Product) DecreaseQuantity(amount int) bool {
	if amount <= 0 || amount > p.Quantity {
		return false
	}
	p.Quantity -= amount
	return true
}

// IncreaseQuantity returns amount units to available stock. The amount is
// expected to be non-negative; callers own that guarantee.
func (p *Product) IncreaseQuantity(amount int) {
	p.Quantity += amount
}

// DisplayDetails renders a one-line summary of the product. Digital products
// show their download link in place of stock.
func (p *Product) DisplayDetails() string {
	switch p.Type {
	case TypePhysical:
		return fmt.Sprintf("ID: %s, Name: %s, Price: $%s, Stock: %d, Weight: %skg",
			p.ID, p.Name, p.Price, p.Quantity, p.Weight)
	case TypeDigital:
		return fmt.Sprintf("ID: %s, Name: %s, Price: $%s, Download: %s",
			p.ID, p.Name, p.Price, p.DownloadLink)
	default:
		return fmt.Sprintf("ID: %s, Name: %s, Price: $%s, Stock: %d",
			p.ID, p.Name, p.Price, p.Quantity)
	}
}

// ProductRecord is the serialized form of a Product. Variant fields are
// emitted only for the variant that owns them.
type ProductRecord struct {
	Type         string           `json:"type"`
	ProductID    string           `json:"product_id"`
	Name         string           `json:"name"`
	Price        decimal.Decimal  `json:"price"`
	Quantity     int              `json:"quantity_available"`
	Weight       *decimal.Decimal `json:"weight,omitempty"`
	DownloadLink string           `json:"download_link,omitempty"`
}

// Record produces the serializable export of the product, tagged with its
// variant type.
func (p *Product) Record() ProductRecord {
	rec := ProductRecord{
		Type:      p.Type,
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  p.Quantity,
	}
	switch p.Type {
	case TypePhysical:
		w := p.Weight
		rec.Weight = &w
	case TypeDigital:
		rec.DownloadLink = p.DownloadLink
	default:
		rec.Type = TypeBase
	}
	return rec
}

// ProductFromRecord constructs a Product from its serialized form,
// dispatching on the type tag. An absent or unrecognized tag falls back to a
// base product; variant fields not owned by the chosen variant are discarded.
func ProductFromRecord(rec ProductRecord) *Product {
	p := &Product{
		ID:       rec.ProductID,
		Type:     rec.Type,
		Name:     rec.Name,
		Price:    rec.Price,
		Quantity: rec.Quantity,
	}
	switch rec.Type {
	case TypePhysical:
		if rec.Weight != nil {
			p.Weight = *rec.Weight
		}
	case TypeDigital:
		p.DownloadLink = rec.DownloadLink
	default:
		p.Type = TypeBase
	}
	return p
}

// Catalog holds the product set keyed by id. Insertion order is tracked so
// listings and saves are deterministic.
type Catalog struct {
	byID  map[string]*Product
	order []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[string]*Product)}
}

// Add inserts a product, replacing any existing product with the same id.
func (c *Catalog) Add(p *Product) {
	if _, ok := c.byID[p.ID]; !ok {
		c.order = append(c.order, p.ID)
	}
	c.byID[p.ID] = p
}

// Get looks up a product by id.
func (c *Catalog) Get(id string) (*Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Products returns all products in insertion order.
func (c *Catalog) Products() []*Product {
	products := make([]*Product, 0, len(c.order))
	for _, id := range c.order {
		products = append(products, c.byID[id])
	}
	return products
}
