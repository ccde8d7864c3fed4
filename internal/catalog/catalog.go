// Package catalog holds the read-only product range and its lookup accessors.
package catalog

import (
	"fmt"

	"github.com/Veraticus/axox-storefront/internal/model"
)

// Default price bounds used by the collection filter.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 20000
)

// Catalog is an immutable, ordered set of products.
// Every accessor returns copies; the catalog itself is never mutated.
type Catalog struct {
	byID     map[string]int
	products []model.Product
}

// New builds a catalog from products, rejecting duplicate or invalid entries.
func New(products []model.Product) (*Catalog, error) {
	c := &Catalog{
		byID:     make(map[string]int, len(products)),
		products: make([]model.Product, 0, len(products)),
	}

	for i, p := range products {
		if err := Validate(p); err != nil {
			return nil, fmt.Errorf("product at index %d: %w", i, err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p.Clone())
	}

	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(DefaultProducts())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Validate checks the invariants every catalog entry must hold.
func Validate(p model.Product) error {
	switch {
	case p.ID == "":
		return fmt.Errorf("missing id")
	case p.Name == "":
		return fmt.Errorf("product %s: missing name", p.ID)
	case p.Price <= 0:
		return fmt.Errorf("product %s: price must be positive", p.ID)
	case !p.Category.Valid():
		return fmt.Errorf("product %s: invalid category %q", p.ID, p.Category)
	case !p.Type.Valid():
		return fmt.Errorf("product %s: invalid type %q", p.ID, p.Type)
	}
	return nil
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// All returns every product in catalog order.
func (c *Catalog) All() []model.Product {
	return c.collect(func(model.Product) bool { return true })
}

// ByID looks up a product by id.
func (c *Catalog) ByID(id string) (model.Product, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[idx].Clone(), true
}

// ByCategory returns products in the given category.
func (c *Catalog) ByCategory(category model.Category) []model.Product {
	return c.collect(func(p model.Product) bool { return p.Category == category })
}

// ByType returns products of the given type.
func (c *Catalog) ByType(t model.ProductType) []model.Product {
	return c.collect(func(p model.Product) bool { return p.Type == t })
}

// HomeProducts returns home-type products.
func (c *Catalog) HomeProducts() []model.Product {
	return c.ByType(model.TypeHome)
}

// CommercialProducts returns commercial-type products.
func (c *Catalog) CommercialProducts() []model.Product {
	return c.ByType(model.TypeCommercial)
}

// Filter describes the collection page filters. Zero values mean "any".
type Filter struct {
	Type       model.ProductType
	Categories []model.Category
	MinPrice   int
	MaxPrice   int
}

// DefaultFilter returns the filter the collection page starts with.
func DefaultFilter() Filter {
	return Filter{MinPrice: DefaultMinPrice, MaxPrice: DefaultMaxPrice}
}

// Matches reports whether p passes the filter. Price bounds are inclusive;
// a MaxPrice of zero disables the upper bound.
func (f Filter) Matches(p model.Product) bool {
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if c == p.Category {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	return true
}

// Filter returns products matching f in catalog order.
func (c *Catalog) Filter(f Filter) []model.Product {
	return c.collect(f.Matches)
}

func (c *Catalog) collect(keep func(model.Product) bool) []model.Product {
	out := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}
