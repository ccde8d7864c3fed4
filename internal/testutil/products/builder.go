// Package products provides a fluent builder for seeding catalog databases in
// tests.
//
// Example usage:
//
//	db := testutil.SetupTestDBWithBuilder(t, func(b products.Builder) products.Builder {
//		return b.WithCategory(model.CategoryCardio).WithProduct(custom)
//	})
package products

import (
	"context"
	"fmt"
	"testing"

	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/model"
	"github.com/Veraticus/axox-storefront/internal/service"
)

// Builder collects products and writes them to a catalog store.
type Builder interface {
	// WithProduct adds or replaces a single product.
	WithProduct(p model.Product) Builder

	// WithProducts adds several products.
	WithProducts(ps ...model.Product) Builder

	// WithDefaultCatalog adds every product from the built-in dataset.
	WithDefaultCatalog() Builder

	// WithCategory adds the built-in products in category c.
	WithCategory(c model.Category) Builder

	// WithType adds the built-in products of type pt.
	WithType(pt model.ProductType) Builder

	// Build saves the products in insertion order and returns them.
	Build(ctx context.Context, store service.CatalogStore) (Products, error)
}

// Products is a collection of seeded test products.
type Products []model.Product

// Find returns the product with the given id, or nil.
func (p Products) Find(id string) *model.Product {
	for i := range p {
		if p[i].ID == id {
			return &p[i]
		}
	}
	return nil
}

// MustFind returns the product with the given id or fails the test.
func (p Products) MustFind(t *testing.T, id string) model.Product {
	t.Helper()
	found := p.Find(id)
	if found == nil {
		t.Fatalf("product %q not found in test data", id)
	}
	return *found
}

// IDs lists product ids in order.
func (p Products) IDs() []string {
	ids := make([]string, len(p))
	for i, product := range p {
		ids[i] = product.ID
	}
	return ids
}

type productBuilder struct {
	t        *testing.T
	index    map[string]int
	products []model.Product
}

// NewBuilder creates an empty builder for the given test.
func NewBuilder(t *testing.T) Builder {
	t.Helper()
	return &productBuilder{
		t:     t,
		index: make(map[string]int),
	}
}

func (b *productBuilder) WithProduct(p model.Product) Builder {
	if i, ok := b.index[p.ID]; ok {
		b.products[i] = p
		return b
	}
	b.index[p.ID] = len(b.products)
	b.products = append(b.products, p)
	return b
}

func (b *productBuilder) WithProducts(ps ...model.Product) Builder {
	for _, p := range ps {
		b.WithProduct(p)
	}
	return b
}

func (b *productBuilder) WithDefaultCatalog() Builder {
	return b.WithProducts(catalog.DefaultProducts()...)
}

func (b *productBuilder) WithCategory(c model.Category) Builder {
	return b.WithProducts(catalog.Default().ByCategory(c)...)
}

func (b *productBuilder) WithType(pt model.ProductType) Builder {
	return b.WithProducts(catalog.Default().ByType(pt)...)
}

func (b *productBuilder) Build(ctx context.Context, store service.CatalogStore) (Products, error) {
	b.t.Helper()

	if len(b.products) == 0 {
		return Products{}, nil
	}
	if err := store.SaveProducts(ctx, b.products); err != nil {
		return nil, fmt.Errorf("failed to seed products: %w", err)
	}

	out := make(Products, len(b.products))
	for i, p := range b.products {
		out[i] = p.Clone()
	}
	return out, nil
}
