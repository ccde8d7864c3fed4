// Package service defines the interfaces shared between application layers.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/axox-storefront/internal/model"
)

// ProductFilter narrows catalog database queries.
type ProductFilter struct {
	Category *model.Category
	Type     *model.ProductType
	Limit    int
}

// CatalogStore defines the contract for the catalog database.
type CatalogStore interface {
	SaveProducts(ctx context.Context, products []model.Product) error
	ImportProducts(ctx context.Context, products []model.Product, onSaved func(model.Product)) error
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	GetProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	CountProducts(ctx context.Context) (int, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
