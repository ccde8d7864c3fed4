// Package testutil provides test helpers shared across packages.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/model"
	"github.com/Veraticus/axox-storefront/internal/service"
	"github.com/Veraticus/axox-storefront/internal/storage"
	"github.com/Veraticus/axox-storefront/internal/testutil/products"
)

// TestDB represents a seeded test catalog database.
type TestDB struct {
	Storage  service.CatalogStore
	t        *testing.T
	Products products.Products
}

// SetupTestDB creates a migrated in-memory catalog database holding ps.
func SetupTestDB(t *testing.T, ps ...products.Products) *TestDB {
	t.Helper()

	return SetupTestDBWithBuilder(t, func(b products.Builder) products.Builder {
		for _, set := range ps {
			b = b.WithProducts(set...)
		}
		return b
	})
}

// SetupTestDBWithBuilder creates a test database seeded through a product builder.
//
// Example:
//
//	db := testutil.SetupTestDBWithBuilder(t, func(b products.Builder) products.Builder {
//		return b.WithDefaultCatalog()
//	})
func SetupTestDBWithBuilder(t *testing.T, configure func(products.Builder) products.Builder) *TestDB {
	t.Helper()

	builder := products.NewBuilder(t)
	if configure != nil {
		builder = configure(builder)
	}

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	seeded, err := builder.Build(ctx, store)
	if err != nil {
		t.Fatalf("failed to build products: %v", err)
	}

	return &TestDB{
		Storage:  store,
		Products: seeded,
		t:        t,
	}
}

// MustGetProduct returns a seeded product or fails the test.
func (db *TestDB) MustGetProduct(id string) model.Product {
	db.t.Helper()
	return db.Products.MustFind(db.t, id)
}

// Catalog loads the database contents into an in-memory catalog.
func (db *TestDB) Catalog() *catalog.Catalog {
	db.t.Helper()

	cat, err := storage.LoadCatalog(context.Background(), db.Storage)
	if err != nil {
		db.t.Fatalf("failed to load catalog: %v", err)
	}
	return cat
}
