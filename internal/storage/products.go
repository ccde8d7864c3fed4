package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/Veraticus/axox-storefront/internal/model"
	"github.com/Veraticus/axox-storefront/internal/service"
)

const productColumns = `id, name, price, category, type, image, badge, description, highlights, usps, specs`

// SaveProducts upserts products in one transaction.
func (s *SQLiteStorage) SaveProducts(ctx context.Context, products []model.Product) error {
	return s.ImportProducts(ctx, products, nil)
}

// ImportProducts upserts products in one transaction, calling onSaved after
// each row is written. Nothing is committed unless every row succeeds.
func (s *SQLiteStorage) ImportProducts(ctx context.Context, products []model.Product, onSaved func(model.Product)) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProducts(products); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, p := range products {
			if err := s.saveProductTx(ctx, tx, p); err != nil {
				return err
			}
			if onSaved != nil {
				onSaved(p)
			}
		}
		return nil
	})
}

func (s *SQLiteStorage) saveProductTx(ctx context.Context, q queryable, p model.Product) error {
	highlights, err := json.Marshal(nonNil(p.Highlights))
	if err != nil {
		return fmt.Errorf("failed to encode highlights: %w", err)
	}
	usps, err := json.Marshal(nonNil(p.USPs))
	if err != nil {
		return fmt.Errorf("failed to encode usps: %w", err)
	}
	specs, err := json.Marshal(p.Specs)
	if err != nil {
		return fmt.Errorf("failed to encode specs: %w", err)
	}

	// ON CONFLICT keeps the rowid, so catalog order survives updates.
	_, err = q.ExecContext(ctx, `
		INSERT INTO products (`+productColumns+`, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			price = excluded.price,
			category = excluded.category,
			type = excluded.type,
			image = excluded.image,
			badge = excluded.badge,
			description = excluded.description,
			highlights = excluded.highlights,
			usps = excluded.usps,
			specs = excluded.specs,
			updated_at = CURRENT_TIMESTAMP
	`, p.ID, p.Name, p.Price, string(p.Category), string(p.Type), p.Image, p.Badge, p.Description,
		string(highlights), string(usps), string(specs))
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", p.ID, err)
	}
	return nil
}

// GetProduct retrieves a product by id.
func (s *SQLiteStorage) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	product, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %q: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProducts lists products in insertion order.
func (s *SQLiteStorage) GetProducts(ctx context.Context, filter service.ProductFilter) ([]model.Product, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if filter.Category != nil {
		where = append(where, "category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.Type != nil {
		where = append(where, "type = ?")
		args = append(args, string(*filter.Type))
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY rowid"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}

// DeleteProduct removes a product.
func (s *SQLiteStorage) DeleteProduct(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("product %q: %w", id, common.ErrNotFound)
	}
	return nil
}

// CountProducts returns the number of stored products.
func (s *SQLiteStorage) CountProducts(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

// LoadCatalog builds an in-memory catalog from every stored product.
func LoadCatalog(ctx context.Context, store service.CatalogStore) (*catalog.Catalog, error) {
	products, err := store.GetProducts(ctx, service.ProductFilter{})
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, common.NewUserError("catalog database is empty; run 'axox catalog import' first", common.ErrNotFound)
	}
	return catalog.New(products)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (model.Product, error) {
	var (
		p                       model.Product
		category, productType   string
		highlights, usps, specs string
	)

	err := row.Scan(&p.ID, &p.Name, &p.Price, &category, &productType, &p.Image, &p.Badge,
		&p.Description, &highlights, &usps, &specs)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, err
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to scan product: %w", err)
	}

	p.Category = model.Category(category)
	p.Type = model.ProductType(productType)

	if err := json.Unmarshal([]byte(highlights), &p.Highlights); err != nil {
		return model.Product{}, fmt.Errorf("product %s: failed to decode highlights: %w", p.ID, err)
	}
	if err := json.Unmarshal([]byte(usps), &p.USPs); err != nil {
		return model.Product{}, fmt.Errorf("product %s: failed to decode usps: %w", p.ID, err)
	}
	if err := json.Unmarshal([]byte(specs), &p.Specs); err != nil {
		return model.Product{}, fmt.Errorf("product %s: failed to decode specs: %w", p.ID, err)
	}

	return p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
