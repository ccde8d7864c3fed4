// Package storage provides the SQLite catalog database.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrEmptySlice     = errors.New("slice cannot be empty")
	ErrInvalidProduct = errors.New("invalid product")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateProduct(p model.Product) error {
	if err := catalog.Validate(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}
	return nil
}

func validateProducts(products []model.Product) error {
	if len(products) == 0 {
		return fmt.Errorf("%w: products", ErrEmptySlice)
	}
	for i, p := range products {
		if err := validateProduct(p); err != nil {
			return fmt.Errorf("product at index %d: %w", i, err)
		}
	}
	return nil
}
