// Package model defines the core data structures for the storefront.
package model

import "fmt"

// Category groups products for browsing and comparison.
type Category string

// Category constants.
const (
	CategoryCardio      Category = "cardio"
	CategoryStrength    Category = "strength"
	CategoryWeight      Category = "weight"
	CategoryAccessories Category = "accessories"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryCardio,
	CategoryStrength,
	CategoryWeight,
	CategoryAccessories,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a user supplied string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// ProductType distinguishes home equipment from commercial equipment.
type ProductType string

// Product type constants.
const (
	TypeHome       ProductType = "home"
	TypeCommercial ProductType = "commercial"
)

// Valid reports whether t is a known product type.
func (t ProductType) Valid() bool {
	return t == TypeHome || t == TypeCommercial
}

// ParseProductType converts a user supplied string into a ProductType.
func ParseProductType(s string) (ProductType, error) {
	t := ProductType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown product type %q", s)
	}
	return t, nil
}
