package model

// Currency is the display currency for all prices.
const Currency = "AED"

// Specs holds the sparse technical attributes of a product.
// Empty fields mean the attribute is not published.
type Specs struct {
	Motor    string `json:"motor,omitempty" yaml:"motor,omitempty"`
	Speed    string `json:"speed,omitempty" yaml:"speed,omitempty"`
	Capacity string `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Warranty string `json:"warranty,omitempty" yaml:"warranty,omitempty"`
}

// SpecField names one comparable spec attribute.
type SpecField string

// Comparable spec fields, in display order.
const (
	SpecMotor    SpecField = "motor"
	SpecSpeed    SpecField = "speed"
	SpecCapacity SpecField = "capacity"
	SpecWarranty SpecField = "warranty"
)

// CompareFields is the fixed set of specs shown side by side.
var CompareFields = []SpecField{SpecMotor, SpecSpeed, SpecCapacity, SpecWarranty}

// Value returns the spec value for field, or "" when unset.
func (s Specs) Value(field SpecField) string {
	switch field {
	case SpecMotor:
		return s.Motor
	case SpecSpeed:
		return s.Speed
	case SpecCapacity:
		return s.Capacity
	case SpecWarranty:
		return s.Warranty
	}
	return ""
}

// Product is an immutable catalog entry.
type Product struct {
	Specs       Specs       `json:"specs" yaml:"specs"`
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Category    Category    `json:"category" yaml:"category"`
	Type        ProductType `json:"type" yaml:"type"`
	Image       string      `json:"image" yaml:"image"`
	Badge       string      `json:"badge,omitempty" yaml:"badge,omitempty"`
	Description string      `json:"description" yaml:"description"`
	Highlights  []string    `json:"highlights" yaml:"highlights"`
	USPs        []string    `json:"usps" yaml:"usps"`
	Price       int         `json:"price" yaml:"price"`
}

// Clone returns a deep copy so callers cannot alias catalog slices.
func (p Product) Clone() Product {
	c := p
	c.Highlights = append([]string(nil), p.Highlights...)
	c.USPs = append([]string(nil), p.USPs...)
	return c
}

// IsCommercial reports whether the product is commercial grade.
func (p Product) IsCommercial() bool {
	return p.Type == TypeCommercial
}
