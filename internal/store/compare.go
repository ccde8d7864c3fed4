package store

import "github.com/Veraticus/axox-storefront/internal/model"

// CompareState classifies a compare selection for display.
type CompareState string

// Compare states.
const (
	CompareEmpty    CompareState = "empty"
	CompareSingle   CompareState = "single"
	CompareMismatch CompareState = "category_mismatch"
	CompareReady    CompareState = "ready"
)

// NotAvailable is shown for specs a product does not publish.
const NotAvailable = "N/A"

// SpecRow is one line of the side-by-side comparison.
type SpecRow struct {
	Field  model.SpecField `json:"field"`
	Values []string        `json:"values"`
}

// CompareView is the presentation of a compare selection.
type CompareView struct {
	State    CompareState    `json:"state"`
	Products []model.Product `json:"products"`
	Rows     []SpecRow       `json:"rows,omitempty"`
}

// NewCompareView classifies products and, for a valid pair, builds spec rows.
// The category check is repeated here so any selection, however it was built,
// is reported as a mismatch rather than compared.
func NewCompareView(products []model.Product) CompareView {
	view := CompareView{Products: products}

	switch {
	case len(products) == 0:
		view.State = CompareEmpty
	case len(products) == 1:
		view.State = CompareSingle
	case products[0].Category != products[1].Category:
		view.State = CompareMismatch
	default:
		view.State = CompareReady
		view.Rows = specRows(products)
	}

	return view
}

func specRows(products []model.Product) []SpecRow {
	rows := make([]SpecRow, 0, len(model.CompareFields))
	for _, field := range model.CompareFields {
		row := SpecRow{Field: field, Values: make([]string, len(products))}
		for i, p := range products {
			v := p.Specs.Value(field)
			if v == "" {
				v = NotAvailable
			}
			row.Values[i] = v
		}
		rows = append(rows, row)
	}
	return rows
}
