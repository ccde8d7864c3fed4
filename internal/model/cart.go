package model

// Shipping policy.
const (
	FreeShippingThreshold = 5000
	StandardShippingFee   = 150
)

// CartItem is one cart line. A cart holds at most one item per product id.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns price times quantity.
func (i CartItem) LineTotal() int {
	return i.Product.Price * i.Quantity
}

// CartTotals summarizes the money owed for a cart.
type CartTotals struct {
	Subtotal int `json:"subtotal"`
	Shipping int `json:"shipping"`
	Total    int `json:"total"`
	Items    int `json:"items"`
}

// FreeShipping reports whether the shipping fee was waived.
func (t CartTotals) FreeShipping() bool {
	return t.Shipping == 0
}

// ComputeTotals applies the shipping policy to a set of cart items.
// Shipping is free only when the subtotal is strictly above the threshold.
func ComputeTotals(items []CartItem) CartTotals {
	var totals CartTotals
	for _, item := range items {
		totals.Subtotal += item.LineTotal()
		totals.Items += item.Quantity
	}
	if totals.Subtotal <= FreeShippingThreshold {
		totals.Shipping = StandardShippingFee
	}
	totals.Total = totals.Subtotal + totals.Shipping
	return totals
}
