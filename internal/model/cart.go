package model

// CartItem represents a line item in the session cart. Price and display
// fields are copied from the product at add time so the cart (and any
// order snapshot taken from it) is self-contained.
type CartItem struct {
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand,omitempty"`
	Image        string  `json:"image,omitempty"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	SelectedSize string  `json:"selectedSize,omitempty"`
}

// CartView is the cart as returned to clients: items plus derived totals.
type CartView struct {
	Items  []CartItem  `json:"items"`
	Count  int         `json:"count"`
	Totals OrderTotals `json:"totals"`
}

// CartSubtotal sums price x quantity over the given items.
func CartSubtotal(items []CartItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// CartCount sums quantities over the given items.
func CartCount(items []CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
