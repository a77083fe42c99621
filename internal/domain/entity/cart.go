package entity

import (
	"encoding/json"
	"maps"
	"strconv"
)

// Variant maps an option name to the chosen value, e.g. {"size": "100ml"}
type Variant map[string]string

// CartLine is one distinct (product, variant) pair in the cart
type CartLine struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Variant  Variant `json:"variant"`
	Quantity int     `json:"quantity"`
}

// CartLineID derives the line identity from the product id and variant.
// encoding/json writes map keys sorted, so equal variants always yield
// equal ids.
func CartLineID(productID int64, variant Variant) string {
	if variant == nil {
		variant = Variant{}
	}
	raw, err := json.Marshal(variant)
	if err != nil {
		raw = []byte("{}")
	}

	return strconv.FormatInt(productID, 10) + "-" + string(raw)
}

// Clone returns a copy that shares no map or slice with l
func (l CartLine) Clone() CartLine {
	l.Product = l.Product.Clone()
	l.Variant = maps.Clone(l.Variant)

	return l
}

// Subtotal is price times quantity for the line
func (l CartLine) Subtotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// CartSummary is the cart with its derived aggregates
type CartSummary struct {
	Lines      []CartLine `json:"lines"`
	TotalPrice int64      `json:"totalPrice"`
	TotalItems int        `json:"totalItems"`
	DrawerOpen bool       `json:"drawerOpen"`
}
