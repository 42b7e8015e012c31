// Package cart holds the session shopping cart: a reducer over line items
// plus an in-memory store keyed by session id. Line items snapshot the
// product at add time; later catalog changes do not rewrite them.
package cart

import "github.com/Jrgn63/keyking/models"

type Item struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Cart is an insertion-ordered set of line items, one per product id.
// Quantities are always positive and never exceed the snapshot's stock.
type Cart struct {
	items []Item
}

// AddItem inserts a line for the product with quantity 1, or bumps an
// existing line by one. The quantity is clamped to the snapshot's stock, so
// adding an out-of-stock product changes nothing.
func (c *Cart) AddItem(p models.Product) {
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			if c.items[i].Quantity < c.items[i].Product.Stock {
				c.items[i].Quantity++
			}
			return
		}
	}
	if p.Stock <= 0 {
		return
	}
	c.items = append(c.items, Item{Product: p, Quantity: 1})
}

// UpdateQuantity sets the line's quantity, clamped to [1, stock]. A quantity
// of zero or less removes the line. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			if quantity > c.items[i].Product.Stock {
				quantity = c.items[i].Product.Stock
			}
			if quantity < 1 {
				quantity = 1
			}
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line for the product id; no-op when absent.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear resets to the empty cart. Driven by the checkout-success signal.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Total is recomputed from the items on every read, so it can never drift
// from the line items.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Product.EffectivePrice() * float64(it.Quantity)
	}
	return total
}
