package cart

import (
	"github.com/shopspring/decimal"

	"github.com/boardsandcats/storefront/internal/domain/catalog"
)

// Line is a single cart entry. A cart holds at most one line per product ID;
// quantity is always >= 1 (a mutation that would drive it to zero removes the
// line instead).
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal returns quantity * current product price.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the in-memory cart state. Lines keep insertion order, which is the
// display order. Count and Total are projections recomputed on every call;
// they are never stored, so they cannot drift from the lines.
//
// Cart is not safe for concurrent use; the owning manager serializes access.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add appends a line with quantity 1 for an unseen product, or increments the
// quantity of the existing line for it. Stock limits are not enforced here.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// Remove deletes the line for productID. Removing an absent product is a
// no-op, not an error.
func (c *Cart) Remove(productID int64) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity of the line for productID. A quantity of
// zero or less removes the line. Unknown products are ignored.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// ReplaceAll substitutes the whole cart content at once. Used when adopting
// the server cart during reconciliation.
func (c *Cart) ReplaceAll(lines []Line) {
	c.lines = make([]Line, len(lines))
	copy(c.lines, lines)
}

// Lines returns a copy of the cart content in display order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Total returns the sum of line subtotals at current product prices.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
