package domain

// Line is one menu item plus its ordered quantity within a cart.
// UnitPrice is in minor units. Quantity is always >= 1 on a stored line;
// mutations that would drop it to zero remove the line instead.
type Line struct {
	ItemID    int    `json:"itemId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// Cart holds the session's pre-order lines in insertion order.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add appends the item with quantity 1, or increments the existing line for
// the same item id.
func (c *Cart) Add(itemID int, name string, unitPrice int64) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, Line{ItemID: itemID, Name: name, UnitPrice: unitPrice, Quantity: 1})
}

// SetQuantity replaces the quantity of the line for itemID. A quantity of
// zero or less removes the line. Unknown ids are ignored.
func (c *Cart) SetQuantity(itemID, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Remove filters the line out. Removing an absent id is a no-op.
func (c *Cart) Remove(itemID int) {
	kept := c.Lines[:0]
	for _, line := range c.Lines {
		if line.ItemID != itemID {
			kept = append(kept, line)
		}
	}
	c.Lines = kept
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Quantity returns the stored quantity for itemID, zero when absent.
func (c *Cart) Quantity(itemID int) int {
	for _, line := range c.Lines {
		if line.ItemID == itemID {
			return line.Quantity
		}
	}
	return 0
}
