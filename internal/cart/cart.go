package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// DefaultSize is the size token attached to lines added without an explicit
// size, so that "Polo" and "Polo (no size)" merge into the same line.
const DefaultSize = "default"

// Item is a single cart line. Lines are keyed by (ProductID, Size).
type Item struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

// Key identifies a cart line.
type Key struct {
	ProductID uint
	Size      string
}

func (k Key) normalized() Key {
	if k.Size == "" {
		k.Size = DefaultSize
	}
	return k
}

// Cart holds one session's in-memory cart state. It is never persisted and
// dies with the session. All methods are safe for concurrent use.
type Cart struct {
	mu     sync.Mutex
	items  []Item
	isOpen bool
}

// New returns an empty, closed cart.
func New() *Cart {
	return &Cart{}
}

// AddItem merges the given line into the cart. An existing line with the same
// product id and size has its quantity incremented; otherwise the line is
// appended. A non-positive quantity counts as 1. There is no upper cap and no
// stock check. The drawer flag is untouched; only Open and Close move it.
func (c *Cart) AddItem(item Item) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	if item.Size == "" {
		item.Size = DefaultSize
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == item.ProductID && c.items[i].Size == item.Size {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// RemoveItem drops the line with the given key. Removing a line that does not
// exist is a no-op.
func (c *Cart) RemoveItem(key Key) {
	key = key.normalized()

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == key.ProductID && c.items[i].Size == key.Size {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the exact quantity for a line. A quantity of zero or
// less removes the line instead. Updating an absent line is a no-op.
func (c *Cart) UpdateQuantity(key Key, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(key)
		return
	}
	key = key.normalized()

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == key.ProductID && c.items[i].Size == key.Size {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveQuantities subtracts the given quantities from their matching lines,
// dropping a line once it reaches zero. Quantity added to a line after the
// argument was captured survives as the difference.
func (c *Cart) RemoveQuantities(items []Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, taken := range items {
		for i := range c.items {
			if c.items[i].ProductID == taken.ProductID && c.items[i].Size == taken.Size {
				c.items[i].Quantity -= taken.Quantity
				if c.items[i].Quantity <= 0 {
					c.items = append(c.items[:i], c.items[i+1:]...)
				}
				break
			}
		}
	}
}

// Clear empties the cart. The drawer flag is left as is.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Open marks the cart drawer as open.
func (c *Cart) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isOpen = true
}

// Close marks the cart drawer as closed.
func (c *Cart) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isOpen = false
}

// IsOpen reports the drawer flag.
func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isOpen
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems is the sum of line quantities, not the number of lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums price times quantity over every line.
func (c *Cart) TotalPrice() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPriceLocked()
}

func (c *Cart) totalPriceLocked() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Snapshot captures lines and totals under a single lock acquisition.
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Item, len(c.items))
	copy(items, c.items)

	totalItems := 0
	for _, item := range c.items {
		totalItems += item.Quantity
	}
	return Snapshot{
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: c.totalPriceLocked(),
		IsOpen:     c.isOpen,
	}
}
