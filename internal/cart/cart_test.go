package cart

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

func polo(size string) Item {
	return Item{ProductID: 1, Name: "Polo Shirt - Navy", Price: decimal.NewFromInt(45), Size: size}
}

func TestAddItemFirstLine(t *testing.T) {
	c := New()
	c.AddItem(polo(""))

	if got := c.TotalItems(); got != 1 {
		t.Fatalf("expected 1 item, got %d", got)
	}
	if got := c.TotalPrice(); !got.Equal(decimal.NewFromInt(45)) {
		t.Fatalf("expected total 45, got %s", got)
	}
}

func TestAddItemLeavesDrawerClosed(t *testing.T) {
	c := New()
	c.AddItem(polo(""))

	if c.IsOpen() {
		t.Fatal("only Open and Close move the drawer flag")
	}
}

func TestAddItemMergesOnSameKey(t *testing.T) {
	c := New()
	c.AddItem(polo(""))
	c.AddItem(polo(""))

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
	if got := c.TotalPrice(); !got.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("expected total 90, got %s", got)
	}
}

func TestAddItemDistinctSizeIsSeparateLine(t *testing.T) {
	c := New()
	c.AddItem(polo(""))
	c.AddItem(polo(""))
	c.AddItem(polo("M"))

	if got := len(c.Items()); got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
	if got := c.TotalItems(); got != 3 {
		t.Fatalf("expected 3 total items, got %d", got)
	}
}

func TestMissingSizeMergesWithDefaultToken(t *testing.T) {
	c := New()
	c.AddItem(polo(""))
	c.AddItem(polo(DefaultSize))

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("blank size and the default token should share a line, got %d lines", len(items))
	}
	if items[0].Size != DefaultSize {
		t.Fatalf("expected stored size %q, got %q", DefaultSize, items[0].Size)
	}
}

func TestAddItemLargeQuantityUncapped(t *testing.T) {
	c := New()
	item := polo("")
	item.Quantity = 500
	c.AddItem(item)

	if got := c.TotalItems(); got != 500 {
		t.Fatalf("expected 500, got %d", got)
	}
}

func TestRemoveItemByCompositeKey(t *testing.T) {
	c := New()
	c.AddItem(polo(""))
	c.AddItem(polo("M"))

	c.RemoveItem(Key{ProductID: 1, Size: "M"})

	items := c.Items()
	if len(items) != 1 || items[0].Size != DefaultSize {
		t.Fatalf("expected only the default-size line to remain, got %+v", items)
	}
}

func TestRemoveAbsentItemIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(polo(""))

	c.RemoveItem(Key{ProductID: 99, Size: "M"})

	if got := c.TotalItems(); got != 1 {
		t.Fatalf("expected cart untouched, got %d items", got)
	}
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	c := New()
	c.AddItem(polo(""))

	c.UpdateQuantity(Key{ProductID: 1}, 7)

	if got := c.TotalItems(); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(polo(""))

	c.UpdateQuantity(Key{ProductID: 1}, 0)

	if got := len(c.Items()); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
}

func TestUpdateQuantityNegativeRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(polo("M"))

	c.UpdateQuantity(Key{ProductID: 1, Size: "M"}, -3)

	if got := len(c.Items()); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
}

func TestRemoveQuantitiesKeepsSurplus(t *testing.T) {
	c := New()
	c.AddItem(polo(""))
	c.AddItem(polo("M"))

	snap := c.Snapshot()

	// Quantity arriving after the snapshot must survive the subtraction.
	c.AddItem(polo(""))

	c.RemoveQuantities(snap.Items)

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("expected only the surplus line, got %+v", items)
	}
	if items[0].Size != DefaultSize || items[0].Quantity != 1 {
		t.Fatalf("expected one surplus default-size unit, got %+v", items[0])
	}
}

func TestRemoveQuantitiesDropsExhaustedLines(t *testing.T) {
	c := New()
	c.AddItem(polo(""))

	c.RemoveQuantities(c.Snapshot().Items)

	if got := len(c.Items()); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
}

func TestClearKeepsDrawerState(t *testing.T) {
	c := New()
	c.AddItem(polo(""))
	c.Open()

	c.Clear()

	if got := c.TotalItems(); got != 0 {
		t.Fatalf("expected empty cart, got %d", got)
	}
	if !c.IsOpen() {
		t.Fatal("clear should not touch the drawer flag")
	}
}

func TestOpenCloseDrawer(t *testing.T) {
	c := New()
	c.Open()
	if !c.IsOpen() {
		t.Fatal("expected open")
	}
	c.Close()
	if c.IsOpen() {
		t.Fatal("expected closed")
	}
}

func TestSnapshotIsConsistent(t *testing.T) {
	c := New()
	c.AddItem(polo(""))
	c.AddItem(polo("M"))

	snap := c.Snapshot()
	if snap.TotalItems != 2 {
		t.Fatalf("expected 2 items, got %d", snap.TotalItems)
	}
	if !snap.TotalPrice.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("expected total 90, got %s", snap.TotalPrice)
	}
	if len(snap.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(snap.Items))
	}

	// Mutating the snapshot must not leak into the cart.
	snap.Items[0].Quantity = 999
	if got := c.TotalItems(); got != 2 {
		t.Fatalf("snapshot mutation leaked into the cart: %d", got)
	}
}

func TestConcurrentAdds(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.AddItem(polo(""))
		}()
	}
	wg.Wait()

	if got := c.TotalItems(); got != 50 {
		t.Fatalf("expected 50 merged adds, got %d", got)
	}
	if got := len(c.Items()); got != 1 {
		t.Fatalf("expected a single line, got %d", got)
	}
}

func TestManagerScopesCartsPerSession(t *testing.T) {
	m := NewManager()

	m.Cart("alpha").AddItem(polo(""))

	if got := m.Cart("beta").TotalItems(); got != 0 {
		t.Fatalf("sessions must not share carts, got %d", got)
	}
	if got := m.Cart("alpha").TotalItems(); got != 1 {
		t.Fatalf("expected alpha's cart preserved, got %d", got)
	}

	m.Drop("alpha")
	if got := m.Cart("alpha").TotalItems(); got != 0 {
		t.Fatalf("dropped session should start fresh, got %d", got)
	}
}
