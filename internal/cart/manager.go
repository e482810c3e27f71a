package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Manager hands out one cart per session id. Implementations must be safe for
// concurrent use across requests.
type Manager interface {
	Cart(sessionID string) *Cart
	Drop(sessionID string)
}

type manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewManager returns an in-memory session-keyed manager. Carts live for the
// process lifetime or until dropped; nothing is written to the store.
func NewManager() Manager {
	return &manager{carts: map[string]*Cart{}}
}

func (m *manager) Cart(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.carts[sessionID]
	if !ok {
		c = New()
		m.carts[sessionID] = c
	}
	return c
}

func (m *manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}

// Snapshot is the API shape for a cart read.
type Snapshot struct {
	Items      []Item          `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	IsOpen     bool            `json:"is_open"`
}

