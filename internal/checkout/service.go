package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/uniformworks/portal-backend/internal/cart"
	"github.com/uniformworks/portal-backend/pkg/config"
	pkgerrors "github.com/uniformworks/portal-backend/pkg/errors"
	"github.com/uniformworks/portal-backend/pkg/pricing"
)

// Receipt is the result of a successful checkout submission. No order record
// is written; the orders collection is read-only history.
type Receipt struct {
	Reference  string        `json:"reference"`
	Quote      pricing.Quote `json:"quote"`
	TotalItems int           `json:"total_items"`
}

// Service prices and submits carts. Payment is simulated: submission waits a
// configured processing delay and then clears the cart.
type Service interface {
	Quote(c *cart.Cart) pricing.Quote
	Submit(ctx context.Context, c *cart.Cart) (*Receipt, error)
}

type service struct {
	policy pricing.Policy
	delay  time.Duration
}

// NewService builds a checkout service over the shared pricing policy.
func NewService(cfg config.CheckoutConfig, policy pricing.Policy) Service {
	return &service{policy: policy, delay: cfg.ProcessingDelay}
}

func (s *service) Quote(c *cart.Cart) pricing.Quote {
	return s.policy.Quote(c.TotalPrice())
}

func (s *service) Submit(ctx context.Context, c *cart.Cart) (*Receipt, error) {
	snap := c.Snapshot()
	if snap.TotalItems == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot check out an empty cart")
	}

	quote := s.policy.Quote(snap.TotalPrice)

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, pkgerrors.Wrap(pkgerrors.CodeTimeout, ctx.Err(), "checkout processing interrupted")
		}
	}

	receipt := &Receipt{
		Reference:  newReference(),
		Quote:      quote,
		TotalItems: snap.TotalItems,
	}
	// Only the quantities on the receipt leave the cart. Lines added while
	// the processing delay ran stay behind for the next submission.
	c.RemoveQuantities(snap.Items)
	return receipt, nil
}

// newReference mints an ORD-style order reference, unique per submission.
func newReference() string {
	id := strings.ToUpper(uuid.NewString())
	return fmt.Sprintf("ORD-%s", id[:8])
}
