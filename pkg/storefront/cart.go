package storefront

import (
	"fmt"

	"github.com/teavault/storefront-analytics/pkg/analytics"
)

// Cart is the in-memory cart counter behind the header badge. There is no
// persistence and no inventory; the analytics event is the point.
type Cart struct {
	emitter *analytics.Emitter
	items   int
}

func NewCart(emitter *analytics.Emitter) *Cart {
	return &Cart{emitter: emitter}
}

// Add records the add_to_cart event and bumps the badge counter.
func (c *Cart) Add(p Product) {
	c.emitter.TrackAddToCart(p.LineItem())
	c.items++
}

func (c *Cart) Items() int {
	return c.items
}

// Checkout is a stub. The message mirrors the alert the page shows; no
// payment flow exists behind it.
func (c *Cart) Checkout() string {
	return fmt.Sprintf(
		"Checkout is not available yet. You have %d item(s) in your cart.",
		c.items,
	)
}
