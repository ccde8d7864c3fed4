package store

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/Veraticus/axox-storefront/internal/model"
)

// OrderIDs issues order identifiers.
type OrderIDs interface {
	NextOrderID() string
}

// SnowflakeOrderIDs issues time-ordered order ids such as "AX-1789...".
type SnowflakeOrderIDs struct {
	node *snowflake.Node
}

// NewSnowflakeOrderIDs creates an id source for the given node number (0-1023).
func NewSnowflakeOrderIDs(node int64) (*SnowflakeOrderIDs, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("failed to create order id node: %w", err)
	}
	return &SnowflakeOrderIDs{node: n}, nil
}

// NextOrderID returns a new unique order id.
func (g *SnowflakeOrderIDs) NextOrderID() string {
	return "AX-" + g.node.Generate().String()
}

// Checkout turns the cart into a processing order, records it at the head of
// the order history and empties the cart. Payment is not taken.
func (s *Store) Checkout(ids OrderIDs, now time.Time) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return model.Order{}, common.ErrEmptyCart
	}
	s.touch()

	items := cloneCart(s.cart)
	order := model.Order{
		ID:     ids.NextOrderID(),
		Date:   now,
		Status: model.OrderProcessing,
		Items:  items,
		Total:  model.ComputeTotals(items).Total,
	}

	s.orders = append([]model.Order{order}, s.orders...)
	s.cart = nil
	s.cartOpen = false
	return order, nil
}
