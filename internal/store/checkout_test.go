package store

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/Veraticus/axox-storefront/internal/model"
)

type sequentialIDs struct {
	n int
}

func (s *sequentialIDs) NextOrderID() string {
	s.n++
	return "ORD-" + strconv.Itoa(s.n)
}

func TestCheckout(t *testing.T) {
	s := New()
	require.NoError(t, s.AddToCart(product(t, "kettlebell-set"), 2))
	s.SetCartOpen(true)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	order, err := s.Checkout(&sequentialIDs{}, now)
	require.NoError(t, err)

	assert.Equal(t, "ORD-1", order.ID)
	assert.Equal(t, model.OrderProcessing, order.Status)
	assert.Equal(t, now, order.Date)
	assert.Equal(t, 2*1299+model.StandardShippingFee, order.Total)
	require.Len(t, order.Items, 1)

	assert.Empty(t, s.Cart())
	assert.False(t, s.IsCartOpen())
	assert.Equal(t, []model.Order{order}, s.Orders())
}

func TestCheckoutPrependsOrders(t *testing.T) {
	s := New()
	ids := &sequentialIDs{}

	require.NoError(t, s.AddToCart(product(t, "rx-200"), 1))
	_, err := s.Checkout(ids, time.Now())
	require.NoError(t, err)

	require.NoError(t, s.AddToCart(product(t, "sx-300"), 1))
	_, err = s.Checkout(ids, time.Now())
	require.NoError(t, err)

	orders := s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-2", orders[0].ID)
	assert.Equal(t, "ORD-1", orders[1].ID)
}

func TestCheckoutEmptyCart(t *testing.T) {
	s := New()
	_, err := s.Checkout(&sequentialIDs{}, time.Now())
	assert.ErrorIs(t, err, common.ErrEmptyCart)
	assert.Empty(t, s.Orders())
}

func TestSnowflakeOrderIDs(t *testing.T) {
	ids, err := NewSnowflakeOrderIDs(1)
	require.NoError(t, err)

	a := ids.NextOrderID()
	b := ids.NextOrderID()
	assert.True(t, strings.HasPrefix(a, "AX-"))
	assert.NotEqual(t, a, b)

	_, err = NewSnowflakeOrderIDs(5000)
	assert.Error(t, err)
}
