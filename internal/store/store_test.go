package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/Veraticus/axox-storefront/internal/model"
)

func product(t *testing.T, id string) model.Product {
	t.Helper()
	p, ok := catalog.Default().ByID(id)
	require.True(t, ok, "product %s missing from catalog", id)
	return p
}

func compareIDs(s *Store) []string {
	var out []string
	for _, p := range s.Compare() {
		out = append(out, p.ID)
	}
	return out
}

func TestAddToCartMergesQuantities(t *testing.T) {
	tests := []struct {
		name string
		q1   int
		q2   int
	}{
		{name: "one and one", q1: 1, q2: 1},
		{name: "uneven", q1: 2, q2: 5},
		{name: "large", q1: 10, q2: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			p := product(t, "ax-9000")

			require.NoError(t, s.AddToCart(p, tt.q1))
			require.NoError(t, s.AddToCart(p, tt.q2))

			cart := s.Cart()
			require.Len(t, cart, 1)
			assert.Equal(t, "ax-9000", cart[0].Product.ID)
			assert.Equal(t, tt.q1+tt.q2, cart[0].Quantity)
		})
	}
}

func TestAddToCartAppendsNewLines(t *testing.T) {
	s := New()
	require.NoError(t, s.AddToCart(product(t, "ax-9000"), 1))
	require.NoError(t, s.AddToCart(product(t, "kettlebell-set"), 2))
	require.NoError(t, s.AddToCart(product(t, "ax-9000"), 1))

	cart := s.Cart()
	require.Len(t, cart, 2)
	assert.Equal(t, "ax-9000", cart[0].Product.ID)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, "kettlebell-set", cart[1].Product.ID)
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	s := New()
	err := s.AddToCart(product(t, "ax-9000"), 0)
	assert.ErrorIs(t, err, common.ErrInvalidQuantity)
	assert.Empty(t, s.Cart())
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("zero removes the line", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddToCart(product(t, "ax-9000"), 1))
		require.NoError(t, s.AddToCart(product(t, "rx-200"), 1))
		before := len(s.Cart())

		s.UpdateQuantity("ax-9000", 0)

		cart := s.Cart()
		assert.Len(t, cart, before-1)
		assert.Equal(t, "rx-200", cart[0].Product.ID)
	})

	t.Run("negative removes the line", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddToCart(product(t, "ax-9000"), 3))
		s.UpdateQuantity("ax-9000", -2)
		assert.Empty(t, s.Cart())
	})

	t.Run("positive sets without merging", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddToCart(product(t, "ax-9000"), 3))
		s.UpdateQuantity("ax-9000", 7)
		assert.Equal(t, 7, s.Cart()[0].Quantity)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddToCart(product(t, "ax-9000"), 1))
		s.UpdateQuantity("missing", 4)
		s.UpdateQuantity("missing", 0)
		require.Len(t, s.Cart(), 1)
		assert.Equal(t, 1, s.Cart()[0].Quantity)
	})
}

func TestRemoveAndClearCart(t *testing.T) {
	s := New()
	require.NoError(t, s.AddToCart(product(t, "ax-9000"), 1))
	require.NoError(t, s.AddToCart(product(t, "rx-200"), 1))

	s.RemoveFromCart("missing")
	assert.Len(t, s.Cart(), 2)

	s.RemoveFromCart("ax-9000")
	assert.Len(t, s.Cart(), 1)

	s.ClearCart()
	assert.Empty(t, s.Cart())
}

func TestCartTotals(t *testing.T) {
	s := New()
	require.NoError(t, s.AddToCart(product(t, "kettlebell-set"), 1))
	totals := s.Totals()
	assert.Equal(t, 1299, totals.Subtotal)
	assert.Equal(t, model.StandardShippingFee, totals.Shipping)

	require.NoError(t, s.AddToCart(product(t, "ax-9000"), 1))
	totals = s.Totals()
	assert.Equal(t, 14298, totals.Total)
	assert.True(t, totals.FreeShipping())
}

func TestCartDrawerFlag(t *testing.T) {
	s := New()
	assert.False(t, s.IsCartOpen())
	assert.True(t, s.ToggleCart())
	assert.False(t, s.ToggleCart())
	s.SetCartOpen(true)
	assert.True(t, s.IsCartOpen())
}

func TestWishlistSetSemantics(t *testing.T) {
	s := New()
	p := product(t, "ex-550")

	before := s.Wishlist()
	s.AddToWishlist(p)
	s.AddToWishlist(p)
	assert.Len(t, s.Wishlist(), 1)
	assert.True(t, s.IsInWishlist("ex-550"))

	s.RemoveFromWishlist(p.ID)
	s.RemoveFromWishlist(p.ID)
	assert.Equal(t, before, s.Wishlist())
	assert.False(t, s.IsInWishlist("ex-550"))
}

func TestWishlistPreservesInsertionOrder(t *testing.T) {
	s := New()
	s.AddToWishlist(product(t, "sx-300"))
	s.AddToWishlist(product(t, "ax-9000"))
	s.AddToWishlist(product(t, "sx-300"))

	wl := s.Wishlist()
	require.Len(t, wl, 2)
	assert.Equal(t, "sx-300", wl[0].ID)
	assert.Equal(t, "ax-9000", wl[1].ID)
}

func TestAddToCompareSlidingWindow(t *testing.T) {
	s := New()
	require.NoError(t, s.AddToCompare(product(t, "ax-9000")))
	require.NoError(t, s.AddToCompare(product(t, "ax-7000")))
	require.NoError(t, s.AddToCompare(product(t, "ex-550")))

	assert.Equal(t, []string{"ax-7000", "ex-550"}, compareIDs(s))
}

func TestAddToCompareIsIdempotent(t *testing.T) {
	s := New()
	require.NoError(t, s.AddToCompare(product(t, "ax-9000")))
	require.NoError(t, s.AddToCompare(product(t, "ax-7000")))
	require.NoError(t, s.AddToCompare(product(t, "ax-9000")))

	assert.Equal(t, []string{"ax-9000", "ax-7000"}, compareIDs(s))
}

func TestAddToCompareRejectsCategoryMismatch(t *testing.T) {
	s := New()
	require.NoError(t, s.AddToCompare(product(t, "ax-9000")))

	err := s.AddToCompare(product(t, "mx-800"))
	require.ErrorIs(t, err, common.ErrCategoryMismatch)
	assert.Equal(t, []string{"ax-9000"}, compareIDs(s))

	require.NoError(t, s.AddToCompare(product(t, "ax-7000")))
	err = s.AddToCompare(product(t, "kettlebell-set"))
	require.ErrorIs(t, err, common.ErrCategoryMismatch)
	assert.Equal(t, []string{"ax-9000", "ax-7000"}, compareIDs(s))
}

func TestCanCompare(t *testing.T) {
	samples := map[model.Category]string{
		model.CategoryCardio:      "ax-9000",
		model.CategoryStrength:    "mx-800",
		model.CategoryWeight:      "dumbbell-set",
		model.CategoryAccessories: "kettlebell-set",
	}

	for _, first := range model.Categories {
		for _, candidate := range model.Categories {
			s := New()
			cand := product(t, samples[candidate])
			assert.True(t, s.CanCompare(cand), "empty set accepts %s", candidate)

			require.NoError(t, s.AddToCompare(product(t, samples[first])))
			assert.Equal(t, first == candidate, s.CanCompare(cand),
				"first=%s candidate=%s", first, candidate)
		}
	}
}

func TestRemoveAndClearCompare(t *testing.T) {
	s := New()
	require.NoError(t, s.AddToCompare(product(t, "ax-9000")))
	require.NoError(t, s.AddToCompare(product(t, "ax-7000")))

	s.RemoveFromCompare("ax-9000")
	assert.Equal(t, []string{"ax-7000"}, compareIDs(s))

	s.ClearCompare()
	assert.Empty(t, s.Compare())
	assert.True(t, s.CanCompare(product(t, "mx-800")))
}

func TestUserAndOrders(t *testing.T) {
	s := New()
	_, ok := s.User()
	assert.False(t, ok)

	s.SetUser(&model.User{ID: "u1", Name: "Omar"})
	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "Omar", u.Name)

	s.SetUser(nil)
	_, ok = s.User()
	assert.False(t, ok)

	s.AddOrder(model.Order{ID: "first"})
	s.AddOrder(model.Order{ID: "second"})
	orders := s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "second", orders[0].ID)
	assert.Equal(t, "first", orders[1].ID)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New()
	require.NoError(t, s.AddToCart(product(t, "ax-9000"), 1))

	snap := s.Snapshot()
	snap.Cart[0].Quantity = 99
	snap.Cart[0].Product.Name = "changed"

	cart := s.Cart()
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, "Treadmill AX-9000", cart[0].Product.Name)
	assert.Equal(t, 12999, snap.Totals.Subtotal)
}
