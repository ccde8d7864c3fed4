// Package store holds per-session shopping state: cart, wishlist, compare
// selection, signed-in user and order history.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/Veraticus/axox-storefront/internal/model"
)

// CompareCapacity is the maximum number of products in the compare set.
const CompareCapacity = 2

// Store owns one shopping session. All methods are safe for concurrent use;
// each mutation is applied atomically and is immediately visible.
type Store struct {
	lastTouched time.Time
	user        *model.User
	cart        []model.CartItem
	wishlist    []model.Product
	compare     []model.Product
	orders      []model.Order
	mu          sync.RWMutex
	cartOpen    bool
}

// New creates an empty session store.
func New() *Store {
	return &Store{lastTouched: time.Now()}
}

// Snapshot is a read-only copy of a session's state.
type Snapshot struct {
	User     *model.User      `json:"user"`
	Cart     []model.CartItem `json:"cart"`
	Wishlist []model.Product  `json:"wishlist"`
	Compare  []model.Product  `json:"compare"`
	Orders   []model.Order    `json:"orders"`
	Totals   model.CartTotals `json:"totals"`
	CartOpen bool             `json:"isCartOpen"`
}

// Snapshot copies the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var user *model.User
	if s.user != nil {
		u := *s.user
		user = &u
	}

	cart := cloneCart(s.cart)
	return Snapshot{
		User:     user,
		Cart:     cart,
		Wishlist: cloneProducts(s.wishlist),
		Compare:  cloneProducts(s.compare),
		Orders:   append([]model.Order{}, s.orders...),
		Totals:   model.ComputeTotals(cart),
		CartOpen: s.cartOpen,
	}
}

// AddToCart adds quantity units of product. An existing line for the same
// product id has its quantity increased; otherwise a new line is appended.
func (s *Store) AddToCart(product model.Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", common.ErrInvalidQuantity, quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	for i := range s.cart {
		if s.cart[i].Product.ID == product.ID {
			s.cart[i].Quantity += quantity
			return nil
		}
	}
	s.cart = append(s.cart, model.CartItem{Product: product.Clone(), Quantity: quantity})
	return nil
}

// RemoveFromCart drops the line for productID. Unknown ids are ignored.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.cart = removeCartItem(s.cart, productID)
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line. Unknown ids are ignored.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if quantity <= 0 {
		s.cart = removeCartItem(s.cart, productID)
		return
	}
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart[i].Quantity = quantity
			return
		}
	}
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.cart = nil
}

// Cart returns a copy of the cart lines.
func (s *Store) Cart() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCart(s.cart)
}

// Totals returns subtotal, shipping and total for the current cart.
func (s *Store) Totals() model.CartTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.ComputeTotals(s.cart)
}

// ToggleCart flips the cart drawer flag and returns the new value.
func (s *Store) ToggleCart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.cartOpen = !s.cartOpen
	return s.cartOpen
}

// SetCartOpen sets the cart drawer flag.
func (s *Store) SetCartOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.cartOpen = open
}

// IsCartOpen reports the cart drawer flag.
func (s *Store) IsCartOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartOpen
}

// AddToWishlist adds product unless it is already present.
func (s *Store) AddToWishlist(product model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if indexOf(s.wishlist, product.ID) >= 0 {
		return
	}
	s.wishlist = append(s.wishlist, product.Clone())
}

// RemoveFromWishlist removes productID if present.
func (s *Store) RemoveFromWishlist(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.wishlist = removeProduct(s.wishlist, productID)
}

// IsInWishlist reports whether productID is wishlisted.
func (s *Store) IsInWishlist(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOf(s.wishlist, productID) >= 0
}

// Wishlist returns the wishlist in insertion order.
func (s *Store) Wishlist() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.wishlist)
}

// AddToCompare inserts product into the compare set.
//
// Adding a product already in the set is a no-op. A product whose category
// differs from the first member is rejected with common.ErrCategoryMismatch and
// the set is left unchanged. When the set is full the oldest member is evicted.
func (s *Store) AddToCompare(product model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if indexOf(s.compare, product.ID) >= 0 {
		return nil
	}
	if !canCompare(s.compare, product) {
		return fmt.Errorf("%w: %s is %s, selection is %s",
			common.ErrCategoryMismatch, product.ID, product.Category, s.compare[0].Category)
	}
	if len(s.compare) >= CompareCapacity {
		s.compare = append([]model.Product{}, s.compare[len(s.compare)-CompareCapacity+1:]...)
	}
	s.compare = append(s.compare, product.Clone())
	return nil
}

// CanCompare reports whether product may join the compare set: the set is
// empty or its first member shares product's category.
func (s *Store) CanCompare(product model.Product) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return canCompare(s.compare, product)
}

// RemoveFromCompare removes productID from the compare set.
func (s *Store) RemoveFromCompare(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.compare = removeProduct(s.compare, productID)
}

// ClearCompare empties the compare set.
func (s *Store) ClearCompare() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.compare = nil
}

// Compare returns the compare set, oldest first.
func (s *Store) Compare() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.compare)
}

// SetUser replaces the signed-in user. Nil signs out.
func (s *Store) SetUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if user == nil {
		s.user = nil
		return
	}
	u := *user
	s.user = &u
}

// User returns the signed-in user, if any.
func (s *Store) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// AddOrder prepends order so the history is most recent first.
func (s *Store) AddOrder(order model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.orders = append([]model.Order{order}, s.orders...)
}

// Orders returns the order history, most recent first.
func (s *Store) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Order{}, s.orders...)
}

// LastTouched returns when the session was last mutated.
func (s *Store) LastTouched() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastTouched
}

func (s *Store) touch() {
	s.lastTouched = time.Now()
}

func canCompare(set []model.Product, product model.Product) bool {
	if len(set) == 0 {
		return true
	}
	return set[0].Category == product.Category
}

func indexOf(products []model.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func removeProduct(products []model.Product, id string) []model.Product {
	out := products[:0:0]
	for _, p := range products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func removeCartItem(items []model.CartItem, id string) []model.CartItem {
	out := items[:0:0]
	for _, item := range items {
		if item.Product.ID != id {
			out = append(out, item)
		}
	}
	return out
}

func cloneProducts(products []model.Product) []model.Product {
	out := make([]model.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

func cloneCart(items []model.CartItem) []model.CartItem {
	out := make([]model.CartItem, len(items))
	for i, item := range items {
		out[i] = model.CartItem{Product: item.Product.Clone(), Quantity: item.Quantity}
	}
	return out
}
