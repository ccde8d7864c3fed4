package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Veraticus/axox-storefront/internal/model"
	"github.com/Veraticus/axox-storefront/internal/store"
)

// SessionHeader carries the session id on every session route.
const SessionHeader = "X-Session-ID"

const sessionKey = "session"

type productRef struct {
	Quantity  *int   `json:"quantity,omitempty"`
	ProductID string `json:"productId"`
}

type quantityUpdate struct {
	Quantity *int `json:"quantity"`
}

// SessionCreated is returned when a session starts.
type SessionCreated struct {
	ID string `json:"id"`
}

func (s *Server) registerSessionRoutes(g *echo.Group) {
	sg := g.Group("/session")
	sg.POST("", s.createSession)

	// Everything else needs an existing session.
	mw := s.withSession
	sg.GET("", s.snapshot, mw)
	sg.DELETE("", s.endSession, mw)

	sg.POST("/cart", s.addToCart, mw)
	sg.PATCH("/cart/:id", s.updateQuantity, mw)
	sg.DELETE("/cart/:id", s.removeFromCart, mw)
	sg.DELETE("/cart", s.clearCart, mw)
	sg.POST("/cart/toggle", s.toggleCart, mw)

	sg.POST("/wishlist", s.addToWishlist, mw)
	sg.DELETE("/wishlist/:id", s.removeFromWishlist, mw)

	sg.GET("/compare", s.compareView, mw)
	sg.POST("/compare", s.addToCompare, mw)
	sg.DELETE("/compare/:id", s.removeFromCompare, mw)
	sg.DELETE("/compare", s.clearCompare, mw)

	sg.PUT("/user", s.setUser, mw)
	sg.DELETE("/user", s.clearUser, mw)
	sg.POST("/checkout", s.checkout, mw)
	sg.GET("/orders", s.orders, mw)
}

// withSession resolves the X-Session-ID header into a store.
func (s *Server) withSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := strings.TrimSpace(c.Request().Header.Get(SessionHeader))
		if id == "" {
			return fail(c, http.StatusBadRequest, CodeInvalidRequest, "missing "+SessionHeader+" header")
		}
		st, err := s.sessions.Get(id)
		if err != nil {
			return failErr(c, err)
		}
		c.Set(sessionKey, st)
		return next(c)
	}
}

func session(c echo.Context) *store.Store {
	st, _ := c.Get(sessionKey).(*store.Store)
	return st
}

func (s *Server) createSession(c echo.Context) error {
	id, _ := s.sessions.Create()
	c.Response().Header().Set(SessionHeader, id)
	return c.JSON(http.StatusCreated, SessionCreated{ID: id})
}

func (s *Server) endSession(c echo.Context) error {
	s.sessions.End(c.Request().Header.Get(SessionHeader))
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) snapshot(c echo.Context) error {
	return c.JSON(http.StatusOK, session(c).Snapshot())
}

func (s *Server) bindProduct(c echo.Context) (model.Product, *int, error) {
	var ref productRef
	if err := c.Bind(&ref); err != nil {
		return model.Product{}, nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	p, err := s.product(ref.ProductID)
	return p, ref.Quantity, err
}

func (s *Server) addToCart(c echo.Context) error {
	p, qty, err := s.bindProduct(c)
	if err != nil {
		return failErr(c, err)
	}
	quantity := 1
	if qty != nil {
		quantity = *qty
	}

	st := session(c)
	if err := st.AddToCart(p, quantity); err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, st.Snapshot())
}

func (s *Server) updateQuantity(c echo.Context) error {
	var body quantityUpdate
	if err := c.Bind(&body); err != nil || body.Quantity == nil {
		return badRequest(c, "quantity is required")
	}
	st := session(c)
	st.UpdateQuantity(c.Param("id"), *body.Quantity)
	return c.JSON(http.StatusOK, st.Snapshot())
}

func (s *Server) removeFromCart(c echo.Context) error {
	st := session(c)
	st.RemoveFromCart(c.Param("id"))
	return c.JSON(http.StatusOK, st.Snapshot())
}

func (s *Server) clearCart(c echo.Context) error {
	st := session(c)
	st.ClearCart()
	return c.JSON(http.StatusOK, st.Snapshot())
}

func (s *Server) toggleCart(c echo.Context) error {
	open := session(c).ToggleCart()
	return c.JSON(http.StatusOK, map[string]bool{"isCartOpen": open})
}

func (s *Server) addToWishlist(c echo.Context) error {
	p, _, err := s.bindProduct(c)
	if err != nil {
		return failErr(c, err)
	}
	st := session(c)
	st.AddToWishlist(p)
	return c.JSON(http.StatusOK, st.Snapshot())
}

func (s *Server) removeFromWishlist(c echo.Context) error {
	st := session(c)
	st.RemoveFromWishlist(c.Param("id"))
	return c.JSON(http.StatusOK, st.Snapshot())
}

func (s *Server) compareView(c echo.Context) error {
	return c.JSON(http.StatusOK, store.NewCompareView(session(c).Compare()))
}

func (s *Server) addToCompare(c echo.Context) error {
	p, _, err := s.bindProduct(c)
	if err != nil {
		return failErr(c, err)
	}
	st := session(c)
	if err := st.AddToCompare(p); err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, store.NewCompareView(st.Compare()))
}

func (s *Server) removeFromCompare(c echo.Context) error {
	st := session(c)
	st.RemoveFromCompare(c.Param("id"))
	return c.JSON(http.StatusOK, store.NewCompareView(st.Compare()))
}

func (s *Server) clearCompare(c echo.Context) error {
	st := session(c)
	st.ClearCompare()
	return c.JSON(http.StatusOK, store.NewCompareView(st.Compare()))
}

func (s *Server) setUser(c echo.Context) error {
	var u model.User
	if err := c.Bind(&u); err != nil {
		return badRequest(c, "unable to parse user")
	}
	if strings.TrimSpace(u.Name) == "" || strings.TrimSpace(u.Email) == "" {
		return badRequest(c, "name and email are required")
	}
	st := session(c)
	st.SetUser(&u)
	return c.JSON(http.StatusOK, st.Snapshot())
}

func (s *Server) clearUser(c echo.Context) error {
	st := session(c)
	st.SetUser(nil)
	return c.JSON(http.StatusOK, st.Snapshot())
}

func (s *Server) checkout(c echo.Context) error {
	order, err := session(c).Checkout(s.orderIDs, s.now())
	if err != nil {
		return failErr(c, err)
	}
	s.logger.Info("order placed", "order_id", order.ID, "total", order.Total, "items", len(order.Items))
	return c.JSON(http.StatusCreated, order)
}

func (s *Server) orders(c echo.Context) error {
	orders := session(c).Orders()
	if orders == nil {
		orders = []model.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}
