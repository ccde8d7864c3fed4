package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Veraticus/axox-storefront/internal/model"
)

// QuoteReceipt acknowledges a quote request.
type QuoteReceipt struct {
	Reference string `json:"reference"`
}

func (s *Server) registerQuoteRoutes(g *echo.Group) {
	g.POST("/quotes", s.requestQuote)
}

func (s *Server) requestQuote(c echo.Context) error {
	var q model.QuoteRequest
	if err := c.Bind(&q); err != nil {
		return badRequest(c, "unable to parse quote request")
	}
	if err := q.Validate(); err != nil {
		return failErr(c, err)
	}

	ref := s.quoteRef()
	s.logger.Info("quote requested",
		"reference", ref,
		"product", q.Product,
		"quantity", q.Quantity,
		"emirate", q.Emirate)
	return c.JSON(http.StatusCreated, QuoteReceipt{Reference: ref})
}
