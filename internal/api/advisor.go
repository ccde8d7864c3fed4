package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Veraticus/axox-storefront/internal/advisor"
)

// SourceHeader reports which engine produced an AI response.
const SourceHeader = "X-Advisor-Source"

func (s *Server) registerAdvisorRoutes(g *echo.Group) {
	g.POST("/ai/search", s.search)
	g.POST("/ai/product-advice", s.productAdvice)
}

func (s *Server) search(c echo.Context) error {
	var req advisor.SearchRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "unable to parse search request")
	}

	resp, source, err := s.advisor.Search(c.Request().Context(), req)
	if err != nil {
		return failErr(c, err)
	}
	c.Response().Header().Set(SourceHeader, string(source))
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) productAdvice(c echo.Context) error {
	var req advisor.AdviceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "unable to parse advice request")
	}

	resp, source, err := s.advisor.ProductAdvice(c.Request().Context(), req)
	if err != nil {
		return failErr(c, err)
	}
	c.Response().Header().Set(SourceHeader, string(source))
	return c.JSON(http.StatusOK, resp)
}
