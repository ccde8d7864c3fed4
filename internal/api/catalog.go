package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/Veraticus/axox-storefront/internal/model"
)

func (s *Server) registerCatalogRoutes(g *echo.Group) {
	g.GET("/products", s.listProducts)
	g.GET("/products/:id", s.getProduct)
}

func (s *Server) listProducts(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, s.catalog.Filter(filter))
}

func (s *Server) getProduct(c echo.Context) error {
	p, err := s.product(c.Param("id"))
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// product resolves a catalog id.
func (s *Server) product(id string) (model.Product, error) {
	p, ok := s.catalog.ByID(id)
	if !ok {
		return model.Product{}, fmt.Errorf("product %q: %w", id, common.ErrNotFound)
	}
	return p, nil
}

// parseFilter reads ?type=&category=&min_price=&max_price=. Categories may be
// repeated or comma separated.
func parseFilter(c echo.Context) (catalog.Filter, error) {
	var f catalog.Filter

	if raw := strings.TrimSpace(c.QueryParam("type")); raw != "" && raw != "all" {
		t, err := model.ParseProductType(raw)
		if err != nil {
			return f, err
		}
		f.Type = t
	}

	for _, param := range c.QueryParams()["category"] {
		for _, raw := range strings.Split(param, ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			cat, err := model.ParseCategory(raw)
			if err != nil {
				return f, err
			}
			f.Categories = append(f.Categories, cat)
		}
	}

	var err error
	if f.MinPrice, err = intParam(c, "min_price"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = intParam(c, "max_price"); err != nil {
		return f, err
	}
	if f.MaxPrice > 0 && f.MinPrice > f.MaxPrice {
		return f, fmt.Errorf("min_price %d exceeds max_price %d", f.MinPrice, f.MaxPrice)
	}
	return f, nil
}

func intParam(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return n, nil
}
