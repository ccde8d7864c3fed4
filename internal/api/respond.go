package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Veraticus/axox-storefront/internal/advisor"
	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/Veraticus/axox-storefront/internal/model"
)

// Error codes returned in the envelope.
const (
	CodeNotFound         = "not_found"
	CodeSessionNotFound  = "session_not_found"
	CodeCategoryMismatch = "category_mismatch"
	CodeInvalidQuantity  = "invalid_quantity"
	CodeEmptyCart        = "empty_cart"
	CodeInvalidQuote     = "invalid_quote"
	CodeEmptyQuery       = "empty_query"
	CodeInvalidRequest   = "invalid_request"
	CodeTimeout          = "timeout"
	CodeInternal         = "internal_error"
)

var errBadRequest = errors.New("invalid request")

// ErrorBody is the JSON error envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func fail(c echo.Context, status int, code, message string) error {
	return c.JSON(status, ErrorBody{Code: code, Message: message})
}

// failErr maps a domain error onto a status and error code.
func failErr(c echo.Context, err error) error {
	status, code := classify(err)
	return fail(c, status, code, err.Error())
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrSessionNotFound):
		return http.StatusNotFound, CodeSessionNotFound
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, common.ErrCategoryMismatch):
		return http.StatusConflict, CodeCategoryMismatch
	case errors.Is(err, common.ErrInvalidQuantity):
		return http.StatusBadRequest, CodeInvalidQuantity
	case errors.Is(err, common.ErrEmptyCart):
		return http.StatusBadRequest, CodeEmptyCart
	case errors.Is(err, model.ErrInvalidQuote):
		return http.StatusBadRequest, CodeInvalidQuote
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, CodeInvalidRequest
	case errors.Is(err, advisor.ErrEmptyQuery):
		return http.StatusBadRequest, CodeEmptyQuery
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, CodeTimeout
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// handleError renders errors echo raises itself (unknown routes, bind
// failures, panics) in the same envelope.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code := CodeInvalidRequest
		switch he.Code {
		case http.StatusNotFound:
			code = CodeNotFound
		case http.StatusInternalServerError:
			code = CodeInternal
		}
		msg := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			msg = m
		}
		if writeErr := fail(c, he.Code, code, msg); writeErr != nil {
			s.logger.Error("failed to write error response", "error", writeErr)
		}
		return
	}

	s.logger.Error("unhandled error", "error", err, "path", c.Path())
	if writeErr := fail(c, http.StatusInternalServerError, CodeInternal, "internal server error"); writeErr != nil {
		s.logger.Error("failed to write error response", "error", writeErr)
	}
}

func badRequest(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, CodeInvalidRequest, message)
}
