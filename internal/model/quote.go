package model

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// Emirates lists the accepted values for QuoteRequest.Emirate.
var Emirates = []string{
	"Abu Dhabi",
	"Dubai",
	"Sharjah",
	"Ajman",
	"Umm Al Quwain",
	"Ras Al Khaimah",
	"Fujairah",
}

// ErrInvalidQuote is returned when a quote request fails validation.
var ErrInvalidQuote = errors.New("invalid quote request")

// QuoteRequest asks sales for commercial pricing.
type QuoteRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Emirate  string `json:"emirate"`
	Product  string `json:"product"`
	Notes    string `json:"notes"`
	Quantity int    `json:"quantity"`
}

// Validate checks the required fields of a quote request.
func (q QuoteRequest) Validate() error {
	var problems []string
	if strings.TrimSpace(q.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(q.Phone) == "" {
		problems = append(problems, "phone is required")
	}
	if _, err := mail.ParseAddress(q.Email); err != nil {
		problems = append(problems, "email is invalid")
	}
	if strings.TrimSpace(q.Product) == "" {
		problems = append(problems, "product is required")
	}
	if q.Quantity < 1 {
		problems = append(problems, "quantity must be at least 1")
	}
	if !validEmirate(q.Emirate) {
		problems = append(problems, "emirate is invalid")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidQuote, strings.Join(problems, "; "))
	}
	return nil
}

func validEmirate(name string) bool {
	for _, e := range Emirates {
		if strings.EqualFold(e, strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}
