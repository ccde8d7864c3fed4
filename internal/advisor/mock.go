package advisor

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/Veraticus/axox-storefront/internal/model"
)

const (
	maxRecommendations   = 5
	alternativeIndex     = 3
	clarifyThreshold     = 4
	explanationLength    = 80
	alternativeLength    = 50
	maxAdviceAlternates  = 3
	maxAddOns            = 2
	alternativeReason    = "Similar performance, different price point"
	addOnReason          = "Often bought together"
	whyTheseText         = "Picked based on your goal and space. All include installation and warranty support."
	truncationMarker     = "…"
	explanationSeparator = " — "
)

var clarifyingQuestions = []ClarifyingQuestion{
	{ID: "space", Question: "Where will you use it?", Options: []string{"Home", "Commercial gym / studio", "Both"}},
	{ID: "priority", Question: "What matters most?", Options: []string{"Performance", "Space-saving", "Budget"}},
}

var fitNotes = []FitNote{
	{Label: "Room size", Value: "Min 2.5m × 1.5m recommended", OK: true},
	{Label: "Door width", Value: "Fits through 80cm+ door", OK: true},
	{Label: "Power", Value: "Standard 220V outlet", OK: true},
}

var (
	commercialBestFor     = []string{"Gyms & studios", "Hotels", "Corporate wellness"}
	homeBestFor           = []string{"Serious home training", "Long-term durability", "Data-driven workouts"}
	commercialNotIdealFor = []string{"Very small home spaces", "Occasional use only"}
	homeNotIdealFor       = []string{"Tight apartments without space", "Light use only"}
)

// MockEngine answers search and advice requests deterministically from the
// catalog. It is the fallback behind every backend call and the sole engine
// when no backend is configured.
type MockEngine struct {
	catalog *catalog.Catalog
	rules   *RuleSet
}

// NewMockEngine creates an engine over cat using the built-in rules.
func NewMockEngine(cat *catalog.Catalog) *MockEngine {
	return &MockEngine{catalog: cat, rules: DefaultRuleSet()}
}

// NewMockEngineWithRules creates an engine with a custom rule set.
func NewMockEngineWithRules(cat *catalog.Catalog, rules *RuleSet) *MockEngine {
	return &MockEngine{catalog: cat, rules: rules}
}

// Search classifies the query and ranks catalog products.
func (m *MockEngine) Search(_ context.Context, req SearchRequest) (SearchResponse, error) {
	matches := m.rules.Match(req.Query)

	intent := Intent{
		Goal:       strPtr(matches.Goal()),
		Priorities: []string{},
	}
	if space := matches.Space(); space != "" {
		intent.Space = strPtr(space)
	}
	if budget := matches.Budget(); budget != "" {
		intent.Budget = strPtr(budget)
	}

	candidates := make([]model.Product, 0, m.catalog.Len())
	for _, p := range m.catalog.All() {
		if matches.Keep(p) {
			candidates = append(candidates, p)
		}
	}
	if intent.Budget != nil {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Price < candidates[j].Price
		})
	}

	resp := SearchResponse{
		Intent:          intent,
		Recommendations: make([]Recommendation, 0, maxRecommendations),
		WhyThese:        strPtr(whyTheseText),
	}

	for i, p := range candidates {
		if i == maxRecommendations {
			break
		}
		resp.Recommendations = append(resp.Recommendations, Recommendation{
			ProductID:   p.ID,
			Explanation: p.Name + explanationSeparator + truncate(p.Description, explanationLength) + truncationMarker,
		})
	}

	if !matches.Placed() && len(candidates) > clarifyThreshold && len(req.Answers) == 0 {
		resp.ClarifyingQuestions = cloneQuestions(clarifyingQuestions)
	}

	if len(candidates) > alternativeIndex {
		resp.Alternatives = []Suggestion{{
			ProductID: candidates[alternativeIndex].ID,
			Reason:    alternativeReason,
		}}
	}

	return resp, nil
}

// ProductAdvice returns fit notes, audiences, alternatives and add-ons for a
// catalog product. Unknown ids yield common.ErrNotFound.
func (m *MockEngine) ProductAdvice(_ context.Context, req AdviceRequest) (AdviceResponse, error) {
	product, ok := m.catalog.ByID(req.ProductID)
	if !ok {
		return AdviceResponse{}, fmt.Errorf("product %q: %w", req.ProductID, common.ErrNotFound)
	}

	resp := AdviceResponse{
		FitNotes: append([]FitNote(nil), fitNotes...),
	}
	if product.IsCommercial() {
		resp.BestFor = append([]string(nil), commercialBestFor...)
		resp.NotIdealFor = append([]string(nil), commercialNotIdealFor...)
	} else {
		resp.BestFor = append([]string(nil), homeBestFor...)
		resp.NotIdealFor = append([]string(nil), homeNotIdealFor...)
	}

	for _, p := range m.catalog.HomeProducts() {
		if len(resp.Alternatives) == maxAdviceAlternates {
			break
		}
		if p.ID == product.ID {
			continue
		}
		resp.Alternatives = append(resp.Alternatives, Suggestion{
			ProductID: p.ID,
			Reason:    truncate(p.Description, alternativeLength) + truncationMarker,
		})
	}

	for _, p := range m.catalog.ByCategory(model.CategoryAccessories) {
		if len(resp.AddOns) == maxAddOns {
			break
		}
		resp.AddOns = append(resp.AddOns, Suggestion{ProductID: p.ID, Reason: addOnReason})
	}

	return resp, nil
}

// truncate returns the first n runes of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func cloneQuestions(qs []ClarifyingQuestion) []ClarifyingQuestion {
	out := make([]ClarifyingQuestion, len(qs))
	for i, q := range qs {
		out[i] = q
		out[i].Options = append([]string(nil), q.Options...)
	}
	return out
}

// normalizeQuery trims the query and substitutes the decision-help prompt when
// the shopper only answered clarifying questions.
func normalizeQuery(req SearchRequest) (SearchRequest, error) {
	req.Query = strings.TrimSpace(req.Query)
	if req.Query != "" {
		return req, nil
	}
	if len(req.Answers) == 0 {
		return req, ErrEmptyQuery
	}
	req.Query = AnswersOnlyQuery
	return req, nil
}
