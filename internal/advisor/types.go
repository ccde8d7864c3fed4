package advisor

// SearchContext carries optional shopper context for a search.
type SearchContext struct {
	Location  *string `json:"location,omitempty"`
	BudgetMin *int    `json:"budgetMin,omitempty"`
	BudgetMax *int    `json:"budgetMax,omitempty"`
}

// SearchRequest is the body of POST /api/ai/search.
type SearchRequest struct {
	Context     *SearchContext    `json:"context,omitempty"`
	Answers     map[string]string `json:"answers,omitempty"`
	Query       string            `json:"query"`
	Constraints []string          `json:"constraints,omitempty"`
}

// Intent is the coarse classification extracted from a query.
type Intent struct {
	Goal       *string  `json:"goal,omitempty"`
	Space      *string  `json:"space,omitempty"`
	Budget     *string  `json:"budget,omitempty"`
	Priorities []string `json:"priorities"`
}

// ClarifyingQuestion asks the shopper to narrow a vague query.
type ClarifyingQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
}

// Recommendation is one ranked product with a short explanation.
type Recommendation struct {
	ProductID   string `json:"productId"`
	Explanation string `json:"explanation"`
}

// Suggestion points at a related product with a reason.
type Suggestion struct {
	ProductID string `json:"productId"`
	Reason    string `json:"reason"`
}

// SearchResponse is the body returned by POST /api/ai/search.
type SearchResponse struct {
	WhyThese            *string              `json:"whyThese,omitempty"`
	Intent              Intent               `json:"intent"`
	ClarifyingQuestions []ClarifyingQuestion `json:"clarifyingQuestions,omitempty"`
	Recommendations     []Recommendation     `json:"recommendations"`
	Alternatives        []Suggestion         `json:"alternatives,omitempty"`
}

// UserContext describes the shopper's room for product advice.
type UserContext struct {
	RoomSize   *string `json:"roomSize,omitempty"`
	DoorWidth  *string `json:"doorWidth,omitempty"`
	PowerNeeds *string `json:"powerNeeds,omitempty"`
}

// AdviceRequest is the body of POST /api/ai/product-advice.
type AdviceRequest struct {
	UserContext *UserContext `json:"userContext,omitempty"`
	ProductID   string       `json:"productId"`
}

// FitNote is one installation check for a product.
type FitNote struct {
	Label string `json:"label"`
	Value string `json:"value"`
	OK    bool   `json:"ok"`
}

// AdviceResponse is the body returned by POST /api/ai/product-advice.
type AdviceResponse struct {
	FitNotes     []FitNote    `json:"fitNotes,omitempty"`
	BestFor      []string     `json:"bestFor,omitempty"`
	NotIdealFor  []string     `json:"notIdealFor,omitempty"`
	Alternatives []Suggestion `json:"alternatives,omitempty"`
	AddOns       []Suggestion `json:"addOns,omitempty"`
}

func strPtr(s string) *string {
	return &s
}

// Deref returns the value of an optional string, or "" when unset.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
