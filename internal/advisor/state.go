package advisor

// SearchState is the phase of an interactive search session.
type SearchState string

// Search states.
const (
	StateIdle                 SearchState = "idle"
	StateUnderstanding        SearchState = "understanding"
	StateNeedsClarification   SearchState = "needs_clarification"
	StateRecommendationsReady SearchState = "recommendations_ready"
	StateNoResults            SearchState = "no_results"
	StateError                SearchState = "error"
)

// ClassifyState maps a completed search to the state the shopper sees next.
// answering is true when the request carried answers from this round of
// clarifying questions.
func ClassifyState(resp SearchResponse, answering bool) SearchState {
	switch {
	case len(resp.ClarifyingQuestions) > 0 && !answering:
		return StateNeedsClarification
	case len(resp.Recommendations) == 0:
		return StateNoResults
	default:
		return StateRecommendationsReady
	}
}

// QuickCard is a one-tap search shortcut.
type QuickCard struct {
	ID    string
	Label string
	Query string
}

// HelpQuery is the query issued by the "Help Me Decide" card.
const HelpQuery = "Help me decide what equipment I need"

// QuickCards are the search shortcuts offered on an empty search.
var QuickCards = []QuickCard{
	{ID: "home", Label: "Home Gym", Query: "Home Gym"},
	{ID: "commercial", Label: "Commercial Gym", Query: "Commercial Gym"},
	{ID: "performance", Label: "Performance Space", Query: "Performance Space"},
	{ID: "sports", Label: "Sports & Recreation", Query: "Sports & Recreation"},
	{ID: "help", Label: "Help Me Decide", Query: HelpQuery},
}

// QuickCardByID looks up a quick card.
func QuickCardByID(id string) (QuickCard, bool) {
	for _, c := range QuickCards {
		if c.ID == id {
			return c, true
		}
	}
	return QuickCard{}, false
}
