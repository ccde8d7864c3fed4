package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyState(t *testing.T) {
	questions := []ClarifyingQuestion{{ID: "space", Question: "Where?"}}
	recs := []Recommendation{{ProductID: "ax-9000"}}

	tests := []struct {
		name      string
		resp      SearchResponse
		want      SearchState
		answering bool
	}{
		{name: "questions need clarification", resp: SearchResponse{ClarifyingQuestions: questions, Recommendations: recs}, want: StateNeedsClarification},
		{name: "answering skips questions", resp: SearchResponse{ClarifyingQuestions: questions, Recommendations: recs}, answering: true, want: StateRecommendationsReady},
		{name: "no recommendations", resp: SearchResponse{Recommendations: []Recommendation{}}, want: StateNoResults},
		{name: "answering with no recommendations", resp: SearchResponse{ClarifyingQuestions: questions}, answering: true, want: StateNoResults},
		{name: "recommendations ready", resp: SearchResponse{Recommendations: recs}, want: StateRecommendationsReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyState(tt.resp, tt.answering))
		})
	}
}

func TestQuickCards(t *testing.T) {
	assert.Len(t, QuickCards, 5)

	help, ok := QuickCardByID("help")
	assert.True(t, ok)
	assert.Equal(t, HelpQuery, help.Query)

	home, ok := QuickCardByID("home")
	assert.True(t, ok)
	assert.Equal(t, "Home Gym", home.Query)

	_, ok = QuickCardByID("unknown")
	assert.False(t, ok)
}
