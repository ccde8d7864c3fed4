package advisor

import (
	"context"
	"testing"

	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/Veraticus/axox-storefront/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recommendedIDs(resp SearchResponse) []string {
	ids := make([]string, 0, len(resp.Recommendations))
	for _, r := range resp.Recommendations {
		ids = append(ids, r.ProductID)
	}
	return ids
}

func suggestionIDs(s []Suggestion) []string {
	ids := make([]string, 0, len(s))
	for _, x := range s {
		ids = append(ids, x.ProductID)
	}
	return ids
}

func TestMockEngine_Search(t *testing.T) {
	ctx := context.Background()
	engine := NewMockEngine(catalog.Default())

	tests := []struct {
		answers       map[string]string
		name          string
		query         string
		wantGoal      string
		wantBudget    string
		wantSpace     string
		wantIDs       []string
		wantAlts      []string
		wantClarify   bool
		wantHasBudget bool
	}{
		{
			name:        "vague query asks clarifying questions",
			query:       "help me decide what equipment I need",
			wantGoal:    DefaultGoal,
			wantIDs:     []string{"ax-9000", "ax-7000", "ex-550", "rx-200", "sx-300"},
			wantAlts:    []string{"rx-200"},
			wantClarify: true,
		},
		{
			name:     "answers suppress clarifying questions",
			query:    "help me decide what equipment I need",
			answers:  map[string]string{"space": "Home"},
			wantGoal: DefaultGoal,
			wantIDs:  []string{"ax-9000", "ax-7000", "ex-550", "rx-200", "sx-300"},
			wantAlts: []string{"rx-200"},
		},
		{
			name:       "budget home query sorts by price",
			query:      "budget home treadmill",
			wantGoal:   "Home gym",
			wantBudget: "Budget-conscious",
			wantIDs:    []string{"kettlebell-set", "dumbbell-set", "bench-bx400", "sx-300", "rx-200"},
			wantAlts:   []string{"sx-300"},
		},
		{
			name:     "commercial query keeps commercial products only",
			query:    "gym equipment",
			wantGoal: "Commercial facility",
			wantIDs:  []string{"mx-800", "cable-pro", "leg-press-500"},
			wantAlts: []string{},
		},
		{
			name:     "both placement signals leave nothing",
			query:    "Home Gym",
			wantGoal: "Commercial facility",
			wantIDs:  []string{},
			wantAlts: []string{},
		},
		{
			name:        "large space with budget across whole catalog",
			query:       "cheap kit for a large room",
			wantGoal:    DefaultGoal,
			wantBudget:  "Budget-conscious",
			wantSpace:   "Large space",
			wantIDs:     []string{"kettlebell-set", "dumbbell-set", "bench-bx400", "sx-300", "rx-200"},
			wantAlts:    []string{"sx-300"},
			wantClarify: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := engine.Search(ctx, SearchRequest{Query: tt.query, Answers: tt.answers})
			require.NoError(t, err)

			assert.Equal(t, tt.wantGoal, Deref(resp.Intent.Goal))
			assert.Equal(t, tt.wantBudget, Deref(resp.Intent.Budget))
			assert.Equal(t, tt.wantSpace, Deref(resp.Intent.Space))
			assert.Equal(t, tt.wantIDs, recommendedIDs(resp))
			assert.Equal(t, tt.wantAlts, suggestionIDs(resp.Alternatives))
			assert.Equal(t, whyTheseText, Deref(resp.WhyThese))

			if tt.wantClarify {
				require.Len(t, resp.ClarifyingQuestions, 2)
				assert.Equal(t, "space", resp.ClarifyingQuestions[0].ID)
				assert.Equal(t, "priority", resp.ClarifyingQuestions[1].ID)
			} else {
				assert.Empty(t, resp.ClarifyingQuestions)
			}
		})
	}
}

func TestMockEngine_SearchExplanations(t *testing.T) {
	cat := catalog.Default()
	engine := NewMockEngine(cat)

	resp, err := engine.Search(context.Background(), SearchRequest{Query: "affordable"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Recommendations)

	kettlebells, ok := cat.ByID("kettlebell-set")
	require.True(t, ok)
	assert.Equal(t, kettlebells.Name+" — "+kettlebells.Description+"…", resp.Recommendations[0].Explanation)

	long, err := engine.Search(context.Background(), SearchRequest{Query: "anything"})
	require.NoError(t, err)
	flagship, _ := cat.ByID("ax-9000")
	explanation := long.Recommendations[0].Explanation
	assert.Equal(t, flagship.Name+" — "+string([]rune(flagship.Description)[:80])+"…", explanation)
}

func TestMockEngine_SearchDoesNotReorderCatalog(t *testing.T) {
	cat := catalog.Default()
	before := cat.All()

	_, err := NewMockEngine(cat).Search(context.Background(), SearchRequest{Query: "cheap"})
	require.NoError(t, err)

	assert.Equal(t, before, cat.All())
}

func TestMockEngine_SearchStableWithinEqualPrices(t *testing.T) {
	cat, err := catalog.New([]model.Product{
		{ID: "b", Name: "B", Price: 100, Category: model.CategoryCardio, Type: model.TypeHome},
		{ID: "a", Name: "A", Price: 100, Category: model.CategoryCardio, Type: model.TypeHome},
		{ID: "c", Name: "C", Price: 50, Category: model.CategoryCardio, Type: model.TypeHome},
	})
	require.NoError(t, err)

	resp, err := NewMockEngine(cat).Search(context.Background(), SearchRequest{Query: "budget"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, recommendedIDs(resp))
}

func TestMockEngine_ProductAdvice(t *testing.T) {
	ctx := context.Background()
	engine := NewMockEngine(catalog.Default())

	t.Run("home product", func(t *testing.T) {
		resp, err := engine.ProductAdvice(ctx, AdviceRequest{ProductID: "ax-9000"})
		require.NoError(t, err)

		assert.Equal(t, fitNotes, resp.FitNotes)
		assert.Equal(t, homeBestFor, resp.BestFor)
		assert.Equal(t, homeNotIdealFor, resp.NotIdealFor)
		assert.Equal(t, []string{"ax-7000", "ex-550", "rx-200"}, suggestionIDs(resp.Alternatives))
		assert.Equal(t, []string{"kettlebell-set"}, suggestionIDs(resp.AddOns))
		assert.Equal(t, addOnReason, resp.AddOns[0].Reason)
		assert.Equal(t, "Powerful home treadmill with premium features at a…", resp.Alternatives[0].Reason)
	})

	t.Run("commercial product", func(t *testing.T) {
		resp, err := engine.ProductAdvice(ctx, AdviceRequest{ProductID: "mx-800"})
		require.NoError(t, err)

		assert.Equal(t, commercialBestFor, resp.BestFor)
		assert.Equal(t, commercialNotIdealFor, resp.NotIdealFor)
		assert.Equal(t, []string{"ax-9000", "ax-7000", "ex-550"}, suggestionIDs(resp.Alternatives))
	})

	t.Run("current product excluded from alternatives", func(t *testing.T) {
		resp, err := engine.ProductAdvice(ctx, AdviceRequest{ProductID: "ax-7000"})
		require.NoError(t, err)
		assert.Equal(t, []string{"ax-9000", "ex-550", "rx-200"}, suggestionIDs(resp.Alternatives))
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := engine.ProductAdvice(ctx, AdviceRequest{ProductID: "nope"})
		require.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestTruncate_CountsRunes(t *testing.T) {
	assert.Equal(t, "ééé", truncate("éééé", 3))
	assert.Equal(t, "short", truncate("short", 10))
}
