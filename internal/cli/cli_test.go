package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/axox-storefront/internal/advisor"
	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/model"
	"github.com/Veraticus/axox-storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		want   string
		amount int
	}{
		{amount: 150, want: "AED 150"},
		{amount: 1299, want: "AED 1,299"},
		{amount: 12999, want: "AED 12,999"},
		{amount: 1250000, want: "AED 1,250,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.amount))
	}
}

func TestRenderProducts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderProducts(&buf, catalog.Default().CommercialProducts()))

	out := buf.String()
	assert.Contains(t, out, "mx-800")
	assert.Contains(t, out, "leg-press-500")
	assert.Contains(t, out, "AED 14,999")
	assert.NotContains(t, out, "ax-9000")

	buf.Reset()
	require.NoError(t, RenderProducts(&buf, nil))
	assert.Contains(t, buf.String(), "No products match.")
}

func TestRenderProduct(t *testing.T) {
	p, ok := catalog.Default().ByID("ax-9000")
	require.True(t, ok)

	out := RenderProduct(p)
	assert.Contains(t, out, p.Name)
	assert.Contains(t, out, "AED 12,999")
	assert.Contains(t, out, p.Highlights[0])
}

func TestRenderSearch(t *testing.T) {
	cat := catalog.Default()
	resp, err := advisor.NewMockEngine(cat).Search(context.Background(), advisor.SearchRequest{Query: "help me decide"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderSearch(&buf, resp, advisor.SourceLocal, cat))

	out := buf.String()
	assert.Contains(t, out, "Where will you use it?")
	assert.Contains(t, out, "Home / Commercial gym / studio / Both")
	assert.Contains(t, out, "Also consider")
	assert.Contains(t, out, "offline advisor")
}

func TestRenderSearch_NoResults(t *testing.T) {
	var buf bytes.Buffer
	resp := advisor.SearchResponse{Recommendations: []advisor.Recommendation{}}
	require.NoError(t, RenderSearch(&buf, resp, advisor.SourceBackend, nil))

	assert.Contains(t, buf.String(), "No products matched")
	assert.Contains(t, buf.String(), "Goal: not sure yet")
}

func TestRenderAdvice(t *testing.T) {
	cat := catalog.Default()
	product, _ := cat.ByID("mx-800")
	resp, err := advisor.NewMockEngine(cat).ProductAdvice(context.Background(), advisor.AdviceRequest{ProductID: "mx-800"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderAdvice(&buf, product, resp, advisor.SourceLocal, cat))

	out := buf.String()
	assert.Contains(t, out, "Gyms & studios")
	assert.Contains(t, out, "Fits through 80cm+ door")
	assert.Contains(t, out, "Often bought together")
}

func TestRenderCompare(t *testing.T) {
	cat := catalog.Default()
	a, _ := cat.ByID("ax-9000")
	b, _ := cat.ByID("ax-7000")
	bench, _ := cat.ByID("bench-bx400")

	tests := []struct {
		name     string
		products []model.Product
		want     string
	}{
		{name: "empty", want: "Nothing to compare yet"},
		{name: "single", products: []model.Product{a}, want: "Add one more cardio product"},
		{name: "mismatch", products: []model.Product{a, bench}, want: "different categories"},
		{name: "ready", products: []model.Product{a, b}, want: "Warranty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderCompare(&buf, store.NewCompareView(tt.products)))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestRenderTotals(t *testing.T) {
	cat := catalog.Default()
	kb, _ := cat.ByID("kettlebell-set")
	items := []model.CartItem{{Product: kb, Quantity: 2}}

	var buf bytes.Buffer
	require.NoError(t, RenderTotals(&buf, items, model.ComputeTotals(items)))

	out := buf.String()
	assert.Contains(t, out, "x2")
	assert.Contains(t, out, "AED 2,598")
	assert.Contains(t, out, "AED 150")
}

func TestPrompter_AskClarifying(t *testing.T) {
	questions := []advisor.ClarifyingQuestion{
		{ID: "space", Question: "Where will you use it?", Options: []string{"Home", "Commercial gym / studio", "Both"}},
		{ID: "priority", Question: "What matters most?", Options: []string{"Performance", "Space-saving", "Budget"}},
		{ID: "notes", Question: "Anything else?"},
	}

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("7\n2\nbudget\nquiet please\n"), &out)

	answers, err := p.AskClarifying(context.Background(), questions)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"space":    "Commercial gym / studio",
		"priority": "Budget",
		"notes":    "quiet please",
	}, answers)
	assert.Contains(t, out.String(), "Invalid choice")
}

func TestPrompter_InputClosed(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Ask(context.Background(), advisor.ClarifyingQuestion{ID: "space", Question: "Where?"})
	require.ErrorIs(t, err, ErrInputClosed)
}

func TestPrompter_ContextCanceled(t *testing.T) {
	reader, writer := ioPipe(t)
	defer func() { _ = writer.Close() }()

	p := NewPrompter(reader, &bytes.Buffer{})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Ask(ctx, advisor.ClarifyingQuestion{ID: "space", Question: "Where?"})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func ioPipe(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r, w
}
