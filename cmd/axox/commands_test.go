package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/axox-storefront/internal/advisor"
	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/Veraticus/axox-storefront/internal/service"
	"github.com/Veraticus/axox-storefront/internal/storage"
)

const sampleCatalog = `products:
  - id: row-1
    name: Rower R1
    price: 3999
    category: cardio
    type: home
    image: /rower.jpg
    description: Quiet magnetic rower.
    specs:
      warranty: 2 Years
  - id: rack-9
    name: Power Rack 9
    price: 9999
    category: strength
    type: commercial
    image: /rack.jpg
    description: Full power rack.
`

// execute runs cmd with args against a clean viper instance.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseCartArg(t *testing.T) {
	tests := []struct {
		arg     string
		wantID  string
		wantQty int
		wantErr bool
	}{
		{arg: "ax-9000", wantID: "ax-9000", wantQty: 1},
		{arg: "dumbbell-set:3", wantID: "dumbbell-set", wantQty: 3},
		{arg: "dumbbell-set:0", wantID: "dumbbell-set", wantQty: 0},
		{arg: "dumbbell-set:lots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			id, qty, err := parseCartArg(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidQuantity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantQty, qty)
		})
	}
}

func TestBuildSearchRequest(t *testing.T) {
	req := buildSearchRequest(&searchOptions{}, "  home treadmill ")
	assert.Equal(t, advisor.SearchRequest{Query: "home treadmill"}, req)

	req = buildSearchRequest(&searchOptions{
		answers:   map[string]string{"space": "Home"},
		location:  "Dubai",
		budgetMax: 8000,
	}, "treadmill")
	require.NotNil(t, req.Context)
	assert.Equal(t, "Dubai", *req.Context.Location)
	assert.Nil(t, req.Context.BudgetMin)
	assert.Equal(t, 8000, *req.Context.BudgetMax)
	assert.Equal(t, map[string]string{"space": "Home"}, req.Answers)
}

func TestReadCatalogFile(t *testing.T) {
	products, err := readCatalogFile(writeFile(t, "catalog.yaml", sampleCatalog))
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "row-1", products[0].ID)
	assert.Equal(t, "2 Years", products[0].Specs.Warranty)

	_, err = readCatalogFile(writeFile(t, "bad.yaml", "products:\n  - id: x\n    colour: red\n"))
	require.Error(t, err)

	_, err = readCatalogFile(writeFile(t, "empty.yaml", "products: []\n"))
	require.Error(t, err)

	_, err = readCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestCatalogImportThenList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	file := writeFile(t, "catalog.yaml", sampleCatalog)

	_, err := execute(t, catalogImportCmd(), "--database", dbPath, file)
	require.NoError(t, err)

	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	ctx := context.Background()
	count, err := store.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	all, err := store.GetProducts(ctx, service.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "rack-9", all[1].ID)
	require.NoError(t, store.Close())

	viper.Set("catalog.database", dbPath)
	cmd := catalogListCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--type", "commercial"})
	require.NoError(t, cmd.ExecuteContext(ctx))

	assert.Contains(t, out.String(), "rack-9")
	assert.NotContains(t, out.String(), "row-1")
}

func TestCatalogRemove(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	_, err := execute(t, catalogImportCmd(), "--database", dbPath, writeFile(t, "catalog.yaml", sampleCatalog))
	require.NoError(t, err)

	_, err = execute(t, catalogRemoveCmd(), "--database", dbPath, "row-1")
	require.NoError(t, err)

	_, err = execute(t, catalogRemoveCmd(), "--database", dbPath, "ghost")
	require.ErrorIs(t, err, common.ErrNotFound)

	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	all, err := store.GetProducts(context.Background(), service.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "rack-9", all[0].ID)
}

func TestCatalogImportDryRunRejectsInvalid(t *testing.T) {
	invalid := writeFile(t, "dupes.yaml", `products:
  - {id: a, name: A, price: 10, category: cardio, type: home, description: x}
  - {id: a, name: B, price: 20, category: cardio, type: home, description: y}
`)
	_, err := execute(t, catalogImportCmd(), "--dry-run", invalid)
	require.Error(t, err)
}

func TestCatalogShow(t *testing.T) {
	out, err := execute(t, catalogShowCmd(), "mx-800")
	require.NoError(t, err)
	assert.Contains(t, out, "MX-800")

	_, err = execute(t, catalogShowCmd(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCatalogListRejectsBadFilters(t *testing.T) {
	_, err := execute(t, catalogListCmd(), "--type", "boutique")
	require.Error(t, err)

	_, err = execute(t, catalogListCmd(), "--category", "yoga")
	require.Error(t, err)
}

func TestCatalogExport(t *testing.T) {
	out, err := execute(t, catalogExportCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "products:")
	assert.Contains(t, out, "id: ax-9000")
}

func TestCompareCommand(t *testing.T) {
	out, err := execute(t, compareCmd(), "ax-9000", "ax-7000")
	require.NoError(t, err)
	assert.Contains(t, out, "Treadmill AX-9000")
	assert.Contains(t, out, "Warranty")

	out, err = execute(t, compareCmd(), "ax-9000", "mx-800")
	require.NoError(t, err)
	assert.Contains(t, out, "different categories")

	_, err = execute(t, compareCmd(), "ax-9000", "ghost")
	require.Error(t, err)
}

func TestCartCommand(t *testing.T) {
	out, err := execute(t, cartCmd(), "kettlebell-set:2")
	require.NoError(t, err)
	assert.Contains(t, out, "AED 2,598")
	assert.Contains(t, out, "AED 150")

	out, err = execute(t, cartCmd(), "ax-9000", "--checkout", "--node", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Free")
	assert.Contains(t, out, "Order AX-")

	_, err = execute(t, cartCmd(), "ax-9000:0")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidQuantity)
}

func TestSearchCommand(t *testing.T) {
	out, err := execute(t, searchCmd(), "--no-input", "budget", "home", "treadmill")
	require.NoError(t, err)
	assert.Contains(t, out, "Kettlebell")

	out, err = execute(t, searchCmd(), "--json", "--card", "help")
	require.NoError(t, err)
	assert.Contains(t, out, `"clarifyingQuestions"`)

	_, err = execute(t, searchCmd(), "--card", "spa")
	require.Error(t, err)
}

func TestAdviseCommand(t *testing.T) {
	out, err := execute(t, adviseCmd(), "mx-800")
	require.NoError(t, err)
	assert.Contains(t, out, "Gyms & studios")

	_, err = execute(t, adviseCmd(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, versionCmd())
	require.NoError(t, err)
	assert.Equal(t, "axox dev\n", out)
}
