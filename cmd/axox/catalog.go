package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/cli"
	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/Veraticus/axox-storefront/internal/model"
)

// catalogFile is the YAML layout read by import and written by export.
type catalogFile struct {
	Products []model.Product `yaml:"products"`
}

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and manage the product catalog",
		Long: `Browse the AXOX product range, or load a catalog from YAML into the
catalog database used by "axox serve" when catalog.database is set.`,
	}

	cmd.AddCommand(catalogListCmd())
	cmd.AddCommand(catalogShowCmd())
	cmd.AddCommand(catalogImportCmd())
	cmd.AddCommand(catalogExportCmd())
	cmd.AddCommand(catalogRemoveCmd())

	return cmd
}

func catalogListCmd() *cobra.Command {
	var (
		productType string
		categories  []string
		minPrice    int
		maxPrice    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Example: `  axox catalog list --type home
  axox catalog list --category cardio,weight --max-price 8000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			filter := catalog.Filter{MinPrice: minPrice, MaxPrice: maxPrice}
			if productType != "" && productType != "all" {
				if filter.Type, err = model.ParseProductType(productType); err != nil {
					return common.NewUserError(err.Error(), err)
				}
			}
			for _, raw := range categories {
				c, err := model.ParseCategory(raw)
				if err != nil {
					return common.NewUserError(err.Error(), err)
				}
				filter.Categories = append(filter.Categories, c)
			}

			products := cat.Filter(filter)
			if len(products) == 0 {
				slog.Info(cli.FormatWarning("No products match those filters"))
				return nil
			}
			return cli.RenderProducts(cmd.OutOrStdout(), products)
		},
	}

	cmd.Flags().StringVarP(&productType, "type", "t", "", "product type (all, home, commercial)")
	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "categories to include (cardio, strength, weight, accessories)")
	cmd.Flags().IntVar(&minPrice, "min-price", 0, "minimum price in AED")
	cmd.Flags().IntVar(&maxPrice, "max-price", 0, "maximum price in AED (0 for no limit)")

	return cmd
}

func catalogShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <product-id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			p, ok := cat.ByID(args[0])
			if !ok {
				return common.NewUserError(fmt.Sprintf("no product with id %q", args[0]), common.ErrNotFound)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderProduct(p))
			return err
		},
	}
}

func catalogImportCmd() *cobra.Command {
	var (
		database string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "import [file.yaml]",
		Short: "Import products into the catalog database",
		Long: `Import products from a YAML file into the catalog database. Existing
products with the same id are updated in place. Without a file the built-in
AXOX range is imported.`,
		Example: `  axox catalog import products.yaml --database ~/.local/share/axox/catalog.db
  axox catalog import --dry-run products.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			products := catalog.DefaultProducts()
			source := "built-in catalog"
			if len(args) == 1 {
				var err error
				if products, err = readCatalogFile(args[0]); err != nil {
					return err
				}
				source = args[0]
			}

			// Building a catalog checks every product and rejects duplicate ids.
			if _, err := catalog.New(products); err != nil {
				return common.NewUserError(fmt.Sprintf("%s is not a valid catalog", source), err)
			}

			if dryRun {
				slog.Info(cli.FormatInfo(fmt.Sprintf("Dry run: %d products from %s are valid", len(products), source)))
				return cli.RenderProducts(cmd.OutOrStdout(), products)
			}

			if database == "" {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				database = cfg.Catalog.Database
			}
			store, err := initStorage(ctx, database)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Warn("Failed to close catalog database", "error", closeErr)
				}
			}()

			bar := progressbar.NewOptions(len(products),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Importing products...[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr())
				}),
			)

			err = store.ImportProducts(ctx, products, func(model.Product) {
				if err := bar.Add(1); err != nil {
					slog.Warn("Failed to update progress bar", "error", err)
				}
			})
			if err != nil {
				return fmt.Errorf("import rolled back: %w", err)
			}

			total, err := store.CountProducts(ctx)
			if err != nil {
				return err
			}
			slog.Info(cli.FormatSuccess(fmt.Sprintf("Imported %d products from %s", len(products), source)),
				"database", store.Path(),
				"total", total)
			return nil
		},
	}

	cmd.Flags().StringVar(&database, "database", "", "catalog database path (default from catalog.database)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without writing to the database")

	return cmd
}

func catalogExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file.yaml]",
		Short: "Export the active catalog as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(catalogFile{Products: cat.All()})
			if err != nil {
				return fmt.Errorf("failed to encode catalog: %w", err)
			}

			if len(args) == 0 {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}
			slog.Info(cli.FormatSuccess(fmt.Sprintf("Exported %d products to %s", cat.Len(), args[0])))
			return nil
		},
	}
}

// readCatalogFile decodes a YAML catalog, rejecting unknown fields.
func readCatalogFile(path string) ([]model.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("cannot open %s", path), err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, common.NewUserError(fmt.Sprintf("cannot parse %s", path), err)
	}
	if len(file.Products) == 0 {
		return nil, common.NewUserError(fmt.Sprintf("%s contains no products", path), common.ErrNotFound)
	}
	return file.Products, nil
}

func catalogRemoveCmd() *cobra.Command {
	var database string

	cmd := &cobra.Command{
		Use:     "remove <id>...",
		Short:   "Remove products from the catalog database",
		Example: `  axox catalog remove rx-200 --database ~/.local/share/axox/catalog.db`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if database == "" {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				database = cfg.Catalog.Database
			}
			store, err := initStorage(ctx, database)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Warn("Failed to close catalog database", "error", closeErr)
				}
			}()

			for _, id := range args {
				if err := store.DeleteProduct(ctx, id); err != nil {
					if errors.Is(err, common.ErrNotFound) {
						return common.NewUserError(fmt.Sprintf("no product with id %q in %s", id, store.Path()), err)
					}
					return err
				}
				slog.Info(cli.FormatSuccess("Removed "+id), "database", store.Path())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&database, "database", "", "catalog database path (default from catalog.database)")

	return cmd
}
