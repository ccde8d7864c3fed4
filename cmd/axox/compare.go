package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/cli"
	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/Veraticus/axox-storefront/internal/model"
	"github.com/Veraticus/axox-storefront/internal/store"
)

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <product-id> <product-id>",
		Short: "Compare two products side by side",
		Long: `Compare the motor, speed, capacity and warranty of two products from the
same category.`,
		Example: `  axox compare ax-9000 ax-7000`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			products, err := lookupProducts(cat, args)
			if err != nil {
				return err
			}

			session := store.New()
			for _, p := range products {
				if err := session.AddToCompare(p); err != nil {
					if errors.Is(err, common.ErrCategoryMismatch) {
						// Show the mismatch rather than failing outright.
						return cli.RenderCompare(cmd.OutOrStdout(), store.NewCompareView(products))
					}
					return err
				}
			}
			return cli.RenderCompare(cmd.OutOrStdout(), store.NewCompareView(session.Compare()))
		},
	}
}

func lookupProducts(cat *catalog.Catalog, ids []string) ([]model.Product, error) {
	products := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := cat.ByID(id)
		if !ok {
			return nil, common.NewUserError(fmt.Sprintf("no product with id %q", id), common.ErrNotFound)
		}
		products = append(products, p)
	}
	return products, nil
}
