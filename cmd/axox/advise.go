package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/axox-storefront/internal/advisor"
	"github.com/Veraticus/axox-storefront/internal/cli"
	"github.com/Veraticus/axox-storefront/internal/common"
)

func adviseCmd() *cobra.Command {
	var (
		roomSize   string
		doorWidth  string
		powerNeeds string
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "advise <product-id>",
		Short: "Ask the purchase advisor whether a product fits",
		Long: `Get fit notes, who a product suits, alternatives and add-ons for one
catalog product. Use "axox catalog list" to find product ids.`,
		Example: `  axox advise ax-9000
  axox advise mx-800 --room-size "4x5 m" --door-width "90 cm"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, cat, adv, err := setup(ctx)
			if err != nil {
				return err
			}
			defer adv.Close()

			product, ok := cat.ByID(args[0])
			if !ok {
				return common.NewUserError(fmt.Sprintf("no product with id %q", args[0]), common.ErrNotFound)
			}

			req := advisor.AdviceRequest{ProductID: product.ID}
			if roomSize != "" || doorWidth != "" || powerNeeds != "" {
				req.UserContext = &advisor.UserContext{}
				if roomSize != "" {
					req.UserContext.RoomSize = &roomSize
				}
				if doorWidth != "" {
					req.UserContext.DoorWidth = &doorWidth
				}
				if powerNeeds != "" {
					req.UserContext.PowerNeeds = &powerNeeds
				}
			}

			resp, source, err := adv.ProductAdvice(ctx, req)
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			return cli.RenderAdvice(cmd.OutOrStdout(), product, resp, source, cat)
		},
	}

	cmd.Flags().StringVar(&roomSize, "room-size", "", "room dimensions")
	cmd.Flags().StringVar(&doorWidth, "door-width", "", "narrowest door on the delivery path")
	cmd.Flags().StringVar(&powerNeeds, "power", "", "available power supply")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the raw response as JSON")

	return cmd
}
