package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/axox-storefront/internal/cli"
	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/Veraticus/axox-storefront/internal/store"
)

func cartCmd() *cobra.Command {
	var (
		checkout bool
		nodeID   int64
	)

	cmd := &cobra.Command{
		Use:   "cart <product-id[:quantity]>...",
		Short: "Price a cart including shipping",
		Long: `Add products to a cart and print the subtotal, shipping and total.
Shipping is free above AED 5,000. With --checkout an order is placed
(no payment is taken) and its id printed.`,
		Example: `  axox cart ax-9000 dumbbell-set:2
  axox cart kettlebell-set:3 --checkout`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			session := store.New()
			for _, arg := range args {
				id, qty, err := parseCartArg(arg)
				if err != nil {
					return err
				}
				p, ok := cat.ByID(id)
				if !ok {
					return common.NewUserError(fmt.Sprintf("no product with id %q", id), common.ErrNotFound)
				}
				if err := session.AddToCart(p, qty); err != nil {
					return common.NewUserError(fmt.Sprintf("cannot add %s", arg), err)
				}
			}

			out := cmd.OutOrStdout()
			if err := cli.RenderTotals(out, session.Cart(), session.Totals()); err != nil {
				return err
			}
			if !checkout {
				return nil
			}

			if !cmd.Flags().Changed("node") {
				nodeID = cfg.Server.NodeID
			}
			ids, err := store.NewSnowflakeOrderIDs(nodeID)
			if err != nil {
				return err
			}
			order, err := session.Checkout(ids, time.Now())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Order %s placed: %s (%s)",
				order.ID, cli.FormatPrice(order.Total), order.Status)))
			return err
		},
	}

	cmd.Flags().BoolVar(&checkout, "checkout", false, "place an order for the cart")
	cmd.Flags().Int64Var(&nodeID, "node", 0, "order id node (default from server.node_id)")

	return cmd
}

// parseCartArg splits "id" or "id:qty".
func parseCartArg(arg string) (string, int, error) {
	id, rawQty, found := strings.Cut(arg, ":")
	if !found {
		return id, 1, nil
	}
	qty, err := strconv.Atoi(rawQty)
	if err != nil {
		return "", 0, common.NewUserError(fmt.Sprintf("invalid quantity in %q", arg), common.ErrInvalidQuantity)
	}
	return id, qty, nil
}
