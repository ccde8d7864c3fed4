package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Veraticus/axox-storefront/internal/advisor"
	"github.com/Veraticus/axox-storefront/internal/cli"
	"github.com/Veraticus/axox-storefront/internal/tui"
	"github.com/Veraticus/axox-storefront/internal/tui/themes"
)

type searchOptions struct {
	answers     map[string]string
	location    string
	card        string
	theme       string
	budgetMin   int
	budgetMax   int
	interactive bool
	noInput     bool
	jsonOut     bool
}

func searchCmd() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Ask the search agent for equipment recommendations",
		Long: `Describe your space, goals or budget in plain words and get a ranked
shortlist of AXOX equipment.

When the query is too vague the agent asks up to two clarifying questions.
Answer them at the prompt, pass them with --answer, or use --interactive for
the full-screen search agent.`,
		Example: `  axox search "budget home treadmill"
  axox search "equipment for training" --answer space=Home --answer priority=Budget
  axox search --card commercial
  axox search -i`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "open the interactive search agent")
	cmd.Flags().StringToStringVar(&opts.answers, "answer", nil, "clarifying answer as question-id=answer (repeatable)")
	cmd.Flags().StringVar(&opts.card, "card", "", "run a quick search card (home, commercial, performance, sports, help)")
	cmd.Flags().StringVar(&opts.location, "location", "", "where the equipment will be used")
	cmd.Flags().IntVar(&opts.budgetMin, "budget-min", 0, "minimum budget in AED")
	cmd.Flags().IntVar(&opts.budgetMax, "budget-max", 0, "maximum budget in AED")
	cmd.Flags().BoolVar(&opts.noInput, "no-input", false, "never prompt for clarifying answers")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the raw response as JSON")
	cmd.Flags().StringVar(&opts.theme, "theme", "dark", "interactive theme (dark, light)")

	return cmd
}

func runSearch(cmd *cobra.Command, opts *searchOptions, query string) error {
	ctx := cmd.Context()

	_, cat, adv, err := setup(ctx)
	if err != nil {
		return err
	}
	defer adv.Close()

	if opts.card != "" {
		card, ok := advisor.QuickCardByID(opts.card)
		if !ok {
			return fmt.Errorf("unknown quick card %q", opts.card)
		}
		query = card.Query
	}

	if opts.interactive {
		return tui.Run(ctx,
			tui.WithSearcher(adv),
			tui.WithCatalog(cat),
			tui.WithTheme(themes.ByName(opts.theme)),
			tui.WithInitialQuery(query))
	}

	req := buildSearchRequest(opts, query)
	resp, source, err := adv.Search(ctx, req)
	if err != nil {
		return err
	}

	if advisor.ClassifyState(resp, len(req.Answers) > 0) == advisor.StateNeedsClarification && canPrompt(opts) {
		out := cmd.OutOrStdout()
		if err := cli.RenderSearch(out, resp, source, cat); err != nil {
			return err
		}

		prompter := cli.NewPrompter(cmd.InOrStdin(), out)
		answers, err := prompter.AskClarifying(ctx, resp.ClarifyingQuestions)
		if err != nil {
			return err
		}
		slog.Debug("Re-running search with answers", "answers", answers)

		req.Answers = answers
		resp, source, err = adv.Search(ctx, req)
		if err != nil {
			return err
		}
	}

	if opts.jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	return cli.RenderSearch(cmd.OutOrStdout(), resp, source, cat)
}

func buildSearchRequest(opts *searchOptions, query string) advisor.SearchRequest {
	req := advisor.SearchRequest{Query: strings.TrimSpace(query)}
	if len(opts.answers) > 0 {
		req.Answers = opts.answers
	}

	if opts.location != "" || opts.budgetMin > 0 || opts.budgetMax > 0 {
		sc := &advisor.SearchContext{}
		if opts.location != "" {
			loc := opts.location
			sc.Location = &loc
		}
		if opts.budgetMin > 0 {
			minBudget := opts.budgetMin
			sc.BudgetMin = &minBudget
		}
		if opts.budgetMax > 0 {
			maxBudget := opts.budgetMax
			sc.BudgetMax = &maxBudget
		}
		req.Context = sc
	}
	return req
}

func canPrompt(opts *searchOptions) bool {
	if opts.noInput || opts.jsonOut {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
