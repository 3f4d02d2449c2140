package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/aggregate"
	"github.com/ledgerlens/ledgerlens/internal/forecast"
	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/render"
)

// reportFunc renders one view of the flat transaction set.
type reportFunc func(r *render.Renderer, txns []model.Transaction) (string, error)

func newReportCommand(opts *rootOptions, use, short string, report reportFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := opts.open()
			if err != nil {
				return err
			}
			txns, err := ws.transactions()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(txns) == 0 {
				fmt.Fprintln(out, "No transactions yet")
				return nil
			}
			text, err := report(ws.renderer(), txns)
			if err != nil {
				return err
			}
			fmt.Fprint(out, text)
			return nil
		},
	}
}

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	return newReportCommand(opts, "summary", "Show income, expenses and savings per month",
		func(r *render.Renderer, txns []model.Transaction) (string, error) {
			return r.Summaries(aggregate.Summarize(txns))
		})
}

func newDistributionCommand(opts *rootOptions) *cobra.Command {
	return newReportCommand(opts, "distribution", "Show each category's share of expenses",
		func(r *render.Renderer, txns []model.Transaction) (string, error) {
			return r.Distribution(aggregate.Distribution(txns))
		})
}

func newSavingsCommand(opts *rootOptions) *cobra.Command {
	return newReportCommand(opts, "savings", "Show the savings rate per month",
		func(r *render.Renderer, txns []model.Transaction) (string, error) {
			return r.SavingsRates(aggregate.SavingsRates(aggregate.Summarize(txns)))
		})
}

func newForecastCommand(opts *rootOptions) *cobra.Command {
	return newReportCommand(opts, "forecast", "Forecast next month's expenses",
		func(r *render.Renderer, txns []model.Transaction) (string, error) {
			summaries := aggregate.Summarize(txns)
			f, ok := forecast.Forecast(summaries)
			if !ok {
				return fmt.Sprintf("Not enough data for a forecast: need %d months, have %d\n",
					forecast.MinMonths, len(summaries)), nil
			}
			return r.Forecast(f)
		})
}

func newOverviewCommand(opts *rootOptions) *cobra.Command {
	return newReportCommand(opts, "overview", "Summarize the whole period",
		func(r *render.Renderer, txns []model.Transaction) (string, error) {
			trend, ok := aggregate.SpendingTrend(aggregate.Summarize(txns))
			return r.Overview(aggregate.Overview(txns), trend, ok)
		})
}
