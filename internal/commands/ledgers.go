package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/ledger"
)

func newLedgersCommand(opts *rootOptions) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "ledgers",
		Short: "List month ledgers, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := opts.open()
			if err != nil {
				return err
			}
			ledgers, err := ws.store.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(ledgers) == 0 {
				fmt.Fprintln(out, "No ledgers yet")
				return nil
			}

			r := ws.renderer()
			if month == "" {
				table, err := r.Ledgers(ledgers)
				if err != nil {
					return err
				}
				fmt.Fprint(out, table)
				return nil
			}

			year, m, err := ledger.ParseMonthLabel(month)
			if err != nil {
				return err
			}
			label := ledger.FormatMonthLabel(year, m)
			for _, l := range ledgers {
				if l.Month != label {
					continue
				}
				table, err := r.Transactions(l.Transactions)
				if err != nil {
					return err
				}
				fmt.Fprint(out, table)
				return nil
			}
			return fmt.Errorf("no ledger for %s", label)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "show the transactions of one ledger, e.g. \"March 2024\"")

	return cmd
}
