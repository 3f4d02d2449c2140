package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/id"
	"github.com/ledgerlens/ledgerlens/internal/importlog"
	"github.com/ledgerlens/ledgerlens/internal/ledger"
	"github.com/ledgerlens/ledgerlens/internal/model"
)

// manualSource marks manual entries in the import log.
const manualSource = "manual"

func newAddCommand(opts *rootOptions) *cobra.Command {
	var (
		params model.EntryParams
		income bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction by hand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := opts.open()
			if err != nil {
				return err
			}
			if income {
				params.Kind = model.KindIncome
			}
			return runAdd(cmd.OutOrStdout(), ws, params)
		},
	}

	cmd.Flags().StringVar(&params.Amount, "amount", "", "positive amount, e.g. 1250.50")
	cmd.Flags().StringVar(&params.Category, "category", "", "category name, e.g. \"Food & Dining\"")
	cmd.Flags().StringVar(&params.Date, "date", time.Now().Format(model.DateFormat), "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&params.Description, "description", "", "free-text description")
	cmd.Flags().BoolVar(&income, "income", false, "record income instead of an expense")

	return cmd
}

func runAdd(out io.Writer, ws *workspace, params model.EntryParams) error {
	txn, err := model.NewEntry("", params)
	if err != nil {
		return err
	}
	txn.ID = id.NewTransactionID(txn.Date)

	ledgers, err := ws.store.Load()
	if err != nil {
		return err
	}
	if err := ws.store.Save(ledger.Merge(ledgers, []model.Transaction{txn})); err != nil {
		return fmt.Errorf("saving ledgers: %w", err)
	}

	label := ledger.LabelFor(txn.Date)
	if err := importlog.Append(ws.root, []importlog.Entry{{
		Timestamp: time.Now().UTC(),
		Source:    manualSource,
		Action:    importlog.ActionAdded,
		Month:     label,
		Count:     1,
		Details:   txn.ID,
	}}); err != nil {
		ws.logger.Warn("failed to write import log", "err", err)
	}

	fmt.Fprintf(out, "Added %s of %s (%s) to %s\n",
		txn.Kind, ws.renderer().Money(txn.Amount), txn.Category, label)
	return nil
}
