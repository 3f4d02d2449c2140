package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/importer"
	"github.com/ledgerlens/ledgerlens/internal/importlog"
	"github.com/ledgerlens/ledgerlens/internal/ledger"
	"github.com/ledgerlens/ledgerlens/internal/model"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import [file...]",
		Short: "Import bank statements into the month ledgers",
		Long: "Import parses the given statement files, or every .txt file in import/ when\n" +
			"none are given, and merges their transactions into the stored ledgers.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open()
			if err != nil {
				return err
			}
			return runImport(cmd.OutOrStdout(), ws, format, args)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "statement format (default from config)")

	return cmd
}

// statement is one file queued for import.
type statement struct {
	name    string
	path    string
	scanned bool // found in import/ and eligible to be moved to processed
}

func runImport(out io.Writer, ws *workspace, format string, paths []string) error {
	parser, err := ws.parser(format)
	if err != nil {
		return err
	}

	queue, err := importQueue(ws.root, paths)
	if err != nil {
		return err
	}
	if len(queue) == 0 {
		fmt.Fprintln(out, "No statements to import")
		return nil
	}

	ledgers, err := ws.store.Load()
	if err != nil {
		return err
	}

	var (
		entries   []importlog.Entry
		processed []string
		failed    int
	)
	for _, st := range queue {
		now := time.Now().UTC()
		txns, err := readStatement(parser, st.path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "could not read file %s: %v\n", st.name, err)
			ws.logger.Warn("statement import failed", "file", st.name, "err", err)
			entries = append(entries, importlog.Entry{
				Timestamp: now,
				Source:    st.name,
				Action:    importlog.ActionFailed,
				Details:   err.Error(),
			})
			continue
		}

		ledgers = ledger.Merge(ledgers, txns)
		for _, mc := range countByMonth(txns) {
			fmt.Fprintf(out, "Imported %d transactions for %s\n", mc.count, mc.label)
			entries = append(entries, importlog.Entry{
				Timestamp: now,
				Source:    st.name,
				Action:    importlog.ActionImported,
				Month:     mc.label,
				Count:     mc.count,
				Details:   "format=" + parser.Format(),
			})
		}
		if st.scanned && ws.cfg.Import.AutoMarkProcessed {
			processed = append(processed, st.name)
		}
	}

	if err := ws.store.Save(ledgers); err != nil {
		return fmt.Errorf("saving ledgers: %w", err)
	}

	for _, name := range processed {
		if err := importer.MarkProcessed(ws.root, name); err != nil {
			return err
		}
	}

	if err := importlog.Append(ws.root, entries); err != nil {
		ws.logger.Warn("failed to write import log", "err", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d statements could not be imported", failed, len(queue))
	}
	return nil
}

func importQueue(root string, paths []string) ([]statement, error) {
	if len(paths) == 0 {
		files, err := importer.Scan(root)
		if err != nil {
			return nil, err
		}
		queue := make([]statement, len(files))
		for i, f := range files {
			queue[i] = statement{name: f.Name, path: f.Path, scanned: true}
		}
		return queue, nil
	}

	queue := make([]statement, len(paths))
	for i, p := range paths {
		queue[i] = statement{name: filepath.Base(p), path: p}
	}
	return queue, nil
}

func readStatement(p importer.Parser, path string) ([]model.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(string(data))
}

type monthCount struct {
	label string
	count int
}

// countByMonth tallies transactions per ledger label in first-appearance order.
func countByMonth(txns []model.Transaction) []monthCount {
	var out []monthCount
	index := make(map[string]int)
	for _, t := range txns {
		label := ledger.LabelFor(t.Date)
		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, monthCount{label: label})
		}
		out[i].count++
	}
	return out
}
