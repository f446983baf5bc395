package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"foodiefinds/internal/database/schema"
)

func newDBCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dbcheck",
		Short: "Check that the catalog tables are readable",
		Long: `The dbcheck command connects with the configured database settings and counts
the rows of the restaurants and dishes tables. It exits non-zero when a table is missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer closeAll(log, db)

			report := schema.Inspect(contextOrBackground(cmd.Context()), db, log, schema.CatalogTables...)
			if err := renderReport(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if !report.Ready() {
				return fmt.Errorf("missing tables: %v", report.Missing())
			}
			return nil
		},
	}
}

func renderReport(w io.Writer, r schema.Report) error {
	data := pterm.TableData{{"TABLE", "STATUS", "ROWS", "REASON"}}
	for _, t := range r.Tables {
		status, rows := "ready", strconv.FormatInt(t.Rows, 10)
		if !t.Ready {
			status, rows = "missing", "-"
		}
		data = append(data, []string{t.Name, status, rows, t.Reason})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
