package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gentrystinson/cabquote/internal/export"
	"github.com/gentrystinson/cabquote/internal/quote"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <quote-id>",
	Short: "Export a saved quote to a spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, closeStore, err := hostClient()
		if err != nil {
			return err
		}
		defer closeStore()

		q, err := client.QuoteByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		eng, err := engine()
		if err != nil {
			return err
		}
		p, _ := quote.Restore(q)

		out := exportOut
		if out == "" {
			out = fmt.Sprintf("cabinet_quote_%s.xlsx", q.ID)
		}
		if err := export.ExportXLSX(out, q, eng.ProjectBreakdown(p)); err != nil {
			return fmt.Errorf("failed to export quote: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", q.ID, out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output file path (default cabinet_quote_<id>.xlsx)")
	rootCmd.AddCommand(exportCmd)
}
