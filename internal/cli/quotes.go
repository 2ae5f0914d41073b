package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gentrystinson/cabquote/internal/pricing"
	"github.com/gentrystinson/cabquote/internal/quote"
)

var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "List saved quotes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, closeStore, err := hostClient()
		if err != nil {
			return err
		}
		defer closeStore()

		summaries, err := client.Quotes(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch quotes: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(summaries) == 0 {
			fmt.Fprintln(out, "No quotes found")
			return nil
		}
		for _, s := range summaries {
			fmt.Fprintf(out, "%s  %-24s  %s  %-10s  %s\n",
				color.New(color.Bold).Sprint(s.ID),
				s.ProjectName,
				s.Timestamp.Format("2006-01-02"),
				s.Status,
				pricing.FormatMoney(s.FinalTotal))
		}
		return nil
	},
}

var quotesShowCmd = &cobra.Command{
	Use:   "show <quote-id>",
	Short: "Show a saved quote's full breakdown",
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
		p, warnings := quote.Restore(q)
		for _, w := range warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w.Message)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Quote %s: %s (%s)\n\n", q.ID, q.ProjectName, q.Timestamp.Format("2006-01-02"))
		printBreakdown(cmd, eng.ProjectBreakdown(p))
		return nil
	},
}

func init() {
	quotesCmd.AddCommand(quotesShowCmd)
	rootCmd.AddCommand(quotesCmd)
}
