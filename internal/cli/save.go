package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gentrystinson/cabquote/internal/project"
	"github.com/gentrystinson/cabquote/internal/quote"
)

var saveName string
var saveID string

var saveCmd = &cobra.Command{
	Use:   "save <project-file>",
	Short: "Price a project file and save it as a quote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := project.LoadProject(args[0])
		if err != nil {
			return fmt.Errorf("failed to load project: %w", err)
		}
		eng, err := engine()
		if err != nil {
			return err
		}

		name := saveName
		if name == "" {
			name = p.Name
		}
		q, err := quote.Assemble(p, eng, saveID, name, time.Now().UTC())
		if err != nil {
			return err
		}

		client, closeStore, err := hostClient()
		if err != nil {
			return err
		}
		defer closeStore()

		result, err := client.SaveQuote(cmd.Context(), q)
		if err != nil {
			return fmt.Errorf("failed to save quote: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved quote %s (%s)\n", result.QuoteID, q.ProjectName)
		return nil
	},
}

func init() {
	saveCmd.Flags().StringVarP(&saveName, "name", "n", "", "project name for the quote (defaults to the file's project name)")
	saveCmd.Flags().StringVar(&saveID, "id", "", "overwrite an existing quote id instead of creating a new one")
	rootCmd.AddCommand(saveCmd)
}
