package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gentrystinson/cabquote/internal/pricing"
	"github.com/gentrystinson/cabquote/internal/project"
)

var priceCmd = &cobra.Command{
	Use:   "price <project-file>",
	Short: "Price a project file and print the cost breakdown",
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
		printBreakdown(cmd, eng.ProjectBreakdown(p))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(priceCmd)
}

func printBreakdown(cmd *cobra.Command, bd pricing.ProjectBreakdown) {
	header := color.New(color.Bold)
	amount := color.New(color.FgGreen)
	detail := color.New(color.Faint)

	out := cmd.OutOrStdout()
	for _, room := range bd.Rooms {
		fmt.Fprintf(out, "%s  %s  (%.2f linear ft.)\n",
			header.Sprint(room.RoomName),
			amount.Sprint(pricing.FormatMoney(room.Subtotal)),
			room.LinearFeet)
		for _, line := range room.Lines {
			fmt.Fprintf(out, "  - %s: %s  %s\n",
				line.Category.DisplayName(), line.Label,
				detail.Sprint(pricing.FormatMoney(line.Cost)))
		}
		for _, addon := range room.Addons {
			fmt.Fprintf(out, "  - %s: %g %s  %s\n",
				addon.Name, addon.Value, addon.Unit,
				detail.Sprint(pricing.FormatMoney(addon.Cost)))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Project Sub-Total  %s\n", amount.Sprint(pricing.FormatMoney(bd.Totals.Subtotal)))
	if bd.Totals.Discount != 0 {
		fmt.Fprintf(out, "Discount           -%s\n", pricing.FormatMoney(bd.Totals.Discount))
	}
	fmt.Fprintf(out, "Tax                %s\n", pricing.FormatMoney(bd.Totals.Tax))
	fmt.Fprintf(out, "Installation       %s\n", pricing.FormatMoney(bd.Totals.Installation))
	fmt.Fprintf(out, "%s      %s\n", header.Sprint("Project Total"), amount.Sprint(pricing.FormatMoney(bd.Totals.Total)))
}
