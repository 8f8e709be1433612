package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportCopy bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render today's focus report",
	Long: `Render today's focus report as plain text: completions, failures,
streak, reputation, and a per-task verdict line. Use --copy to also place
it on the clipboard for sharing with an accountability partner.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Reporter == nil {
			return fmt.Errorf("reporter not initialized")
		}

		report := Reporter.ExportTaskReport()
		fmt.Print(report)

		if reportCopy {
			if Publisher == nil {
				return fmt.Errorf("clipboard not available")
			}
			if err := Publisher.PublishText(report); err != nil {
				return fmt.Errorf("copying report: %w", err)
			}
			fmt.Println(dimStyle.Render("(disalin ke clipboard)"))
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportCopy, "copy", false, "Copy the report to the clipboard")
	rootCmd.AddCommand(reportCmd)
}
