package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress <main-idea-id>",
	Short: "Show the completion rollup for a main idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil || Repo == nil {
			return fmt.Errorf("repository not initialized")
		}

		task, err := Store.Get(args[0])
		if err != nil {
			return err
		}
		p := Repo.GetProgress(task.ID)
		fmt.Printf("%s: %s\n", task.ID, task.Title)
		fmt.Printf("  %d/%d sub-ide selesai (%d%%)\n", p.Completed, p.Total, p.Percentage)
		for _, sub := range Repo.GetSubIdeas(task.ID) {
			fmt.Printf("  - %-9s %s [%s]\n", sub.ID, sub.Title, sub.Status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
