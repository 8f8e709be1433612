package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done",
	Short: "Complete the task under active focus",
	Long: `Complete the active focus session without the session view.

The session markers live in the snapshot, so a session started in one
process can be completed from another.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Sessions == nil || Store == nil {
			return fmt.Errorf("session controller not initialized")
		}

		active := Store.ActiveTask()
		if active == nil {
			return fmt.Errorf("no active focus session")
		}
		if err := Sessions.CompleteTask(active.ID); err != nil {
			return printServiceError(err)
		}
		fmt.Printf("Task %s selesai: %s 🎉\n", active.ID, active.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
