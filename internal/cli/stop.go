package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stopReason string

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Abandon the active focus session with a reason",
	Long: `Abandon the active focus session.

A written reason is mandatory and is recorded against the task as a
timestamped checkpoint note. Abandoning costs reputation; the third
failure of the day locks new sessions for an hour.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Sessions == nil {
			return fmt.Errorf("session controller not initialized")
		}

		checkpoint, err := Sessions.StopEarly(stopReason)
		if err != nil {
			return printServiceError(err)
		}
		fmt.Println(renderInfo(checkpoint.Title, checkpoint.Content))

		alert, lockedOut, err := Sessions.EvaluateConsequence()
		if err != nil {
			return err
		}
		if alert != nil {
			fmt.Println(renderAlert(*alert))
			notifyLockout(alert, lockedOut)
		}
		return nil
	},
}

func init() {
	stopCmd.Flags().StringVar(&stopReason, "reason", "", "Why the session is being abandoned (required)")
	_ = stopCmd.MarkFlagRequired("reason")
	rootCmd.AddCommand(stopCmd)
}
