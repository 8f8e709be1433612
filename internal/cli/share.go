package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// commitmentText is the public-commitment message placed on the clipboard.
func commitmentText(title string) string {
	return fmt.Sprintf("🔥 Hari ini saya fokus menyelesaikan: %s. Tagih saya nanti malam!", title)
}

var shareCmd = &cobra.Command{
	Use:   "share <task-id>",
	Short: "Copy a public commitment for a task to the clipboard",
	Long: `Copy a commitment message for the given task to the clipboard, ready to
paste wherever your accountability partner will see it. Public commitment
raises the cost of quitting.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil || Publisher == nil {
			return fmt.Errorf("store not initialized")
		}

		task, err := Store.Get(args[0])
		if err != nil {
			return err
		}
		if err := Publisher.PublishText(commitmentText(task.Title)); err != nil {
			return fmt.Errorf("copying commitment: %w", err)
		}
		fmt.Println("Komitmen disalin ke clipboard:")
		fmt.Println(dimStyle.Render("  " + commitmentText(task.Title)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
}
