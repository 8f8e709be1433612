package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today <task-id>",
	Short: "Promote a task into today's focus set",
	Long: `Promote a backlog task into FOKUS HARI INI.

The set is hard-capped: when it is full, the promotion is refused and the
existing priorities stand. Main ideas cannot be promoted; promote their
sub-ideas instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Repo == nil {
			return fmt.Errorf("repository not initialized")
		}
		if err := Repo.MoveToToday(args[0]); err != nil {
			return printServiceError(err)
		}
		fmt.Printf("Task %s moved to today.\n", args[0])
		return nil
	},
}

var backlogCmd = &cobra.Command{
	Use:   "backlog <task-id>",
	Short: "Demote a task back to the backlog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Repo == nil {
			return fmt.Errorf("repository not initialized")
		}
		if err := Repo.MoveToBacklog(args[0]); err != nil {
			return printServiceError(err)
		}
		fmt.Printf("Task %s moved to backlog.\n", args[0])
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Long: `Delete a task permanently.

Deleting a main idea keeps its sub-ideas: they stay in place as loose
tasks with the parent link cleared.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Repo == nil {
			return fmt.Errorf("repository not initialized")
		}
		if err := Repo.DeleteTask(args[0]); err != nil {
			return printServiceError(err)
		}
		fmt.Printf("Task %s deleted.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(backlogCmd)
	rootCmd.AddCommand(deleteCmd)
}
