package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fokus-app/fokus/internal/core"
)

var (
	addMainIdea bool
	addParentID string
	addEstimate int
	subEstimate int
)

var addCmd = &cobra.Command{
	Use:   "add <title>...",
	Short: "Capture an idea into the backlog",
	Long: `Capture a new idea into the backlog (GUDANG IDE).

Use --main to create a main-idea container: a grouping node that stays in
the backlog and is broken down into sub-ideas. Use --parent to attach the
new task under an existing main idea.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Repo == nil {
			return fmt.Errorf("repository not initialized")
		}

		title := strings.Join(args, " ")
		task, err := Repo.AddTask(title, core.AddTaskOpts{
			MainIdea:         addMainIdea,
			ParentID:         addParentID,
			EstimatedMinutes: addEstimate,
		})
		if err != nil {
			return printServiceError(err)
		}

		label := "task"
		if task.IsMainIdea {
			label = "main idea"
		}
		fmt.Printf("Added %s %s: %s\n", label, task.ID, task.Title)
		if task.ParentID != "" {
			fmt.Printf("  Parent:   %s\n", task.ParentID)
		}
		if task.EstimatedMinutes > 0 {
			fmt.Printf("  Estimate: %d min\n", task.EstimatedMinutes)
		}
		return nil
	},
}

var subCmd = &cobra.Command{
	Use:   "sub <main-idea-id> <title>...",
	Short: "Add a sub-idea under a main idea",
	Long: `Break a main idea down into a workable sub-idea.

Sub-ideas are the units that get promoted to today and focused on; the main
idea itself never leaves the backlog. The estimate defaults from config
when --estimate is not given.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Repo == nil {
			return fmt.Errorf("repository not initialized")
		}

		title := strings.Join(args[1:], " ")
		task, err := Repo.AddSubIdea(args[0], title, subEstimate)
		if err != nil {
			return printServiceError(err)
		}

		fmt.Printf("Added sub-idea %s under %s: %s (%d min)\n",
			task.ID, task.ParentID, task.Title, task.EstimatedMinutes)
		return nil
	},
}

func init() {
	addCmd.Flags().BoolVar(&addMainIdea, "main", false, "Create a main-idea container")
	addCmd.Flags().StringVar(&addParentID, "parent", "", "Attach under this main idea")
	addCmd.Flags().IntVar(&addEstimate, "estimate", 0, "Estimated focus minutes")
	subCmd.Flags().IntVar(&subEstimate, "estimate", 0, "Estimated focus minutes")
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
}
