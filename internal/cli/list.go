package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fokus-app/fokus/pkg/models"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the backlog and today's focus set",
	Long: `Show tasks grouped into the two working sections: GUDANG IDE (the
backlog) and FOKUS HARI INI (today's focus set, capped at the configured
maximum). Sub-ideas are nested under their main idea with a completion
rollup. Use --all to include finished tasks.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil {
			return fmt.Errorf("store not initialized")
		}

		today := Store.TasksByStatus(models.StatusToday)
		fmt.Println(sectionStyle.Render(fmt.Sprintf("== FOKUS HARI INI (%d/%d) ==", len(today), Policy.TodayCap)))
		if len(today) == 0 {
			fmt.Println(dimStyle.Render("  (kosong — pilih maksimal 3 prioritas)"))
		}
		focusMode, activeID := Store.FocusMode()
		for _, t := range today {
			marker := " "
			if focusMode && t.ID == activeID {
				marker = "▶"
			}
			fmt.Printf("  %s %-9s %s%s\n", marker, t.ID, t.Title, taskSuffix(t))
		}
		fmt.Println()

		fmt.Println(sectionStyle.Render("== GUDANG IDE =="))
		backlog := Store.TasksByStatus(models.StatusBacklog)
		if len(backlog) == 0 {
			fmt.Println(dimStyle.Render("  (kosong)"))
		}
		// Main ideas print as containers with their sub-ideas nested; loose
		// tasks print flat. Sub-ideas whose parent is also in the backlog are
		// only shown nested.
		shown := make(map[string]bool)
		for _, t := range backlog {
			if !t.IsMainIdea {
				continue
			}
			p := Repo.GetProgress(t.ID)
			fmt.Printf("  %-9s %s %s\n", t.ID, t.Title,
				dimStyle.Render(fmt.Sprintf("[%d/%d · %d%%]", p.Completed, p.Total, p.Percentage)))
			shown[t.ID] = true
			for _, sub := range Repo.GetSubIdeas(t.ID) {
				if sub.Status != models.StatusBacklog {
					continue
				}
				fmt.Printf("    %-9s %s%s\n", sub.ID, sub.Title, taskSuffix(sub))
				shown[sub.ID] = true
			}
		}
		for _, t := range backlog {
			if shown[t.ID] {
				continue
			}
			fmt.Printf("  %-9s %s%s\n", t.ID, t.Title, taskSuffix(t))
		}

		if listAll {
			done := Store.TasksByStatus(models.StatusDone)
			if len(done) > 0 {
				fmt.Println()
				fmt.Println(sectionStyle.Render(fmt.Sprintf("== SELESAI (%d) ==", len(done))))
				for _, t := range done {
					fmt.Printf("  %-9s %s%s\n", t.ID, t.Title, taskSuffix(t))
				}
			}
		}
		return nil
	},
}

// taskSuffix annotates a task line with its estimate and failure history.
func taskSuffix(t *models.Task) string {
	s := ""
	if t.EstimatedMinutes > 0 {
		s += dimStyle.Render(fmt.Sprintf(" (%d min)", t.EstimatedMinutes))
	}
	if t.HasFailedFocus() {
		s += dimStyle.Render(fmt.Sprintf(" ✗%d", len(t.Notes)))
	}
	return s
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "Include finished tasks")
	rootCmd.AddCommand(listCmd)
}
