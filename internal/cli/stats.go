package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the accountability record and estimation analytics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Store == nil || Reporter == nil {
			return fmt.Errorf("store not initialized")
		}

		a := Store.Accountability()
		now := time.Now()

		fmt.Println(sectionStyle.Render("== AKUNTABILITAS =="))
		fmt.Printf("  Reputasi:       %3d/100  %s\n", a.ReputationScore, reputationBar(a.ReputationScore))
		fmt.Printf("  Streak:         %d hari (terpanjang %d)\n", a.CurrentStreak, a.LongestStreak)
		if a.LockedOut(now) {
			fmt.Printf("  Status:         %s\n",
				alertTitleStyle.Render(fmt.Sprintf("TERKUNCI sampai %s", a.LockoutUntil.Local().Format("15:04"))))
		}

		stats := Reporter.GetAnalytics()
		fmt.Println()
		fmt.Println(sectionStyle.Render("== ESTIMASI =="))
		fmt.Printf("  Task selesai:   %d\n", stats.TotalCompleted)
		fmt.Printf("  Menit estimasi: %d\n", stats.TotalEstimated)
		fmt.Printf("  Menit aktual:   %d\n", stats.TotalActual)
		fmt.Printf("  Akurasi:        %d%%\n", stats.Accuracy)
		fmt.Printf("  Rata-rata:      %d min/task\n", stats.AvgFocusTime)
		return nil
	},
}

// reputationBar renders the score as a 20-cell bar.
func reputationBar(score int) string {
	filled := score / 5
	if filled < 0 {
		filled = 0
	}
	if filled > 20 {
		filled = 20
	}
	return dimStyle.Render("[" + strings.Repeat("█", filled) + strings.Repeat("░", 20-filled) + "]")
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
