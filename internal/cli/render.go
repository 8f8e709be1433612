package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/fokus-app/fokus/internal/core"
)

// Style definitions.
var (
	alertTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	alertBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 2)

	infoBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderAlert renders a modal alert as a bordered box.
func renderAlert(a core.Alert) string {
	body := alertTitleStyle.Render(a.Title) + "\n" + a.Content
	return alertBoxStyle.Render(body)
}

// renderInfo renders a non-blocking notice as a bordered box.
func renderInfo(title, content string) string {
	body := sectionStyle.Render(title) + "\n" + content
	return infoBoxStyle.Render(body)
}

// printServiceError resolves a service failure for the terminal. Policy
// rejections are part of normal operation: the alert is rendered and the
// command exits cleanly. Everything else propagates to cobra.
func printServiceError(err error) error {
	if err == nil {
		return nil
	}
	if p := core.AsPolicy(err); p != nil {
		fmt.Println(renderAlert(p.Alert))
		return nil
	}
	return err
}
