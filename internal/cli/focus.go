package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fokus-app/fokus/internal/core"
	"github.com/fokus-app/fokus/pkg/models"
)

// Focus session screen states.
const (
	screenRunning = iota
	screenReason
	screenCheckpoint
	screenConsequence
)

type focusModel struct {
	task    *models.Task
	started time.Time
	elapsed time.Duration
	width   int
	height  int

	screen     int
	reason     string
	inputErr   string
	checkpoint core.Alert
	outcome    *core.Alert

	completed bool
	stopped   bool
	lockedOut bool
}

type tickMsg time.Time

type consequenceMsg struct{}

// Focus session styles.
var (
	focusTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	focusBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 4)

	focusHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newFocusModel(task *models.Task) focusModel {
	return focusModel{
		task:    task,
		started: time.Now(),
		screen:  screenRunning,
	}
}

func (m focusModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.elapsed = time.Since(m.started)
		if m.screen == screenRunning {
			return m, tick()
		}
		return m, nil

	case consequenceMsg:
		alert, lockedOut, err := Sessions.EvaluateConsequence()
		if err != nil {
			m.inputErr = err.Error()
		}
		m.outcome = alert
		m.lockedOut = lockedOut
		if alert == nil {
			return m, tea.Quit
		}
		m.screen = screenConsequence
		return m, nil

	case tea.KeyMsg:
		switch m.screen {
		case screenRunning:
			return m.updateRunning(msg)
		case screenReason:
			return m.updateReason(msg)
		case screenCheckpoint:
			// Consequence evaluation is on a timer; ignore keys.
			return m, nil
		case screenConsequence:
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m focusModel) updateRunning(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		if err := Sessions.CompleteTask(m.task.ID); err != nil {
			m.inputErr = err.Error()
			return m, nil
		}
		m.completed = true
		return m, tea.Quit
	case "s":
		if Publisher != nil {
			_ = Publisher.PublishText(commitmentText(m.task.Title))
		}
		return m, nil
	case "e", "esc":
		m.screen = screenReason
		m.inputErr = ""
		return m, nil
	case "ctrl+c":
		// Leave the session live; it survives in the snapshot.
		return m, tea.Quit
	}
	return m, nil
}

func (m focusModel) updateReason(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyRunes:
		m.reason += string(msg.Runes)
		return m, nil
	case tea.KeySpace:
		m.reason += " "
		return m, nil
	case tea.KeyBackspace:
		if len(m.reason) > 0 {
			runes := []rune(m.reason)
			m.reason = string(runes[:len(runes)-1])
		}
		return m, nil
	case tea.KeyEsc:
		m.screen = screenRunning
		m.reason = ""
		m.inputErr = ""
		return m, tick()
	case tea.KeyEnter:
		checkpoint, err := Sessions.StopEarly(m.reason)
		if err != nil {
			if core.IsValidation(err) {
				m.inputErr = err.Error()
				return m, nil
			}
			m.inputErr = err.Error()
			return m, tea.Quit
		}
		m.stopped = true
		m.checkpoint = checkpoint
		m.screen = screenCheckpoint
		// Let the checkpoint sit on screen before the verdict lands.
		return m, tea.Tick(1500*time.Millisecond, func(time.Time) tea.Msg {
			return consequenceMsg{}
		})
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, nil
}

func (m focusModel) View() string {
	var body string

	switch m.screen {
	case screenRunning:
		var b strings.Builder
		b.WriteString(focusTitleStyle.Render(" MODE FOKUS "))
		b.WriteString("\n\n")
		b.WriteString(m.task.Title)
		b.WriteString("\n\n")
		b.WriteString(timerStyle.Render(formatElapsed(m.elapsed)))
		if m.task.EstimatedMinutes > 0 {
			b.WriteString(focusHelpStyle.Render(fmt.Sprintf("  / %d min", m.task.EstimatedMinutes)))
		}
		if m.inputErr != "" {
			b.WriteString("\n\n")
			b.WriteString(alertTitleStyle.Render(m.inputErr))
		}
		body = focusBoxStyle.Render(b.String()) + "\n\n" +
			focusHelpStyle.Render("c: selesai | s: bagikan komitmen | e: keluar (wajib alasan)")

	case screenReason:
		var b strings.Builder
		b.WriteString(focusTitleStyle.Render(" KENAPA BERHENTI? "))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Alasan (min %d karakter):\n", Policy.MinStopReasonLength))
		b.WriteString("> " + m.reason + "█")
		if m.inputErr != "" {
			b.WriteString("\n\n")
			b.WriteString(alertTitleStyle.Render(m.inputErr))
		}
		body = focusBoxStyle.Render(b.String()) + "\n\n" +
			focusHelpStyle.Render("enter: catat & keluar | esc: lanjut fokus")

	case screenCheckpoint:
		body = renderInfo(m.checkpoint.Title, m.checkpoint.Content)

	case screenConsequence:
		body = renderAlert(*m.outcome) + "\n\n" +
			focusHelpStyle.Render("tekan tombol apa saja untuk keluar")
	}

	if m.width > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	mnt := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, mnt, s)
	}
	return fmt.Sprintf("%02d:%02d", mnt, s)
}

var focusCmd = &cobra.Command{
	Use:   "focus <task-id>",
	Short: "Start a locked focus session on a task",
	Long: `Start a distraction-locked focus session.

The terminal switches to a fullscreen session view with a running timer.
Completing the task ('c') earns reputation; leaving early ('e') demands a
written reason, records it against the task, and counts as a failed
attempt. Three failures in one day lock new sessions for an hour.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Sessions == nil || Store == nil {
			return fmt.Errorf("session controller not initialized")
		}

		if err := Sessions.StartFocus(args[0]); err != nil {
			return printServiceError(err)
		}
		task, err := Store.Get(args[0])
		if err != nil {
			return err
		}

		p := tea.NewProgram(newFocusModel(task), tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("running focus session: %w", err)
		}

		fm, ok := final.(focusModel)
		if !ok {
			return nil
		}
		switch {
		case fm.completed:
			fmt.Printf("Task %s selesai. 🎉\n", task.ID)
		case fm.stopped:
			fmt.Println(renderInfo(fm.checkpoint.Title, fm.checkpoint.Content))
			if fm.outcome != nil {
				fmt.Println(renderAlert(*fm.outcome))
				notifyLockout(fm.outcome, fm.lockedOut)
			}
		default:
			fmt.Printf("Sesi fokus %s masih berjalan. Selesaikan dengan 'fokus done' atau keluar dengan 'fokus stop'.\n", task.ID)
		}
		return nil
	},
}

// notifyLockout forwards a lockout alert to the accountability webhook.
func notifyLockout(alert *core.Alert, lockedOut bool) {
	if !lockedOut || Notifier == nil || alert == nil {
		return
	}
	if err := Notifier.Notify(alert.Title, alert.Content); err != nil {
		fmt.Println(dimStyle.Render(fmt.Sprintf("webhook: %v", err)))
	}
}

func init() {
	rootCmd.AddCommand(focusCmd)
}
