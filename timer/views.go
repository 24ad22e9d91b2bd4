package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/tobiclare/studylog/tracker"
)

var (
	baseStyle = lipgloss.NewStyle().Padding(1, padding)

	mainStyle = lipgloss.NewStyle().Bold(true)

	topicStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#30a14e", Dark: "#9be9a8"})

	hintStyle = lipgloss.NewStyle().Faint(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#fbbf24"})

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"})
)

// promptView is shown while the timer is idle and waiting for a topic.
func (t *Timer) promptView() string {
	var s strings.Builder

	if t.lastSess != nil {
		summary := t.tracker.Stats()

		s.WriteString(mainStyle.Render(fmt.Sprintf(
			"Recorded %s: %d min",
			t.lastSess.Topic,
			t.lastSess.Minutes,
		)))
		s.WriteString("\n")
		s.WriteString(hintStyle.Render(fmt.Sprintf(
			"%d sessions, %d minutes total, %d day streak",
			summary.TotalSessions,
			summary.TotalMinutes,
			summary.Streak,
		)))
		s.WriteString("\n\n")
	}

	if t.warning != "" {
		s.WriteString(warnStyle.Render(t.warning))
		s.WriteString("\n\n")
	}

	if recent := t.tracker.Recent(t.Opts.RecentLimit); len(recent) > 0 {
		s.WriteString(hintStyle.Render("Recent sessions"))
		s.WriteString("\n")

		for _, sess := range recent {
			s.WriteString(fmt.Sprintf(
				"%s  %s (%d min)\n",
				hintStyle.Render(sess.Date),
				sess.Topic,
				sess.Minutes,
			))
		}

		s.WriteString("\n")
	}

	s.WriteString(t.topicForm.View())
	s.WriteString("\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.quit,
	}))

	return s.String()
}

// sessionView is shown while a session is running or paused.
func (t *Timer) sessionView() string {
	var s strings.Builder

	s.WriteString(topicStyle.Render(t.tracker.Topic()))

	if t.tracker.State() == tracker.StatePaused {
		s.WriteString(" " + pausedStyle.Render("[Paused]"))
	}

	s.WriteString("\n\n")
	s.WriteString(mainStyle.Render(t.tracker.FormattedElapsed()))
	s.WriteString("\n\n")
	s.WriteString(hintStyle.Render("Daily goal"))
	s.WriteString("\n")
	s.WriteString(t.progress.ViewAs(t.goalPercent()))

	if t.warning != "" {
		s.WriteString("\n\n" + warnStyle.Render(t.warning))
	}

	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.finish,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) View() string {
	if t.tracker.State() == tracker.StateIdle {
		return baseStyle.Render(t.promptView())
	}

	return baseStyle.Render(t.sessionView())
}
