// Package timer renders the interactive study timer and reports the
// status of a running instance
package timer

import (
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/tobiclare/studylog/config"
	"github.com/tobiclare/studylog/internal/models"
	"github.com/tobiclare/studylog/store"
	"github.com/tobiclare/studylog/tracker"
)

const (
	padding  = 2
	maxWidth = 60
)

// tickMsg drives the once-per-second elapsed counter.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Timer is the bubbletea model for an interactive study session.
type Timer struct {
	tracker   *tracker.Tracker
	Opts      *config.AppConfig
	topicForm *huh.Form
	progress  progress.Model
	help      help.Model
	topic     string
	warning   string
	lastSess  *models.Session
	// ticking reports whether a tick command is already in flight so
	// that a rapid pause/resume cannot start a second chain and double
	// the counter.
	ticking bool
}

// New creates a studylog timer.
func New(db store.Store, cfg *config.AppConfig) (*Timer, error) {
	tr, err := tracker.New(db)
	if err != nil {
		return nil, err
	}

	t := &Timer{
		tracker:  tr,
		Opts:     cfg,
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
	}

	t.topicForm = t.newTopicForm()

	return t, nil
}

// newTopicForm builds the prompt shown whenever the timer is idle.
func (t *Timer) newTopicForm() *huh.Form {
	t.topic = ""

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What are you studying?").
				Prompt("> ").
				Value(&t.topic),
		),
	).WithShowHelp(false)
}

func (t *Timer) Init() tea.Cmd {
	return t.topicForm.Init()
}

// notify sends a desktop notification after a session is recorded.
func (t *Timer) notify(sess models.Session) {
	if !t.Opts.Notify {
		return
	}

	title := "Session recorded"

	msg := fmt.Sprintf("%s: %d minutes", sess.Topic, sess.Minutes)

	// pathToIcon will be an empty string if file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		filepath.Join(config.Dir(), "static", "icon.png"),
	)

	err := beeep.Notify(title, msg, pathToIcon)
	if err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}
}

// runSessionCmd executes the specified command.
func (t *Timer) runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

// goalPercent reports progress toward the daily study goal, counting both
// recorded minutes and the session in flight.
func (t *Timer) goalPercent() float64 {
	if t.Opts.DailyGoal <= 0 {
		return 0
	}

	secsToday := t.tracker.MinutesOn(time.Now())*60 + t.tracker.ElapsedSeconds()

	percent := float64(secsToday) / float64(t.Opts.DailyGoal*60)
	if percent > 1 {
		percent = 1
	}

	return percent
}
