package timer

import (
	"errors"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/tobiclare/studylog/config"
	"github.com/tobiclare/studylog/tracker"
)

// handleTick advances the elapsed counter once per second while the
// timer is running. The chain stops on pause and is restarted by toggle.
func (t *Timer) handleTick() (tea.Model, tea.Cmd) {
	t.ticking = false

	if t.tracker.State() != tracker.StateRunning {
		return t, nil
	}

	t.tracker.Tick()

	_ = t.writeStatusFile()

	t.ticking = true

	return t, tick()
}

// handleFormEvent feeds input to the topic form and starts a session
// once the form is submitted.
func (t *Timer) handleFormEvent(msg tea.Msg) (tea.Model, tea.Cmd) {
	slog.Debug(spew.Sdump(msg))

	form, cmd := t.topicForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.topicForm = f
	}

	if t.topicForm.State != huh.StateCompleted {
		return t, cmd
	}

	err := t.tracker.Start(t.topic)
	if err != nil {
		t.warning = err.Error()
		t.topicForm = t.newTopicForm()

		return t, t.topicForm.Init()
	}

	t.warning = ""
	t.lastSess = nil

	_ = t.writeStatusFile()

	t.ticking = true

	return t, tick()
}

// handleFinish records the session in progress and returns the timer to
// the topic prompt.
func (t *Timer) handleFinish() (tea.Model, tea.Cmd) {
	sess, err := t.tracker.Finish()

	if errors.Is(err, tracker.ErrSessionTooShort) {
		t.warning = err.Error()

		return t, nil
	}

	if err != nil {
		// The session is still recorded in memory, so warn and move on.
		t.warning = err.Error()
		slog.Error("saving the session log failed", slog.Any("error", err))
	} else {
		t.warning = ""
	}

	t.lastSess = &sess

	_ = os.Remove(config.StatusFilePath())

	t.notify(sess)

	cmdErr := t.runSessionCmd(t.Opts.SessionCmd)
	if cmdErr != nil {
		slog.Error("session command failed", slog.Any("error", cmdErr))
	}

	t.topicForm = t.newTopicForm()

	return t, t.topicForm.Init()
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			_ = os.Remove(config.StatusFilePath())

			return t, tea.Batch(tea.ClearScreen, tea.Quit)
		}

		// While idle, every other key belongs to the topic form.
		if t.tracker.State() == tracker.StateIdle {
			return t.handleFormEvent(msg)
		}

		switch {
		case key.Matches(msg, defaultKeymap.togglePlay):
			if err := t.tracker.Toggle(); err != nil {
				return t, nil
			}

			if t.tracker.State() == tracker.StateRunning && !t.ticking {
				t.ticking = true

				return t, tick()
			}

			return t, nil

		case key.Matches(msg, defaultKeymap.finish):
			return t.handleFinish()

		case key.Matches(msg, defaultKeymap.quit):
			_ = os.Remove(config.StatusFilePath())

			return t, tea.Batch(tea.ClearScreen, tea.Quit)
		}

		return t, nil

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	if t.tracker.State() == tracker.StateIdle {
		return t.handleFormEvent(msg)
	}

	return t, nil
}
