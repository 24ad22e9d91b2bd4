package timer

import (
	"bufio"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/pterm/pterm"
	bolt "go.etcd.io/bbolt"

	"github.com/tobiclare/studylog/config"
	"github.com/tobiclare/studylog/internal/timeutil"
	"github.com/tobiclare/studylog/tracker"
)

// Status represents the status of a running timer.
type Status struct {
	UpdatedAt      time.Time     `json:"updated_at"`
	Topic          string        `json:"topic"`
	State          tracker.State `json:"state"`
	ElapsedSeconds int           `json:"elapsed_seconds"`
}

// writeStatus persists the timer status to the given file, replacing any
// previous contents.
func writeStatus(path string, s Status) error {
	statusFile, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(statusFile)

	_, err = writer.Write(b)
	if err != nil {
		return err
	}

	return writer.Flush()
}

// readStatus loads a previously written timer status.
func readStatus(path string) (Status, error) {
	var s Status

	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}

	err = json.Unmarshal(fileBytes, &s)

	return s, err
}

func (t *Timer) writeStatusFile() error {
	return writeStatus(config.StatusFilePath(), Status{
		UpdatedAt:      time.Now(),
		Topic:          t.tracker.Topic(),
		State:          t.tracker.State(),
		ElapsedSeconds: t.tracker.ElapsedSeconds(),
	})
}

// ReportStatus reports the status of the currently running timer.
func ReportStatus() error {
	dbFilePath := config.DBFilePath()
	statusFilePath := config.StatusFilePath()

	var fileMode fs.FileMode = 0o600

	_, err := bolt.Open(dbFilePath, fileMode, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	// This means studylog is not running, so no status to report
	if err == nil {
		return nil
	}

	if !errors.Is(err, bolt.ErrTimeout) {
		return err
	}

	s, err := readStatus(statusFilePath)
	if err != nil {
		// missing file should not return an error
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}

	var text string

	switch s.State {
	case tracker.StateRunning:
		text = "[Studying]"
	case tracker.StatePaused:
		text = "[Paused]"
	default:
		return nil
	}

	pterm.Printfln(
		"%s %s: %s",
		text,
		s.Topic,
		timeutil.FormatSeconds(s.ElapsedSeconds),
	)

	return nil
}
