// Package session prints logged study sessions to the command-line
package session

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/tobiclare/studylog/internal/models"
	"github.com/tobiclare/studylog/internal/ui"
)

const (
	noSessionsMsg = "No sessions found for the specified time range"
)

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, sessions []models.Session) {
	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		recorded := sess.Timestamp.Format("Jan 02, 2006 03:04 PM")
		if sess.Timestamp.IsZero() {
			recorded = sess.Date
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			ui.Green(sess.Topic),
			fmt.Sprintf("%d min", sess.Minutes),
			sess.Date,
			recorded,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "TOPIC", "MINUTES", "DATE", "RECORDED AT"},
	}, tableBody...)

	ui.PrintTable(w, tableBody)
}

// Filter narrows the log to sessions recorded within the given range,
// preserving the newest-first order.
func Filter(
	sessions []models.Session,
	start, end time.Time,
) []models.Session {
	filtered := make([]models.Session, 0, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		if !start.IsZero() && sess.Timestamp.Before(start) {
			continue
		}

		if !end.IsZero() && sess.Timestamp.After(end) {
			continue
		}

		filtered = append(filtered, sess)
	}

	return filtered
}

// List prints out a table of all the sessions that were recorded within
// the specified time range.
func List(sessions []models.Session) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(os.Stdout, sessions)

	return nil
}
