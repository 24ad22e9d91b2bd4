// Package export serializes the session log to CSV and parses it back
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tobiclare/studylog/internal/models"
)

// Header is the fixed first line of an exported session log.
const Header = "Topic,Minutes,Date,Timestamp"

var errEmptyTopic = errors.New("empty topic")

// quote wraps a field in double quotes, doubling any embedded quotes per
// the CSV convention. The topic column is always quoted so that the output
// is stable regardless of content.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Sessions writes the session log as CSV: a fixed header followed by one
// row per session. It is a pure transform and leaves file handling to the
// caller.
func Sessions(w io.Writer, sessions []models.Session) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}

	for i := range sessions {
		sess := sessions[i]

		_, err := fmt.Fprintf(
			w,
			"%s,%d,%s,%s\n",
			quote(sess.Topic),
			sess.Minutes,
			sess.Date,
			sess.Timestamp.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// parseRow converts one CSV record into a session. Rows shorter than the
// full column set are tolerated as long as topic and minutes are present.
func parseRow(record []string) (models.Session, error) {
	var sess models.Session

	if len(record) < 2 {
		return sess, errors.New("too few columns")
	}

	topic := strings.TrimSpace(record[0])
	if topic == "" {
		return sess, errEmptyTopic
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return sess, fmt.Errorf("invalid minutes value: %q", record[1])
	}

	if minutes < 1 {
		return sess, fmt.Errorf("minutes must be positive, got %d", minutes)
	}

	sess.Topic = topic
	sess.Minutes = minutes

	timestamp := time.Now()

	if len(record) > 3 && strings.TrimSpace(record[3]) != "" {
		timestamp, err = time.Parse(time.RFC3339, strings.TrimSpace(record[3]))
		if err != nil {
			return sess, fmt.Errorf("invalid timestamp: %q", record[3])
		}
	}

	sess.Timestamp = timestamp
	sess.Date = timestamp.Local().Format(models.DateLayout)

	if len(record) > 2 && strings.TrimSpace(record[2]) != "" {
		date := strings.TrimSpace(record[2])

		_, err = time.Parse(models.DateLayout, date)
		if err != nil {
			return sess, fmt.Errorf("invalid date: %q", record[2])
		}

		sess.Date = date
	}

	sess.ID = sess.Timestamp.UnixMilli()

	return sess, nil
}

// Parse reads sessions from CSV input. A leading header row is skipped if
// present. Malformed rows are collected as errors without aborting the
// rest of the batch so that a partially valid file still imports.
func Parse(r io.Reader) ([]models.Session, []error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var (
		sessions []models.Session
		rowErrs  []error
	)

	var row int

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		row++

		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w", row, err))
			continue
		}

		// Skip the header row
		if row == 1 && len(record) > 0 &&
			strings.EqualFold(strings.TrimSpace(record[0]), "topic") {
			continue
		}

		sess, err := parseRow(record)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w", row, err))
			continue
		}

		sessions = append(sessions, sess)
	}

	return sessions, rowErrs
}
