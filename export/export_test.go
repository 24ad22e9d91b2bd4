package export

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tobiclare/studylog/internal/models"
)

func TestSessionsSingleRow(t *testing.T) {
	sessions := []models.Session{
		{
			ID:        1704103200000,
			Topic:     "Math",
			Minutes:   5,
			Date:      "2024-01-01",
			Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	var b strings.Builder

	err := Sessions(&b, sessions)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "Topic,Minutes,Date,Timestamp\n\"Math\",5,2024-01-01,2024-01-01T10:00:00Z\n"

	if diff := cmp.Diff(expected, b.String()); diff != "" {
		t.Errorf("CSV output mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionsEmptyLog(t *testing.T) {
	var b strings.Builder

	err := Sessions(&b, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if b.String() != Header+"\n" {
		t.Errorf("expected header only, got %q", b.String())
	}
}

func TestSessionsQuoting(t *testing.T) {
	sessions := []models.Session{
		{
			Topic:     `Reading "Dune", part two`,
			Minutes:   90,
			Date:      "2024-02-10",
			Timestamp: time.Date(2024, 2, 10, 21, 30, 0, 0, time.UTC),
		},
	}

	var b strings.Builder

	if err := Sessions(&b, sessions); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := `"Reading ""Dune"", part two",90,2024-02-10,2024-02-10T21:30:00Z`

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 || lines[1] != expected {
		t.Errorf("expected quoted row %q, got %q", expected, lines[1])
	}
}

func TestParseRoundTrip(t *testing.T) {
	sessions := []models.Session{
		{
			Topic:     "Math",
			Minutes:   5,
			Date:      "2024-01-01",
			Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			Topic:     `Reading "Dune"`,
			Minutes:   25,
			Date:      "2024-01-02",
			Timestamp: time.Date(2024, 1, 2, 9, 15, 0, 0, time.UTC),
		},
	}

	var b strings.Builder

	if err := Sessions(&b, sessions); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, errs := Parse(strings.NewReader(b.String()))
	if len(errs) != 0 {
		t.Fatalf("Unexpected row errors: %v", errs)
	}

	if len(got) != len(sessions) {
		t.Fatalf("expected %d sessions, got %d", len(sessions), len(got))
	}

	for i := range sessions {
		if got[i].Topic != sessions[i].Topic {
			t.Errorf(
				"topic mismatch at row %d: expected %q, got %q",
				i,
				sessions[i].Topic,
				got[i].Topic,
			)
		}

		if got[i].Minutes != sessions[i].Minutes {
			t.Errorf(
				"minutes mismatch at row %d: expected %d, got %d",
				i,
				sessions[i].Minutes,
				got[i].Minutes,
			)
		}

		if got[i].Date != sessions[i].Date {
			t.Errorf(
				"date mismatch at row %d: expected %q, got %q",
				i,
				sessions[i].Date,
				got[i].Date,
			)
		}

		if !got[i].Timestamp.Equal(sessions[i].Timestamp) {
			t.Errorf(
				"timestamp mismatch at row %d: expected %v, got %v",
				i,
				sessions[i].Timestamp,
				got[i].Timestamp,
			)
		}
	}
}

func TestParseCollectsRowErrors(t *testing.T) {
	input := strings.Join([]string{
		"Topic,Minutes,Date,Timestamp",
		`"Math",5,2024-01-01,2024-01-01T10:00:00Z`,
		`"",10,2024-01-01,2024-01-01T11:00:00Z`,
		`"History",not-a-number,2024-01-01,2024-01-01T12:00:00Z`,
		`"Physics",0,2024-01-01,2024-01-01T13:00:00Z`,
		`"Chemistry",45,2024-01-02,2024-01-02T10:00:00Z`,
	}, "\n")

	sessions, errs := Parse(strings.NewReader(input))

	if len(sessions) != 2 {
		t.Errorf("expected 2 valid sessions, got %d", len(sessions))
	}

	if len(errs) != 3 {
		t.Errorf("expected 3 row errors, got %d: %v", len(errs), errs)
	}
}

func TestParseWithoutHeader(t *testing.T) {
	input := `"Math",15,2024-03-01,2024-03-01T08:00:00Z` + "\n"

	sessions, errs := Parse(strings.NewReader(input))
	if len(errs) != 0 {
		t.Fatalf("Unexpected row errors: %v", errs)
	}

	if len(sessions) != 1 || sessions[0].Minutes != 15 {
		t.Fatalf("expected one 15-minute session, got %+v", sessions)
	}
}
