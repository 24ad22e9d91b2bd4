// Package tracker operates the study-session timer state machine and owns
// the in-memory session log
package tracker

import (
	"strings"
	"time"

	"github.com/tobiclare/studylog/internal/models"
	"github.com/tobiclare/studylog/internal/timeutil"
	"github.com/tobiclare/studylog/stats"
	"github.com/tobiclare/studylog/store"
)

// State is the current mode of the timer state machine.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

const secondsPerMinute = 60

// Tracker owns the timer state machine and the session log. It is not
// safe for concurrent use: all commands and the periodic tick must be
// delivered from a single goroutine, which the TUI update loop
// guarantees.
type Tracker struct {
	db      store.Store
	now     func() time.Time
	topic   string
	log     []models.Session
	state   State
	elapsed int
	lastID  int64
}

// New creates a tracker backed by the given store and loads the persisted
// session log. A missing log leaves the tracker with an empty log and
// zeroed stats.
func New(db store.Store) (*Tracker, error) {
	log, err := db.LoadLog()
	if err != nil {
		return nil, err
	}

	return &Tracker{
		db:    db,
		now:   time.Now,
		log:   log,
		state: StateIdle,
	}, nil
}

// Start begins a new session for the given topic, transitioning the timer
// from Idle to Running with a zeroed elapsed counter. The topic is
// trimmed; an empty result rejects the command without any state change.
func (t *Tracker) Start(topic string) error {
	if t.state != StateIdle {
		return ErrSessionInProgress
	}

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ErrEmptyTopic
	}

	t.topic = topic
	t.elapsed = 0
	t.state = StateRunning

	return nil
}

// Toggle switches the timer between Running and Paused.
func (t *Tracker) Toggle() error {
	switch t.state {
	case StateRunning:
		t.state = StatePaused
	case StatePaused:
		t.state = StateRunning
	default:
		return ErrNoActiveSession
	}

	return nil
}

// Tick advances the elapsed counter by one second. Ticks are ignored
// unless the timer is running, so a stray tick delivered after a pause
// cannot advance the counter.
func (t *Tracker) Tick() {
	if t.state == StateRunning {
		t.elapsed++
	}
}

// nextID derives a strictly increasing session id from the finish
// instant. Two sessions finished within the same millisecond are bumped
// apart.
func (t *Tracker) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}

	t.lastID = id

	return id
}

// Finish finalizes the session in progress. The elapsed time is floored
// to whole minutes; a sub-minute session is rejected with
// ErrSessionTooShort and the timer keeps both its state and its elapsed
// counter so the caller can continue timing. Otherwise the session is
// recorded at the front of the log, the log is persisted, and the timer
// returns to Idle.
//
// A failed write surfaces as *PersistenceError while the session stays in
// the in-memory log: the caller decides whether to warn or retry.
func (t *Tracker) Finish() (models.Session, error) {
	if t.state != StateRunning && t.state != StatePaused {
		return models.Session{}, ErrNoActiveSession
	}

	minutes := t.elapsed / secondsPerMinute
	if minutes == 0 {
		return models.Session{}, ErrSessionTooShort
	}

	now := t.now()

	sess := models.Session{
		ID:        t.nextID(now),
		Topic:     t.topic,
		Minutes:   minutes,
		Date:      now.Format(models.DateLayout),
		Timestamp: now,
	}

	t.log = append([]models.Session{sess}, t.log...)

	t.state = StateIdle
	t.elapsed = 0
	t.topic = ""

	if err := t.db.SaveLog(t.log); err != nil {
		return sess, &PersistenceError{Err: err}
	}

	return sess, nil
}

// State returns the current timer state.
func (t *Tracker) State() State {
	return t.state
}

// Topic returns the topic of the session in progress, or "" when idle.
func (t *Tracker) Topic() string {
	return t.topic
}

// ElapsedSeconds returns the elapsed counter for the session in progress.
func (t *Tracker) ElapsedSeconds() int {
	return t.elapsed
}

// FormattedElapsed renders the elapsed counter as HH:MM:SS.
func (t *Tracker) FormattedElapsed() string {
	return timeutil.FormatSeconds(t.elapsed)
}

// Sessions returns the full session log, newest first.
func (t *Tracker) Sessions() []models.Session {
	return t.log
}

// Recent returns at most n of the latest sessions for display.
func (t *Tracker) Recent(n int) []models.Session {
	if n < 0 {
		n = 0
	}

	if n > len(t.log) {
		n = len(t.log)
	}

	return t.log[:n]
}

// Stats recomputes the aggregate statistics from the session log. Nothing
// is cached: the log is the single source of truth.
func (t *Tracker) Stats() stats.Summary {
	return stats.Compute(t.log, t.now())
}

// MinutesOn sums the minutes recorded on the given calendar day.
func (t *Tracker) MinutesOn(day time.Time) int {
	date := day.Format(models.DateLayout)

	var total int

	for i := range t.log {
		if t.log[i].Date == date {
			total += t.log[i].Minutes
		}
	}

	return total
}
