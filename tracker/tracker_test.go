package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobiclare/studylog/internal/models"
)

// memStore keeps the log in memory and optionally fails every write.
type memStore struct {
	log      []models.Session
	saves    int
	failSave bool
}

var errDiskFull = errors.New("disk full")

func (m *memStore) LoadLog() ([]models.Session, error) {
	return m.log, nil
}

func (m *memStore) SaveLog(sessions []models.Session) error {
	if m.failSave {
		return errDiskFull
	}

	m.saves++
	m.log = sessions

	return nil
}

func (m *memStore) Open() error { return nil }

func (m *memStore) Close() error { return nil }

func newTestTracker(t *testing.T, db *memStore) *Tracker {
	t.Helper()

	tr, err := New(db)
	require.NoError(t, err)

	tr.now = func() time.Time {
		return time.Date(2024, 1, 3, 10, 0, 0, 0, time.Local)
	}

	return tr
}

func tick(tr *Tracker, seconds int) {
	for i := 0; i < seconds; i++ {
		tr.Tick()
	}
}

func TestStartRequiresTopic(t *testing.T) {
	tr := newTestTracker(t, &memStore{})

	for _, topic := range []string{"", "   ", "\t\n"} {
		err := tr.Start(topic)
		assert.ErrorIs(t, err, ErrEmptyTopic)
		assert.Equal(t, StateIdle, tr.State())
		assert.Zero(t, tr.ElapsedSeconds())
		assert.Empty(t, tr.Sessions())
	}

	summary := tr.Stats()
	assert.Zero(t, summary.TotalSessions)
	assert.Zero(t, summary.TotalMinutes)
}

func TestStartTrimsTopic(t *testing.T) {
	tr := newTestTracker(t, &memStore{})

	require.NoError(t, tr.Start("  Math  "))
	assert.Equal(t, "Math", tr.Topic())
	assert.Equal(t, StateRunning, tr.State())
}

func TestStartWhileRunning(t *testing.T) {
	tr := newTestTracker(t, &memStore{})

	require.NoError(t, tr.Start("Math"))
	assert.ErrorIs(t, tr.Start("History"), ErrSessionInProgress)
	assert.Equal(t, "Math", tr.Topic())
}

func TestToggle(t *testing.T) {
	tr := newTestTracker(t, &memStore{})

	assert.ErrorIs(t, tr.Toggle(), ErrNoActiveSession)

	require.NoError(t, tr.Start("Math"))

	require.NoError(t, tr.Toggle())
	assert.Equal(t, StatePaused, tr.State())

	require.NoError(t, tr.Toggle())
	assert.Equal(t, StateRunning, tr.State())
}

func TestTickOnlyAdvancesWhileRunning(t *testing.T) {
	tr := newTestTracker(t, &memStore{})

	tick(tr, 5)
	assert.Zero(t, tr.ElapsedSeconds(), "idle ticks must be ignored")

	require.NoError(t, tr.Start("Math"))
	tick(tr, 10)
	assert.Equal(t, 10, tr.ElapsedSeconds())

	require.NoError(t, tr.Toggle())
	tick(tr, 10)
	assert.Equal(t, 10, tr.ElapsedSeconds(), "paused ticks must be ignored")

	require.NoError(t, tr.Toggle())
	tick(tr, 1)
	assert.Equal(t, 11, tr.ElapsedSeconds())
}

func TestFinishTooShort(t *testing.T) {
	tr := newTestTracker(t, &memStore{})

	require.NoError(t, tr.Start("Math"))
	tick(tr, 59)

	_, err := tr.Finish()
	assert.ErrorIs(t, err, ErrSessionTooShort)

	// The timer keeps running and the counter is preserved so the user
	// can keep going.
	assert.Equal(t, StateRunning, tr.State())
	assert.Equal(t, 59, tr.ElapsedSeconds())
	assert.Empty(t, tr.Sessions())

	tick(tr, 1)

	sess, err := tr.Finish()
	require.NoError(t, err)
	assert.Equal(t, 1, sess.Minutes)
}

func TestFinishTooShortWhilePaused(t *testing.T) {
	tr := newTestTracker(t, &memStore{})

	require.NoError(t, tr.Start("Math"))
	tick(tr, 30)
	require.NoError(t, tr.Toggle())

	_, err := tr.Finish()
	assert.ErrorIs(t, err, ErrSessionTooShort)
	assert.Equal(t, StatePaused, tr.State())
	assert.Equal(t, 30, tr.ElapsedSeconds())
}

func TestFinishFloorsToWholeMinutes(t *testing.T) {
	cases := []struct {
		name    string
		seconds int
		minutes int
	}{
		{"exactly one minute", 60, 1},
		{"just under two minutes", 119, 1},
		{"two minutes", 120, 2},
		{"forty-five minutes", 2700, 45},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := &memStore{}
			tr := newTestTracker(t, db)

			require.NoError(t, tr.Start("Math"))
			tick(tr, tc.seconds)

			sess, err := tr.Finish()
			require.NoError(t, err)

			assert.Equal(t, tc.minutes, sess.Minutes)
			assert.Equal(t, "Math", sess.Topic)
			assert.Equal(t, "2024-01-03", sess.Date)

			assert.Equal(t, StateIdle, tr.State())
			assert.Zero(t, tr.ElapsedSeconds())
			assert.Empty(t, tr.Topic())

			require.Len(t, db.log, 1, "log must be persisted on finish")
		})
	}
}

func TestFinishWithoutSession(t *testing.T) {
	tr := newTestTracker(t, &memStore{})

	_, err := tr.Finish()
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestFinishPrependsNewestFirst(t *testing.T) {
	db := &memStore{}
	tr := newTestTracker(t, db)

	require.NoError(t, tr.Start("Math"))
	tick(tr, 60)
	_, err := tr.Finish()
	require.NoError(t, err)

	require.NoError(t, tr.Start("History"))
	tick(tr, 120)
	_, err = tr.Finish()
	require.NoError(t, err)

	log := tr.Sessions()
	require.Len(t, log, 2)
	assert.Equal(t, "History", log[0].Topic)
	assert.Equal(t, "Math", log[1].Topic)
	assert.Equal(t, 2, db.saves)
}

func TestSessionIDsStrictlyIncrease(t *testing.T) {
	tr := newTestTracker(t, &memStore{})

	// The frozen clock makes every finish instant identical, which is
	// the worst case for id collisions.
	var last int64

	for i := 0; i < 5; i++ {
		require.NoError(t, tr.Start("Math"))
		tick(tr, 60)

		sess, err := tr.Finish()
		require.NoError(t, err)

		assert.Greater(t, sess.ID, last)
		last = sess.ID
	}
}

func TestFinishSurvivesSaveFailure(t *testing.T) {
	db := &memStore{failSave: true}
	tr := newTestTracker(t, db)

	require.NoError(t, tr.Start("Math"))
	tick(tr, 90)

	sess, err := tr.Finish()

	var perr *PersistenceError

	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, perr.Err, errDiskFull)

	// The session must stay visible in memory even though the write
	// failed.
	require.Len(t, tr.Sessions(), 1)
	assert.Equal(t, sess.ID, tr.Sessions()[0].ID)
	assert.Equal(t, StateIdle, tr.State())

	summary := tr.Stats()
	assert.Equal(t, 1, summary.TotalSessions)
	assert.Equal(t, 1, summary.TotalMinutes)
}

func TestRecentTruncatesForDisplay(t *testing.T) {
	db := &memStore{}
	tr := newTestTracker(t, db)

	for i := 0; i < 12; i++ {
		require.NoError(t, tr.Start("Math"))
		tick(tr, 60)

		_, err := tr.Finish()
		require.NoError(t, err)
	}

	assert.Len(t, tr.Recent(10), 10)
	assert.Len(t, tr.Recent(20), 12)
	assert.Empty(t, tr.Recent(0))
}

func TestStatsIdempotent(t *testing.T) {
	tr := newTestTracker(t, &memStore{})

	require.NoError(t, tr.Start("Math"))
	tick(tr, 300)
	_, err := tr.Finish()
	require.NoError(t, err)

	first := tr.Stats()
	second := tr.Stats()

	assert.Equal(t, first, second)
	assert.Equal(t, 5, first.TotalMinutes)
	assert.Equal(t, 1, first.Streak)
}

func TestMinutesOn(t *testing.T) {
	tr := newTestTracker(t, &memStore{})

	require.NoError(t, tr.Start("Math"))
	tick(tr, 600)
	_, err := tr.Finish()
	require.NoError(t, err)

	require.NoError(t, tr.Start("History"))
	tick(tr, 300)
	_, err = tr.Finish()
	require.NoError(t, err)

	day := time.Date(2024, 1, 3, 15, 0, 0, 0, time.Local)
	assert.Equal(t, 15, tr.MinutesOn(day))

	other := time.Date(2024, 1, 4, 15, 0, 0, 0, time.Local)
	assert.Zero(t, tr.MinutesOn(other))
}
