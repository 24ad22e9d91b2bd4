package tracker

import "errors"

var (
	// ErrEmptyTopic is reported when a session is started with an empty or
	// whitespace-only topic.
	ErrEmptyTopic = errors.New(
		"a topic is required to start a session",
	)

	// ErrSessionTooShort is reported when a session is finished before a
	// full minute has elapsed. The timer keeps its state so the session
	// can continue.
	ErrSessionTooShort = errors.New(
		"sessions shorter than one minute are not recorded: keep going",
	)

	// ErrSessionInProgress is reported when a session is started while
	// another one is running or paused.
	ErrSessionInProgress = errors.New(
		"a session is already in progress",
	)

	// ErrNoActiveSession is reported when toggle or finish is invoked
	// with no session in progress.
	ErrNoActiveSession = errors.New(
		"no session in progress: please start a new session",
	)
)

// PersistenceError reports a failed write of the session log. It is not
// fatal: the in-memory log remains the source of truth until the next
// successful write.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "unable to save the session log: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
