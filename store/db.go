package store

import (
	"github.com/tobiclare/studylog/internal/models"
)

// Store is the session log storage interface. The log is read and written
// as a whole collection under a single logical key; there are no partial
// updates.
type Store interface {
	// LoadLog returns the persisted session log, newest first. A missing
	// log (first run) yields an empty slice, not an error.
	LoadLog() ([]models.Session, error)
	// SaveLog replaces the persisted session log.
	SaveLog(sessions []models.Session) error
	// Open begins a database connection
	Open() error
	// Close ends the database connection
	Close() error
}
