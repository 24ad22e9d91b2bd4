// Package store connects to the data store and manages the persisted
// session log
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/tobiclare/studylog/internal/models"
)

var pathToDB string

var errAlreadyRunning = errors.New(
	"is studylog already running? Only one instance can be active at a time",
)

var (
	sessionBucket = []byte("sessions")
	logKey        = []byte("log")
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// LoadLog reads the whole session log. An absent log yields an empty
// slice so that a first run starts from zeroed stats.
func (c *Client) LoadLog() ([]models.Session, error) {
	var sessions []models.Session

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionBucket).Get(logKey)
		if len(b) == 0 {
			return nil
		}

		return json.Unmarshal(b, &sessions)
	})
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// SaveLog replaces the persisted session log with the provided one.
func (c *Client) SaveLog(sessions []models.Session) error {
	value, err := json.Marshal(sessions)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Put(logKey, value)
	})
}

func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	*c = Client{
		db,
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		// Opening times out when another instance holds the file lock
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	pathToDB = dbPath

	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}
	// Create the necessary bucket for storing data if it does not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists(sessionBucket)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
