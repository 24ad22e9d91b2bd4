// Package models defines the persisted data types shared across the
// application.
package models

import (
	"time"
)

// DateLayout is the calendar-day format used for Session.Date and for
// CSV exchange with other trackers.
const DateLayout = "2006-01-02"

// Session is one completed study interval. Sessions are immutable once
// created.
type Session struct {
	// ID is strictly increasing across sessions finished in the same
	// process run. It is derived from the finish instant.
	ID int64 `json:"id"`
	// Topic is the non-empty, trimmed subject of the session.
	Topic string `json:"topic"`
	// Minutes is the whole-minute duration of the session (>= 1).
	Minutes int `json:"minutes"`
	// Date is the local calendar day the session was finished on,
	// formatted as YYYY-MM-DD.
	Date string `json:"date"`
	// Timestamp is the instant the session was finished.
	Timestamp time.Time `json:"timestamp"`
}
