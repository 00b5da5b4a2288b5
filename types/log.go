package types

import "time"

// LogEntry represents a request audit entry to be stored in the database
type LogEntry struct {
	ID             uint
	UserID         uint
	Method         string
	URL            string
	RequestBody    string
	RequestHeaders string
	StatusCode     int
	CreatedAt      time.Time
}
