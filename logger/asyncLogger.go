package logger

import (
	"log"

	log_model "venue-booking/models/log"
	"venue-booking/types"

	"gorm.io/gorm"
)

// AsyncLogger persists request audit entries off the request path through a
// buffered channel so handlers never block on the log table.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100),
	}
}

// ProcessLog drains the channel; run it in its own goroutine.
func (logger *AsyncLogger) ProcessLog() {
	for logEntry := range logger.channel {
		dbLog := log_model.Log{
			UserID:         logEntry.UserID,
			Method:         logEntry.Method,
			URL:            logEntry.URL,
			RequestBody:    logEntry.RequestBody,
			RequestHeaders: logEntry.RequestHeaders,
			StatusCode:     logEntry.StatusCode,
			CreatedAt:      logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			log.Printf("Failed to insert audit log entry: %v", err)
		}
	}
}

// Log pushes a log entry into the channel
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	logger.channel <- entry
}
