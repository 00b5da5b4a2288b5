package log

import (
	"time"
)

// Log represents an HTTP request/response audit entry. UserID is zero for
// unauthenticated requests.
type Log struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint      `gorm:"index" json:"user_id"`
	Method         string    `gorm:"type:varchar(10);not null" json:"method"`
	URL            string    `gorm:"type:text;not null" json:"url"`
	RequestBody    string    `gorm:"type:text" json:"request_body"`
	RequestHeaders string    `gorm:"type:text" json:"request_headers"`
	StatusCode     int       `gorm:"type:int" json:"status_code"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}
