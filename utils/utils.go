package utils

import (
	"fmt"
	"regexp"
	"time"

	"venue-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

var passwordFieldPattern = regexp.MustCompile(`"password"\s*:\s*"[^"]*"`)

// ParseDate accepts ISO-like date strings ("2025-01-02", "2025-01-02 15:04",
// RFC3339, ...) and normalizes them to a UTC timestamp.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("date value is empty")
	}

	parsed, err := now.Parse(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date format %q", value)
	}
	return parsed.UTC(), nil
}

// CreateSanitizedLogEntry builds a deep-copied audit entry for the current
// request. Password fields are masked before the body is stored.
func CreateSanitizedLogEntry(c *fiber.Ctx, userID uint) types.LogEntry {
	// Deep copies: fasthttp reuses request buffers after the handler returns.
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))

	body := append([]byte(nil), c.Body()...)
	body = passwordFieldPattern.ReplaceAll(body, []byte(`"password":"******"`))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	return types.LogEntry{
		UserID:         userID,
		Method:         method,
		URL:            url,
		RequestBody:    string(body),
		RequestHeaders: string(requestHeaders),
		StatusCode:     c.Response().StatusCode(),
		CreatedAt:      time.Now(),
	}
}
