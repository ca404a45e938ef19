package shared

import "time"

const DateLayout = "2006-01-02"

// ParseDate accepts an ISO YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
