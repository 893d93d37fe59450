package domain

import "time"

// DateLayout is the wire format for purchase dates and dates of birth.
const DateLayout = "02/01/2006"

// ParseDate parses a dd/mm/yyyy date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
