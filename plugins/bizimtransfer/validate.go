package bizimtransfer

import "time"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// IsValidDate reports whether s is empty or a real calendar date in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	if s == "" {
		return true
	}
	if len(s) != len(dateLayout) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// IsValidTime reports whether s is empty or a 24h HH:MM time with both parts zero-padded.
func IsValidTime(s string) bool {
	if s == "" {
		return true
	}
	if len(s) != len(timeLayout) {
		return false
	}
	_, err := time.Parse(timeLayout, s)
	return err == nil
}
