// Package validate holds the pure field and date checks for the capsule
// reveal date. Nothing here touches the network or mutates state.
package validate

import (
	"regexp"
	"strconv"
	"time"

	"github.com/capsy-labs/capsy-companion/internal/domain"
)

const (
	FieldYear  = "year"
	FieldMonth = "month"
	FieldDay   = "day"
)

var (
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
	shortPattern = regexp.MustCompile(`^\d{1,2}$`)
)

// Field checks the syntax of a single date field and returns an error
// message, or "" when the value is acceptable. Day is only range-checked
// against 1..31; cross-checking against the month's real length is deferred
// to the composed-date step.
func Field(name, value string) string {
	switch name {
	case FieldYear:
		if !yearPattern.MatchString(value) {
			return "year must be a 4 digit number"
		}
	case FieldMonth:
		if !shortPattern.MatchString(value) {
			return "month must be a number of up to 2 digits"
		}
		if n, _ := strconv.Atoi(value); n < 1 || n > 12 {
			return "month must be between 1 and 12"
		}
	case FieldDay:
		if !shortPattern.MatchString(value) {
			return "day must be a number of up to 2 digits"
		}
		if n, _ := strconv.Atoi(value); n < 1 || n > 31 {
			return "day must be between 1 and 31"
		}
	}
	return ""
}

// Date validates the composed reveal date against now: all three fields must
// be present and the date must be strictly after today (time of day is
// ignored, so today itself is rejected).
func Date(rd domain.RevealDate, now time.Time) (bool, string) {
	if !rd.Complete() {
		return false, "please fill in the whole date"
	}

	year, _ := strconv.Atoi(rd.Year)
	month, _ := strconv.Atoi(rd.Month)
	day, _ := strconv.Atoi(rd.Day)

	selected := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if !selected.After(today) {
		return false, "please pick a future date"
	}

	return true, ""
}
