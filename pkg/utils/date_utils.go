// utils/date_utils.go
package utils

import "time"

// DateLayout is the only date format accepted anywhere in the system.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// DurationDays returns the inclusive day count between two dates, i.e.
// (end - start) + 1. The end > start invariant is enforced once at
// request-construction time, not here.
func DurationDays(startDate, endDate string) (int, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// AddDays returns the date offset days after the given date, formatted
// with DateLayout.
func AddDays(date string, offset int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, offset).Format(DateLayout), nil
}
