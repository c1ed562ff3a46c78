package utils

import (
	"errors"
	"strings"
	"time"
)

const (
	MassDateLayout = "2006-01-02"

	// EditLockWindow is how close to the Mass a submission may still be
	// changed by its submitter. Exactly 24h out is still editable.
	EditLockWindow = 24 * time.Hour
)

// Mass times arrive as either "6:00 AM" style schedule labels or
// plain "18:00" from a time input.
var massTimeLayouts = []string{"3:04 PM", "15:04", "15:04:05"}

func ParseMassDate(date string) (time.Time, error) {
	return time.Parse(MassDateLayout, strings.TrimSpace(date))
}

// ParseMassDateTime combines the stored date and time columns into a
// single timestamp. An empty time resolves to midnight.
func ParseMassDateTime(date, massTime string) (time.Time, error) {
	day, err := ParseMassDate(date)
	if err != nil {
		return time.Time{}, err
	}

	massTime = strings.TrimSpace(massTime)
	if massTime == "" {
		return day, nil
	}

	for _, layout := range massTimeLayouts {
		if t, err := time.Parse(layout, strings.ToUpper(massTime)); err == nil {
			return time.Date(
				day.Year(), day.Month(), day.Day(),
				t.Hour(), t.Minute(), 0, 0, time.UTC,
			), nil
		}
	}
	return time.Time{}, errors.New("unrecognized mass time: " + massTime)
}

// IsValidMassDate reports whether a form value parses as a Mass date.
// Backing both the binding rule and direct checks.
func IsValidMassDate(date string) bool {
	_, err := ParseMassDate(date)
	return err == nil
}

// IsValidMassTime reports whether a form value parses with one of the
// accepted clock layouts.
func IsValidMassTime(massTime string) bool {
	massTime = strings.ToUpper(strings.TrimSpace(massTime))
	if massTime == "" {
		return false
	}
	for _, layout := range massTimeLayouts {
		if _, err := time.Parse(layout, massTime); err == nil {
			return true
		}
	}
	return false
}

// CanMutate reports whether a submission scheduled at scheduledAt may
// still be edited at now. The boundary is inclusive: exactly 24 hours
// before the Mass is editable, one second less is not.
func CanMutate(scheduledAt, now time.Time) bool {
	return scheduledAt.Sub(now) >= EditLockWindow
}
