// Package quiet decides whether an instant falls inside the user's
// do-not-disturb window and where a deferred reminder should land.
package quiet

import (
	"time"

	"github.com/evanmoss/blink/internal/constants"
	"github.com/evanmoss/blink/internal/models"
)

// IsQuietHours reports whether t's local hour falls inside the configured
// window. A same-day window (start < end) covers [start, end). An
// overnight window (start > end, e.g. 22 -> 7) covers [start, 24) and
// [0, end). Equal start and end is treated as never quiet: a zero-width
// window suppresses nothing.
func IsQuietHours(t time.Time, s models.Settings) bool {
	start, end := s.QuietHoursStart, s.QuietHoursEnd
	hour := t.Hour()

	switch {
	case start < end:
		return hour >= start && hour < end
	case start > end:
		return hour >= start || hour < end
	default:
		return false
	}
}

// NextActiveTime returns t unchanged when t is outside quiet hours.
// Otherwise it defers to two hours after the user's usual wake-up time,
// read from the onboarding profile (quietHoursEnd on the hour when no
// profile exists). The target lands on t's own calendar day only when t's
// hour is already past midnight but still before wake-up; any other quiet
// hour pushes to the next day. Wake-up itself sits inside the overnight
// window, so deferring to the same evening would re-enter quiet hours.
func NextActiveTime(t time.Time, s models.Settings, profile models.OnboardingProfile) time.Time {
	if !IsQuietHours(t, s) {
		return t
	}

	wakeHour, wakeMinute := profile.WakeHour, profile.WakeMinute
	if !profile.Completed {
		wakeHour, wakeMinute = s.QuietHoursEnd, 0
	}

	day := t
	if t.Hour() >= wakeHour {
		day = t.AddDate(0, 0, 1)
	}

	wake := time.Date(day.Year(), day.Month(), day.Day(), wakeHour, wakeMinute, 0, 0, t.Location())
	return wake.Add(constants.WakeupOffset)
}
