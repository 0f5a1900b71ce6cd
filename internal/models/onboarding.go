package models

import "time"

// OnboardingProfile holds the onboarding answers the scheduler needs: the
// user's usual wake-up time. Question content beyond that is out of scope.
type OnboardingProfile struct {
	WakeHour   int  `json:"wake_hour"`
	WakeMinute int  `json:"wake_minute"`
	Completed  bool `json:"completed"`
}

// WakeTimeOn returns the usual wake-up instant on the given calendar day.
func (p OnboardingProfile) WakeTimeOn(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), p.WakeHour, p.WakeMinute, 0, 0, day.Location())
}
