package models

import (
	"fmt"
	"time"

	"github.com/evanmoss/blink/internal/constants"
)

// Settings represents application-wide settings
type Settings struct {
	NotificationsEnabled      bool `json:"notifications_enabled"`       // whether reminder notifications are armed at all
	VibrationEnabled          bool `json:"vibration_enabled"`           // whether alerts vibrate
	RestIntervalMin           int  `json:"rest_interval_min"`           // default spacing between rest reminders, minutes
	RestDurationMin           int  `json:"rest_duration_min"`           // default rest length, minutes
	TemporaryIntervalMin      *int `json:"temporary_interval_min"`      // temporary spacing override, nil when unset
	WakeupNotificationEnabled bool `json:"wakeup_notification_enabled"` // whether the daily wake-up alert is armed
	QuietHoursStart           int  `json:"quiet_hours_start"`           // hour 0-23
	QuietHoursEnd             int  `json:"quiet_hours_end"`             // hour 0-23
}

// DefaultSettings returns the settings applied when no record exists yet.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled:      constants.DefaultNotificationsEnabled,
		VibrationEnabled:          constants.DefaultVibrationEnabled,
		RestIntervalMin:           constants.DefaultRestIntervalMin,
		RestDurationMin:           constants.DefaultRestDurationMin,
		WakeupNotificationEnabled: constants.DefaultWakeupEnabled,
		QuietHoursStart:           constants.DefaultQuietHoursStart,
		QuietHoursEnd:             constants.DefaultQuietHoursEnd,
	}
}

// Normalize fills fields a partial stored record left at their zero value.
// Boolean toggles are kept as stored since false is a legitimate choice.
func (s *Settings) Normalize() {
	if s.RestIntervalMin <= 0 {
		s.RestIntervalMin = constants.DefaultRestIntervalMin
	}
	if s.RestDurationMin <= 0 {
		s.RestDurationMin = constants.DefaultRestDurationMin
	}
	if s.TemporaryIntervalMin != nil && *s.TemporaryIntervalMin <= 0 {
		s.TemporaryIntervalMin = nil
	}
	if s.QuietHoursStart < 0 || s.QuietHoursStart > 23 {
		s.QuietHoursStart = constants.DefaultQuietHoursStart
	}
	if s.QuietHoursEnd < 0 || s.QuietHoursEnd > 23 {
		s.QuietHoursEnd = constants.DefaultQuietHoursEnd
	}
}

func (s *Settings) Validate() error {
	if s.RestIntervalMin <= 0 {
		return fmt.Errorf("rest interval must be positive, got %d", s.RestIntervalMin)
	}
	if s.RestDurationMin <= 0 {
		return fmt.Errorf("rest duration must be positive, got %d", s.RestDurationMin)
	}
	if s.TemporaryIntervalMin != nil && *s.TemporaryIntervalMin <= 0 {
		return fmt.Errorf("temporary interval must be positive, got %d", *s.TemporaryIntervalMin)
	}
	if s.QuietHoursStart < 0 || s.QuietHoursStart > 23 {
		return fmt.Errorf("quiet hours start must be 0-23, got %d", s.QuietHoursStart)
	}
	if s.QuietHoursEnd < 0 || s.QuietHoursEnd > 23 {
		return fmt.Errorf("quiet hours end must be 0-23, got %d", s.QuietHoursEnd)
	}
	return nil
}

// EffectiveIntervalMin returns the reminder spacing actually used: the
// temporary override if set, else the configured default.
func (s Settings) EffectiveIntervalMin() int {
	if s.TemporaryIntervalMin != nil {
		return *s.TemporaryIntervalMin
	}
	return s.RestIntervalMin
}

// EffectiveInterval returns EffectiveIntervalMin as a duration.
func (s Settings) EffectiveInterval() time.Duration {
	return time.Duration(s.EffectiveIntervalMin()) * time.Minute
}

// RestDuration returns the configured rest length as a duration.
func (s Settings) RestDuration() time.Duration {
	return time.Duration(s.RestDurationMin) * time.Minute
}
