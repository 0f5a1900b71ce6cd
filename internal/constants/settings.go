package constants

const (
	// Storage keys. Each key has exactly one writer component; readers
	// outside the owner treat values as read-only snapshots.
	KeyTimerEndTime       = "timerEndTime"       // resttimer
	KeyTimerPaused        = "timerPaused"        // resttimer
	KeyNextReminderTime   = "nextReminderTime"   // reminder
	KeyRestHistory        = "restHistory"        // completion
	KeyStats              = "stats"              // completion
	KeySettings           = "settings"           // settings command (temporary interval: reminder)
	KeyLastCompletionTime = "lastCompletionTime" // completion
	KeyOnboardingData     = "onboardingData"     // init command

	// Default settings values
	DefaultNotificationsEnabled = true
	DefaultVibrationEnabled     = true
	DefaultRestIntervalMin      = 120
	DefaultRestDurationMin      = 20
	DefaultWakeupEnabled        = false
	DefaultQuietHoursStart      = 22
	DefaultQuietHoursEnd        = 7
	DefaultWakeHour             = 7
	DefaultWakeMinute           = 0
)
