package constants

import "time"

const (
	AppName           = "blink"
	DefaultConfigPath = "~/.config/blink/blink.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Notification ids. Re-scheduling under the same id supersedes the
	// previously armed alarm, so each id holds at most one alarm.
	NotificationIDReminder   = "blink-reminder"
	NotificationIDCompletion = "blink-completion"
	NotificationIDWakeup     = "blink-wakeup"

	// ScreenTimer is the navigation hint carried in notification payloads
	// so a tap routes to the timer screen.
	ScreenTimer = "timer"

	// HistoryWindow is the rolling retention window for rest history.
	// Entries older than now-HistoryWindow are dropped on every write.
	HistoryWindow = 30 * 24 * time.Hour

	// Energy rewards
	FullRestReward    = 10
	PartialRestReward = 3

	// WakeupOffset is how long after the usual wake-up time deferred
	// reminders land when a target falls inside quiet hours.
	WakeupOffset = 2 * time.Hour

	// Notifier tray app integration
	NotifierLockfileName   = "blink-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.evanmoss.blink"
)

// UnlockThresholds are the garden unlock milestones evaluated against the
// total rest count. Totals move by exactly one per completion, so at most
// one threshold can be crossed per call.
var UnlockThresholds = []int{5, 15, 30, 60, 100}
