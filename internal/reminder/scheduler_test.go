package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanmoss/blink/internal/constants"
	"github.com/evanmoss/blink/internal/models"
	"github.com/evanmoss/blink/internal/notify"
	"github.com/evanmoss/blink/internal/storage"
)

// fakeNotifier records scheduling calls so tests can assert on the alarm
// traffic without a tray app.
type fakeNotifier struct {
	scheduled map[string]time.Time
	daily     map[string][2]int
	cancelled []string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		scheduled: make(map[string]time.Time),
		daily:     make(map[string][2]int),
	}
}

func (f *fakeNotifier) ScheduleAt(id string, fireAt time.Time, p notify.Payload) error {
	f.scheduled[id] = fireAt
	return nil
}

func (f *fakeNotifier) ScheduleDaily(id string, hour, minute int, p notify.Payload) error {
	f.daily[id] = [2]int{hour, minute}
	return nil
}

func (f *fakeNotifier) Cancel(id string) error {
	f.cancelled = append(f.cancelled, id)
	delete(f.scheduled, id)
	delete(f.daily, id)
	return nil
}

func newTestScheduler(t *testing.T, now time.Time) (*Scheduler, *storage.MemoryStore, *fakeNotifier) {
	t.Helper()

	store := storage.NewMemoryStore()
	notifier := newFakeNotifier()
	s := New(store, notifier)
	s.Now = func() time.Time { return now }
	return s, store, notifier
}

func TestScheduleNextUsesEffectiveInterval(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	s, store, notifier := newTestScheduler(t, now)

	next, err := s.ScheduleNext()
	require.NoError(t, err)
	require.NotNil(t, next)

	want := now.Add(time.Duration(models.DefaultSettings().RestIntervalMin) * time.Minute)
	assert.Equal(t, want.UnixMilli(), next.TimeMs)
	assert.Equal(t, want, notifier.scheduled[constants.NotificationIDReminder])

	var persisted models.NextReminder
	require.NoError(t, store.Get(constants.KeyNextReminderTime, &persisted))
	assert.Equal(t, next.TimeMs, persisted.TimeMs)
}

func TestScheduleNextDisabledClearsReminder(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	s, store, notifier := newTestScheduler(t, now)

	settings := models.DefaultSettings()
	settings.NotificationsEnabled = false
	require.NoError(t, store.Set(constants.KeySettings, settings))
	require.NoError(t, store.Set(constants.KeyNextReminderTime, models.NewNextReminder(constants.NotificationIDReminder, now.Add(time.Hour))))

	next, err := s.ScheduleNext()
	require.NoError(t, err)
	assert.Nil(t, next)

	var persisted models.NextReminder
	err = store.Get(constants.KeyNextReminderTime, &persisted)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Empty(t, notifier.scheduled)
}

func TestScheduleNextShiftsOutOfQuietHours(t *testing.T) {
	// 23:00 + 120m lands at 01:00, inside the overnight window: the
	// reminder defers to wake-up + 2h the same day.
	now := time.Date(2026, time.March, 10, 23, 0, 0, 0, time.UTC)
	s, store, _ := newTestScheduler(t, now)

	require.NoError(t, store.Set(constants.KeyOnboardingData, models.OnboardingProfile{WakeHour: 7, Completed: true}))

	next, err := s.ScheduleNext()
	require.NoError(t, err)
	require.NotNil(t, next)

	want := time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, want.UnixMilli(), next.TimeMs)
}

func TestScheduleNextFromPreArms(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	s, _, notifier := newTestScheduler(t, now)

	end := now.Add(20 * time.Minute)
	next, err := s.ScheduleNextFrom(end)
	require.NoError(t, err)
	require.NotNil(t, next)

	want := end.Add(time.Duration(models.DefaultSettings().RestIntervalMin) * time.Minute)
	assert.Equal(t, want, next.Time())
	assert.Equal(t, want, notifier.scheduled[constants.NotificationIDReminder])
}

func TestScheduleNextReplacesPriorAlarm(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	s, _, notifier := newTestScheduler(t, now)

	_, err := s.ScheduleNext()
	require.NoError(t, err)
	_, err = s.ScheduleNext()
	require.NoError(t, err)

	// Each pass cancels before arming, so exactly one alarm stays live.
	assert.Len(t, notifier.scheduled, 1)
	assert.Len(t, notifier.cancelled, 2)
}

func TestScheduleCustom(t *testing.T) {
	now := time.Date(2026, time.March, 10, 21, 0, 0, 0, time.UTC)
	s, _, notifier := newTestScheduler(t, now)

	// 23:30 is inside quiet hours; an explicit choice is honored as-is.
	at := time.Date(2026, time.March, 10, 23, 30, 0, 0, time.UTC)
	next, err := s.ScheduleCustom(at)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, at, next.Time())
	assert.Equal(t, at, notifier.scheduled[constants.NotificationIDReminder])
}

func TestScheduleCustomRejectsPast(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	s, _, _ := newTestScheduler(t, now)

	_, err := s.ScheduleCustom(now.Add(-time.Minute))
	assert.Error(t, err)

	_, err = s.ScheduleCustom(now)
	assert.Error(t, err)
}

func TestScheduleCustomRejectsWhenDisabled(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	s, store, _ := newTestScheduler(t, now)

	settings := models.DefaultSettings()
	settings.NotificationsEnabled = false
	require.NoError(t, store.Set(constants.KeySettings, settings))

	_, err := s.ScheduleCustom(now.Add(time.Hour))
	assert.Error(t, err)
}

func TestTemporaryInterval(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	s, store, notifier := newTestScheduler(t, now)

	require.NoError(t, s.SetTemporaryInterval(45))
	assert.Equal(t, now.Add(45*time.Minute), notifier.scheduled[constants.NotificationIDReminder])

	var settings models.Settings
	require.NoError(t, store.Get(constants.KeySettings, &settings))
	require.NotNil(t, settings.TemporaryIntervalMin)
	assert.Equal(t, 45, *settings.TemporaryIntervalMin)

	require.NoError(t, s.ClearTemporaryInterval())
	want := now.Add(time.Duration(models.DefaultSettings().RestIntervalMin) * time.Minute)
	assert.Equal(t, want, notifier.scheduled[constants.NotificationIDReminder])

	require.NoError(t, store.Get(constants.KeySettings, &settings))
	assert.Nil(t, settings.TemporaryIntervalMin)
}

func TestSetTemporaryIntervalRejectsNonPositive(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	s, _, _ := newTestScheduler(t, now)

	assert.Error(t, s.SetTemporaryInterval(0))
	assert.Error(t, s.SetTemporaryInterval(-10))
}

func TestNextClearsStaleReminder(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	s, store, _ := newTestScheduler(t, now)

	require.NoError(t, store.Set(constants.KeyNextReminderTime, models.NewNextReminder(constants.NotificationIDReminder, now.Add(-time.Hour))))

	next, err := s.Next()
	require.NoError(t, err)
	assert.Nil(t, next)

	var persisted models.NextReminder
	err = store.Get(constants.KeyNextReminderTime, &persisted)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNextNoneArmed(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	s, _, _ := newTestScheduler(t, now)

	next, err := s.Next()
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestScheduleWakeup(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	s, store, notifier := newTestScheduler(t, now)

	require.NoError(t, store.Set(constants.KeyOnboardingData, models.OnboardingProfile{WakeHour: 6, WakeMinute: 45, Completed: true}))

	settings := models.DefaultSettings()
	settings.WakeupNotificationEnabled = true
	require.NoError(t, store.Set(constants.KeySettings, settings))

	require.NoError(t, s.ScheduleWakeup())
	assert.Equal(t, [2]int{6, 45}, notifier.daily[constants.NotificationIDWakeup])

	settings.WakeupNotificationEnabled = false
	require.NoError(t, store.Set(constants.KeySettings, settings))
	require.NoError(t, s.ScheduleWakeup())
	assert.NotContains(t, notifier.daily, constants.NotificationIDWakeup)
}

func TestScheduleWakeupWithoutOnboarding(t *testing.T) {
	now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	s, store, notifier := newTestScheduler(t, now)

	settings := models.DefaultSettings()
	settings.WakeupNotificationEnabled = true
	require.NoError(t, store.Set(constants.KeySettings, settings))

	// No onboarding record: the alert anchors at the default wake-up
	// time, not midnight.
	require.NoError(t, s.ScheduleWakeup())
	assert.Equal(t, [2]int{constants.DefaultWakeHour, constants.DefaultWakeMinute}, notifier.daily[constants.NotificationIDWakeup])
}

func TestNextWakeupTime(t *testing.T) {
	profile := models.OnboardingProfile{WakeHour: 7, Completed: true}

	early := time.Date(2026, time.March, 10, 5, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.March, 10, 7, 0, 0, 0, time.UTC), NextWakeupTime(early, profile))

	late := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.March, 11, 7, 0, 0, 0, time.UTC), NextWakeupTime(late, profile))
}
