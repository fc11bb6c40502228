//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
	"github.com/gottliebdinh/moggi-admin/internal/domain/schedule"
)

// 2025-03-07 is a Friday.
const friday = "2025-03-07"

func dinnerRule() schedule.CapacityRule {
	return schedule.CapacityRule{
		Days:            []string{"Freitag", "Samstag"},
		StartTime:       "17:30",
		EndTime:         "22:00",
		Capacity:        60,
		IntervalMinutes: 30,
	}
}

func TestAvailableSlots(t *testing.T) {
	t.Run("half-open window", func(t *testing.T) {
		slots, err := schedule.AvailableSlots(friday, []schedule.CapacityRule{dinnerRule()}, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"17:30", "18:00", "18:30", "19:00", "19:30",
			"20:00", "20:30", "21:00", "21:30",
		}, slots)
	})

	t.Run("closed day wins over every rule", func(t *testing.T) {
		closed := []schedule.ClosedDay{{Date: friday}}
		slots, err := schedule.AvailableSlots(friday, []schedule.CapacityRule{dinnerRule()}, closed)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("closed day on another date has no effect", func(t *testing.T) {
		closed := []schedule.ClosedDay{{Date: "2025-03-08"}}
		slots, err := schedule.AvailableSlots(friday, []schedule.CapacityRule{dinnerRule()}, closed)
		require.NoError(t, err)
		assert.NotEmpty(t, slots)
	})

	t.Run("weekday filter", func(t *testing.T) {
		rule := dinnerRule()
		rule.Days = []string{"Montag"}
		slots, err := schedule.AvailableSlots(friday, []schedule.CapacityRule{rule}, nil)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("overlapping rules union and dedupe", func(t *testing.T) {
		lunch := schedule.CapacityRule{
			Days:            []string{"Freitag"},
			StartTime:       "12:00",
			EndTime:         "14:00",
			IntervalMinutes: 60,
		}
		overlapping := schedule.CapacityRule{
			Days:            []string{"Freitag"},
			StartTime:       "13:00",
			EndTime:         "15:00",
			IntervalMinutes: 60,
		}
		slots, err := schedule.AvailableSlots(friday, []schedule.CapacityRule{lunch, overlapping}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"12:00", "13:00", "14:00"}, slots)
	})

	t.Run("trailing partial slot is omitted", func(t *testing.T) {
		rule := schedule.CapacityRule{
			Days:            []string{"Freitag"},
			StartTime:       "18:00",
			EndTime:         "19:10",
			IntervalMinutes: 45,
		}
		slots, err := schedule.AvailableSlots(friday, []schedule.CapacityRule{rule}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"18:00", "18:45"}, slots)
	})

	t.Run("deterministic across rule order", func(t *testing.T) {
		a := dinnerRule()
		b := schedule.CapacityRule{
			Days:            []string{"Freitag"},
			StartTime:       "12:00",
			EndTime:         "14:00",
			IntervalMinutes: 30,
		}
		forward, err := schedule.AvailableSlots(friday, []schedule.CapacityRule{a, b}, nil)
		require.NoError(t, err)
		backward, err := schedule.AvailableSlots(friday, []schedule.CapacityRule{b, a}, nil)
		require.NoError(t, err)
		assert.Equal(t, forward, backward)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := schedule.AvailableSlots("07.03.2025", []schedule.CapacityRule{dinnerRule()}, nil)
		assert.ErrorIs(t, err, reservation.ErrInvalidDate)
	})

	t.Run("no rules", func(t *testing.T) {
		slots, err := schedule.AvailableSlots(friday, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestWeekdayName(t *testing.T) {
	day, err := time.Parse(reservation.DateLayout, friday)
	require.NoError(t, err)
	assert.Equal(t, "Freitag", schedule.WeekdayName(day))

	sunday := day.AddDate(0, 0, 2)
	assert.Equal(t, "Sonntag", schedule.WeekdayName(sunday))
}

func TestCapacityRuleValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*schedule.CapacityRule)
		errIs  error
	}{
		{name: "valid", mutate: func(r *schedule.CapacityRule) {}},
		{name: "start equals end", mutate: func(r *schedule.CapacityRule) { r.EndTime = r.StartTime }, errIs: schedule.ErrInvalidWindow},
		{name: "start after end", mutate: func(r *schedule.CapacityRule) { r.StartTime = "23:00" }, errIs: schedule.ErrInvalidWindow},
		{name: "zero interval", mutate: func(r *schedule.CapacityRule) { r.IntervalMinutes = 0 }, errIs: schedule.ErrInvalidInterval},
		{name: "english weekday rejected", mutate: func(r *schedule.CapacityRule) { r.Days = []string{"Friday"} }, errIs: schedule.ErrUnknownWeekday},
		{name: "malformed start", mutate: func(r *schedule.CapacityRule) { r.StartTime = "25:00" }, errIs: schedule.ErrInvalidClock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := dinnerRule()
			tt.mutate(&rule)
			err := rule.Validate()
			if tt.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func TestPickDefaultTime(t *testing.T) {
	slots := []string{"17:30", "18:00", "18:30", "19:00"}

	t.Run("other date picks first slot", func(t *testing.T) {
		now := time.Date(2025, 3, 6, 18, 45, 0, 0, time.UTC)
		picked, ok := schedule.PickDefaultTime(friday, slots, now)
		require.True(t, ok)
		assert.Equal(t, "17:30", picked)
	})

	t.Run("today picks first slot at or after next whole hour", func(t *testing.T) {
		now := time.Date(2025, 3, 7, 17, 10, 0, 0, time.UTC)
		picked, ok := schedule.PickDefaultTime(friday, slots, now)
		require.True(t, ok)
		assert.Equal(t, "18:00", picked)
	})

	t.Run("today on the whole hour keeps that hour", func(t *testing.T) {
		now := time.Date(2025, 3, 7, 18, 0, 0, 0, time.UTC)
		picked, ok := schedule.PickDefaultTime(friday, slots, now)
		require.True(t, ok)
		assert.Equal(t, "18:00", picked)
	})

	t.Run("today after last slot falls back to first", func(t *testing.T) {
		now := time.Date(2025, 3, 7, 21, 30, 0, 0, time.UTC)
		picked, ok := schedule.PickDefaultTime(friday, slots, now)
		require.True(t, ok)
		assert.Equal(t, "17:30", picked)
	})

	t.Run("no slots", func(t *testing.T) {
		_, ok := schedule.PickDefaultTime(friday, nil, time.Now())
		assert.False(t, ok)
	})
}
