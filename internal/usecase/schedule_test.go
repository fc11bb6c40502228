//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
	"github.com/gottliebdinh/moggi-admin/internal/domain/room"
	"github.com/gottliebdinh/moggi-admin/internal/domain/schedule"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/clock"
	"github.com/gottliebdinh/moggi-admin/internal/usecase"
	"github.com/gottliebdinh/moggi-admin/tests/common/builder"
)

const friday = "2025-03-07"

func dinnerRule() schedule.CapacityRule {
	return schedule.CapacityRule{
		ID:              uuid.New(),
		Days:            []string{"Freitag", "Samstag"},
		StartTime:       "17:30",
		EndTime:         "22:00",
		Capacity:        60,
		IntervalMinutes: 30,
	}
}

func newScheduleUseCase(settings *fakeSettingsRepo, tables *fakeTableRepo, reservations *fakeReservationRepo, now time.Time) usecase.ScheduleUseCase {
	return usecase.NewScheduleUseCase(settings, tables, reservations, clock.NewMockClock(now))
}

func TestScheduleSlots(t *testing.T) {
	noon := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)

	t.Run("generates times from the matching rule", func(t *testing.T) {
		uc := newScheduleUseCase(&fakeSettingsRepo{rules: []schedule.CapacityRule{dinnerRule()}}, &fakeTableRepo{}, &fakeReservationRepo{}, noon)

		slots, err := uc.Slots(context.Background(), friday)
		require.NoError(t, err)
		assert.Equal(t, []string{"17:30", "18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00", "21:30"}, slots)
	})

	t.Run("closed day wins over every rule", func(t *testing.T) {
		settings := &fakeSettingsRepo{
			rules:      []schedule.CapacityRule{dinnerRule()},
			closedDays: []schedule.ClosedDay{{ID: uuid.New(), Date: friday}},
		}
		uc := newScheduleUseCase(settings, &fakeTableRepo{}, &fakeReservationRepo{}, noon)

		slots, err := uc.Slots(context.Background(), friday)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("storage failure degrades to no slots", func(t *testing.T) {
		settings := &fakeSettingsRepo{rulesErr: assert.AnError}
		uc := newScheduleUseCase(settings, &fakeTableRepo{}, &fakeReservationRepo{}, noon)

		slots, err := uc.Slots(context.Background(), friday)
		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("unparseable date is rejected", func(t *testing.T) {
		uc := newScheduleUseCase(&fakeSettingsRepo{}, &fakeTableRepo{}, &fakeReservationRepo{}, noon)

		_, err := uc.Slots(context.Background(), "07.03.2025")
		assert.ErrorIs(t, err, usecase.ErrInvalidScheduleQuery)
	})
}

func TestScheduleDefaultTime(t *testing.T) {
	settings := &fakeSettingsRepo{rules: []schedule.CapacityRule{dinnerRule()}}

	t.Run("future date picks the first slot", func(t *testing.T) {
		now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)
		uc := newScheduleUseCase(settings, &fakeTableRepo{}, &fakeReservationRepo{}, now)

		picked, ok, err := uc.DefaultTime(context.Background(), friday)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "17:30", picked)
	})

	t.Run("today rounds up to the next whole hour", func(t *testing.T) {
		now := time.Date(2025, 3, 7, 17, 10, 0, 0, time.Local)
		uc := newScheduleUseCase(settings, &fakeTableRepo{}, &fakeReservationRepo{}, now)

		picked, ok, err := uc.DefaultTime(context.Background(), friday)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "18:00", picked)
	})

	t.Run("no slots reports absence", func(t *testing.T) {
		now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.Local)
		uc := newScheduleUseCase(&fakeSettingsRepo{}, &fakeTableRepo{}, &fakeReservationRepo{}, now)

		_, ok, err := uc.DefaultTime(context.Background(), friday)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestScheduleAvailability(t *testing.T) {
	noon := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	tables := &fakeTableRepo{tables: []room.Table{
		{ID: uuid.New(), Name: "5 Tisch", Capacity: 4},
		{ID: uuid.New(), Name: "6 Tisch", Capacity: 2},
	}}

	t.Run("marks occupied tables", func(t *testing.T) {
		existing := builder.NewReservationBuilder().BuildDomain()
		reservations := &fakeReservationRepo{byDate: []reservation.Reservation{existing}}
		uc := newScheduleUseCase(&fakeSettingsRepo{}, tables, reservations, noon)

		got, err := uc.Availability(context.Background(), friday, "19:30", 90, uuid.Nil)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.False(t, got[0].Available)
		assert.True(t, got[1].Available)
	})

	t.Run("table load failure degrades to empty", func(t *testing.T) {
		uc := newScheduleUseCase(&fakeSettingsRepo{}, &fakeTableRepo{err: assert.AnError}, &fakeReservationRepo{}, noon)

		got, err := uc.Availability(context.Background(), friday, "19:00", 120, uuid.Nil)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("reservation load failure leaves tables free", func(t *testing.T) {
		reservations := &fakeReservationRepo{findByDateErr: assert.AnError}
		uc := newScheduleUseCase(&fakeSettingsRepo{}, tables, reservations, noon)

		got, err := uc.Availability(context.Background(), friday, "19:00", 120, uuid.Nil)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, got[0].Available)
	})

	t.Run("bad candidate time is rejected", func(t *testing.T) {
		uc := newScheduleUseCase(&fakeSettingsRepo{}, tables, &fakeReservationRepo{}, noon)

		_, err := uc.Availability(context.Background(), friday, "soon", 120, uuid.Nil)
		assert.ErrorIs(t, err, usecase.ErrInvalidScheduleQuery)
	})
}

func TestScheduleFit(t *testing.T) {
	uc := newScheduleUseCase(&fakeSettingsRepo{}, &fakeTableRepo{}, &fakeReservationRepo{}, time.Now())

	assert.Equal(t, schedule.FitExact, uc.Fit(4, 4))
	assert.Equal(t, schedule.FitNoneSelected, uc.Fit(0, 4))
}
