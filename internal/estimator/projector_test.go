package estimator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProject(t *testing.T) {
	tests := []struct {
		name      string
		years     float64
		dob       time.Time
		sleep     float64
		work      float64
		today     time.Time
		wantDeath time.Time
		wantDay   string
		wantHours float64
	}{
		{
			name:      "weeks and leftover days",
			years:     1,
			dob:       date(2024, 1, 1),
			sleep:     8,
			work:      35,
			today:     date(2024, 12, 21),
			wantDeath: date(2024, 12, 31),
			wantDay:   "Tuesday",
			wantHours: 110,
		},
		{
			name:      "death today",
			years:     1,
			dob:       date(2024, 1, 1),
			sleep:     8,
			work:      35,
			today:     date(2024, 12, 31),
			wantDeath: date(2024, 12, 31),
			wantDay:   "Tuesday",
			wantHours: 0,
		},
		{
			name:      "death in the past",
			years:     1,
			dob:       date(2000, 6, 15),
			sleep:     8,
			work:      35,
			today:     date(2024, 1, 1),
			wantDeath: date(2001, 6, 15),
			wantDay:   "Friday",
			wantHours: 0,
		},
		{
			name:      "fractional years are truncated",
			years:     1.5,
			dob:       date(2024, 1, 1),
			sleep:     8,
			work:      0,
			today:     date(2025, 6, 30),
			wantDeath: date(2025, 7, 1),
			wantDay:   "Tuesday",
			wantHours: 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.years, tt.dob, tt.sleep, tt.work, tt.today)

			assert.Equal(t, tt.wantDeath, got.DeathDate)
			assert.Equal(t, tt.wantDay, got.DayOfWeek)
			assert.InDelta(t, tt.wantHours, got.FreeHoursLeft, 1e-9)
			assert.InDelta(t, tt.wantHours/24, got.FreeDaysLeft, 1e-9)
			assert.InDelta(t, tt.wantHours/24/365, got.FreeYearsLeft, 1e-9)
		})
	}
}

func TestProject_IgnoresTimeOfDay(t *testing.T) {
	dob := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	today := time.Date(2024, 12, 21, 6, 30, 0, 0, time.UTC)

	got := Project(1, dob, 8, 35, today)

	assert.Equal(t, date(2024, 12, 31), got.DeathDate)
	assert.InDelta(t, 110, got.FreeHoursLeft, 1e-9)
}

func TestProject_TotalDaysRoundTrip(t *testing.T) {
	dob := date(1990, 1, 1)
	for _, years := range []float64{1, 1.01, 33.3, 75.4, 77, 86.999} {
		got := Project(years, dob, 7, 40, date(2024, 1, 1))
		assert.Equal(t, int(years*365.25), DaysBetween(dob, got.DeathDate), "years=%v", years)
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 366, DaysBetween(date(2024, 1, 1), date(2025, 1, 1)))
	assert.Equal(t, -1, DaysBetween(date(2024, 1, 2), date(2024, 1, 1)))
	assert.Equal(t, 0, DaysBetween(date(2024, 1, 1), time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)))
}
