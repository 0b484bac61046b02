package estimator

import "time"

const (
	daysPerYear     = 365.25
	freeDaysPerYear = 365.0
	secondsPerDay   = 24 * 60 * 60
)

// Projection — дата смерти и оставшееся свободное время.
type Projection struct {
	DeathDate     time.Time
	DayOfWeek     string
	FreeHoursLeft float64
	FreeDaysLeft  float64
	FreeYearsLeft float64
}

// Project переводит продолжительность жизни в календарную дату и считает
// свободные (не сон и не работа) часы от today до этой даты.
// Если дата уже наступила, свободного времени нет.
func Project(years float64, dob time.Time, sleepHours, workHours float64, today time.Time) Projection {
	dob = civilDate(dob)
	today = civilDate(today)

	totalDays := int(years * daysPerYear)
	death := dob.AddDate(0, 0, totalDays)

	p := Projection{
		DeathDate: death,
		DayOfWeek: death.Weekday().String(),
	}
	if !death.After(today) {
		return p
	}

	daysRemaining := DaysBetween(today, death)
	awakePerDay := 24 - sleepHours
	freePerWeek := 7*awakePerDay - workHours

	fullWeeks := daysRemaining / 7
	leftoverDays := daysRemaining % 7

	p.FreeHoursLeft = float64(fullWeeks)*freePerWeek + float64(leftoverDays)*(awakePerDay-workHours/7)
	p.FreeDaysLeft = p.FreeHoursLeft / 24
	p.FreeYearsLeft = p.FreeDaysLeft / freeDaysPerYear
	return p
}

// DaysBetween возвращает число целых календарных дней от from до to.
func DaysBetween(from, to time.Time) int {
	return int((civilDate(to).Unix() - civilDate(from).Unix()) / secondsPerDay)
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
