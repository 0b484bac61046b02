// Package estimator реализует шуточный расчёт "даты смерти" по анкете:
// продолжительность жизни складывается из базового значения страны и
// независимых поправок, после чего переводится в дату и оставшиеся свободные часы.
//
// Пакет не выполняет ввода-вывода и не хранит изменяемого состояния,
// текущая дата всегда передаётся вызывающим.
package estimator

import (
	"time"

	"github.com/magabrotheeeer/lifeclock/internal/models"
)

// Estimate считает оценку для анкеты на дату today.
// Поле ID заполняет вызывающий.
func Estimate(p models.Profile, today time.Time) models.Estimate {
	years, adjustments := LifeExpectancy(p)
	proj := Project(years, p.DateOfBirth, p.SleepHoursPerDay, p.WorkHoursPerWeek, today)

	return models.Estimate{
		AsOf:                civilDate(today),
		LifeExpectancyYears: years,
		PredictedDeathDate:  proj.DeathDate,
		DeathDayOfWeek:      proj.DayOfWeek,
		FreeHoursLeft:       proj.FreeHoursLeft,
		FreeDaysLeft:        proj.FreeDaysLeft,
		FreeYearsLeft:       proj.FreeYearsLeft,
		Adjustments:         adjustments,
	}
}
