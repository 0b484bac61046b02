package models

import "time"

// Adjustment — вклад одного правила в итоговую продолжительность жизни, в годах.
type Adjustment struct {
	Rule  string  `json:"rule"`
	Delta float64 `json:"delta"`
}

// Estimate — результат оценки для одной анкеты на дату AsOf.
type Estimate struct {
	ID                  string       `json:"id"`
	AsOf                time.Time    `json:"as_of"`
	LifeExpectancyYears float64      `json:"life_expectancy_years"`
	PredictedDeathDate  time.Time    `json:"predicted_death_date"`
	DeathDayOfWeek      string       `json:"death_day_of_week"`
	FreeHoursLeft       float64      `json:"free_hours_left"`
	FreeDaysLeft        float64      `json:"free_days_left"`
	FreeYearsLeft       float64      `json:"free_years_left"`
	Adjustments         []Adjustment `json:"adjustments"`
}

// EstimateEvent публикуется в брокер после расчёта новой оценки.
// Анкета в событие не попадает.
type EstimateEvent struct {
	ID                  string    `json:"id"`
	LifeExpectancyYears float64   `json:"life_expectancy_years"`
	PredictedDeathDate  time.Time `json:"predicted_death_date"`
	AsOf                time.Time `json:"as_of"`
}
