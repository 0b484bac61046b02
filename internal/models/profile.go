// Package models содержит доменные структуры сервиса: анкету пользователя,
// результат оценки, а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Gender — пол, указанный в анкете.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// DietQuality — самооценка качества питания.
type DietQuality string

const (
	DietPoor      DietQuality = "Poor"
	DietModerate  DietQuality = "Moderate"
	DietGood      DietQuality = "Good"
	DietExcellent DietQuality = "Excellent"
)

// Profile представляет анкету в том виде, в котором её принимает калькулятор.
// Все поля уже прошли валидацию на границе и приведены к доменным типам.
type Profile struct {
	DateOfBirth time.Time // Дата рождения, UTC полночь
	Country     string    // Страна проживания
	Gender      Gender

	Smokes           bool
	CigarettesPerDay int

	Drinks          bool
	WeeklyAlcoholML float64 // Объём напитка в мл за неделю
	AlcoholType     string  // Тип напитка, определяет крепость

	HeightCM float64
	WeightKG float64

	FamilyHeartDisease bool
	FamilyCancer       bool

	SleepHoursPerDay     float64
	WorkHoursPerWeek     float64
	ExerciseHoursPerWeek float64
	Diet                 DietQuality
}

// DummyProfile используется для приёма анкеты из JSON-запроса,
// прежде чем конвертировать её в Profile.
// Дата рождения приходит строкой в формате 2006-01-02.
type DummyProfile struct {
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Country     string `json:"country"`
	Gender      string `json:"gender" validate:"required,oneof=Male Female Other"`

	Smokes           bool `json:"smokes"`
	CigarettesPerDay int  `json:"cigarettes_per_day" validate:"gte=0"`

	Drinks                bool    `json:"drinks"`
	WeeklyAlcoholVolumeML float64 `json:"weekly_alcohol_volume_ml" validate:"gte=0"`
	AlcoholType           string  `json:"alcohol_type"`

	HeightCM float64 `json:"height_cm" validate:"gt=0"`
	WeightKG float64 `json:"weight_kg" validate:"gt=0"`

	FamilyHeartDisease bool `json:"family_heart_disease"`
	FamilyCancer       bool `json:"family_cancer"`

	SleepHoursPerDay     float64 `json:"sleep_hours_per_day" validate:"gte=0,lte=24"`
	WorkHoursPerWeek     float64 `json:"work_hours_per_week" validate:"gte=0,lte=168"`
	ExerciseHoursPerWeek float64 `json:"exercise_hours_per_week" validate:"gte=0"`
	DietQuality          string  `json:"diet_quality" validate:"required,oneof=Poor Moderate Good Excellent"`
}
