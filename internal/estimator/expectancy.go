package estimator

import "github.com/magabrotheeeer/lifeclock/internal/models"

// MinLifeExpectancy — нижняя граница результата, в годах.
const MinLifeExpectancy = 1.0

// Названия правил в трассировке Adjustments.
const (
	RuleGender        = "gender"
	RuleSmoking       = "smoking"
	RuleAlcohol       = "alcohol"
	RuleFamilyHistory = "family_history"
	RuleSleep         = "sleep"
	RuleBMI           = "bmi"
	RuleWork          = "work_hours"
	RuleExercise      = "exercise"
	RuleDiet          = "diet"
	RuleFloor         = "floor"
)

type rule struct {
	name  string
	delta func(p models.Profile) float64
}

// Порядок важен только для трассировки: все правила независимы.
var rules = []rule{
	{RuleGender, genderDelta},
	{RuleSmoking, smokingDelta},
	{RuleAlcohol, alcoholDelta},
	{RuleFamilyHistory, familyHistoryDelta},
	{RuleSleep, sleepDelta},
	{RuleBMI, bmiDelta},
	{RuleWork, workDelta},
	{RuleExercise, exerciseDelta},
	{RuleDiet, dietDelta},
}

// LifeExpectancy считает ожидаемую продолжительность жизни в годах, начиная
// с базового значения страны и применяя правила по порядку.
// Результат никогда не бывает меньше MinLifeExpectancy.
func LifeExpectancy(p models.Profile) (float64, []models.Adjustment) {
	total := CountryBase(p.Country)
	adjustments := make([]models.Adjustment, 0, len(rules)+1)

	for _, r := range rules {
		d := r.delta(p)
		total += d
		adjustments = append(adjustments, models.Adjustment{Rule: r.name, Delta: d})
	}

	if total < MinLifeExpectancy {
		adjustments = append(adjustments, models.Adjustment{Rule: RuleFloor, Delta: MinLifeExpectancy - total})
		total = MinLifeExpectancy
	}
	return total, adjustments
}

func genderDelta(p models.Profile) float64 {
	switch p.Gender {
	case models.GenderMale:
		return -2
	case models.GenderFemale:
		return 2
	default:
		return 0
	}
}

func smokingDelta(p models.Profile) float64 {
	if !p.Smokes {
		return 0
	}
	if p.CigarettesPerDay > 5 {
		return -(1 + float64(p.CigarettesPerDay-5)*0.2)
	}
	return -1
}

// alcoholDelta учитывает объём чистого спирта, а не объём напитка.
func alcoholDelta(p models.Profile) float64 {
	if !p.Drinks {
		return 0
	}
	pure := p.WeeklyAlcoholML * (AlcoholABV(p.AlcoholType) / 100)
	if pure > 100 {
		return -(0.5 + ((pure-100)/100)*0.5)
	}
	return -0.5
}

func familyHistoryDelta(p models.Profile) float64 {
	var d float64
	if p.FamilyHeartDisease {
		d -= 2
	}
	if p.FamilyCancer {
		d -= 2
	}
	return d
}

func sleepDelta(p models.Profile) float64 {
	switch {
	case p.SleepHoursPerDay < 6:
		return -(6 - p.SleepHoursPerDay) * 0.5
	case p.SleepHoursPerDay > 9:
		return -(p.SleepHoursPerDay - 9) * 0.5
	default:
		return 0
	}
}

// BMI возвращает индекс массы тела; при нулевом росте — 0.
func BMI(heightCM, weightKG float64) float64 {
	if heightCM <= 0 {
		return 0
	}
	m := heightCM / 100
	return weightKG / (m * m)
}

func bmiDelta(p models.Profile) float64 {
	bmi := BMI(p.HeightCM, p.WeightKG)
	switch {
	case bmi < 18.5:
		return -1
	case bmi >= 30:
		return -2
	case bmi >= 25:
		return -1
	default:
		return 0
	}
}

func workDelta(p models.Profile) float64 {
	if p.WorkHoursPerWeek > 40 {
		return -(p.WorkHoursPerWeek - 40) * 0.05
	}
	return 0
}

func exerciseDelta(p models.Profile) float64 {
	if p.ExerciseHoursPerWeek <= 5 {
		return p.ExerciseHoursPerWeek * 0.2
	}
	return 5 * 0.2
}

// Неизвестное значение сюда не доходит: граница отклоняет его раньше.
func dietDelta(p models.Profile) float64 {
	d, _ := DietImpact(p.Diet)
	return d
}
