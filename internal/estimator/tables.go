package estimator

import (
	"maps"

	"github.com/magabrotheeeer/lifeclock/internal/models"
)

const (
	// DefaultCountryBase — базовая продолжительность жизни для неизвестной страны.
	DefaultCountryBase = 75.0
	// DefaultABV — крепость для неизвестного типа алкоголя, в процентах.
	DefaultABV = 10.0
)

// Значения иллюстративные.
var countryLifeExpectancy = map[string]float64{
	"United States":  77,
	"Canada":         80,
	"India":          70,
	"United Kingdom": 79,
	"Australia":      82,
	"Other":          DefaultCountryBase,
}

var alcoholABV = map[string]float64{
	"Beer":    5,
	"Wine":    12,
	"Whiskey": 40,
	"Tequila": 40,
	"Other":   DefaultABV,
}

var dietImpact = map[models.DietQuality]float64{
	models.DietPoor:      -2,
	models.DietModerate:  -1,
	models.DietGood:      0,
	models.DietExcellent: 1,
}

// CountryBase возвращает базовую продолжительность жизни для страны.
func CountryBase(country string) float64 {
	if v, ok := countryLifeExpectancy[country]; ok {
		return v
	}
	return DefaultCountryBase
}

// AlcoholABV возвращает крепость напитка в процентах.
func AlcoholABV(alcoholType string) float64 {
	if v, ok := alcoholABV[alcoholType]; ok {
		return v
	}
	return DefaultABV
}

// DietImpact возвращает поправку за питание и признак того, что значение известно.
func DietImpact(d models.DietQuality) (float64, bool) {
	v, ok := dietImpact[d]
	return v, ok
}

// Tables — копия справочников для отдачи наружу.
type Tables struct {
	Countries     map[string]float64 `json:"countries"`
	AlcoholTypes  map[string]float64 `json:"alcohol_types"`
	DietQualities map[string]float64 `json:"diet_qualities"`
	Genders       []string           `json:"genders"`
}

// LookupTables возвращает копии справочников, изменение которых не влияет на расчёт.
func LookupTables() Tables {
	diets := make(map[string]float64, len(dietImpact))
	for k, v := range dietImpact {
		diets[string(k)] = v
	}
	return Tables{
		Countries:     maps.Clone(countryLifeExpectancy),
		AlcoholTypes:  maps.Clone(alcoholABV),
		DietQualities: diets,
		Genders: []string{
			string(models.GenderMale),
			string(models.GenderFemale),
			string(models.GenderOther),
		},
	}
}
