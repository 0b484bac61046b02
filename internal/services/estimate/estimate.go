// Package estimate содержит бизнес-логику выдачи оценок: разбор анкеты,
// проверку на границе, кеширование, метрики и публикацию событий.
package estimate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/lifeclock/internal/estimator"
	"github.com/magabrotheeeer/lifeclock/internal/lib/sl"
	"github.com/magabrotheeeer/lifeclock/internal/models"
)

// DateLayout — формат даты рождения во входных данных.
const DateLayout = "2006-01-02"

var (
	ErrInvalidBirthDate  = errors.New("invalid date of birth")
	ErrBirthDateInFuture = errors.New("date of birth is in the future")
	ErrUnknownGender     = errors.New("unknown gender")
	ErrUnknownDiet       = errors.New("unknown diet quality")
)

// estimateNamespace — пространство имён UUIDv5 для идентификаторов оценок.
var estimateNamespace = uuid.MustParse("0b4f6a52-8d3e-4c1a-9d7b-6f1e2a3c4d5e")

// Cache описывает методы для кэширования оценок.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Publisher отправляет события о новых оценках.
type Publisher interface {
	PublishEstimate(ctx context.Context, event models.EstimateEvent) error
}

// Recorder учитывает метрики оценок.
type Recorder interface {
	ObserveComputed(lifeExpectancy, freeYears float64)
	ObserveCacheHit()
	ObservePublishError()
}

// Service выдаёт оценки по анкетам.
type Service struct {
	cache     Cache
	publisher Publisher
	recorder  Recorder
	log       *slog.Logger
	cacheTTL  time.Duration
	now       func() time.Time
}

// Option настраивает Service.
type Option func(*Service)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService создает новый экземпляр Service.
func NewService(cache Cache, publisher Publisher, recorder Recorder, log *slog.Logger, cacheTTL time.Duration, opts ...Option) *Service {
	s := &Service{
		cache:     cache,
		publisher: publisher,
		recorder:  recorder,
		log:       log,
		cacheTTL:  cacheTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Estimate считает оценку для анкеты на текущую дату.
// Одинаковые анкеты в течение одного дня получают одинаковый результат и ID.
func (s *Service) Estimate(ctx context.Context, req models.DummyProfile) (*models.Estimate, error) {
	const op = "services.estimate.Estimate"
	log := s.log.With(sl.Op(op))

	today := s.now().UTC()
	profile, err := ParseProfile(req, today)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id := EstimateID(profile, today)
	cacheKey := "estimate:" + id

	var cached models.Estimate
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		log.Warn("failed to read estimate from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		s.recorder.ObserveCacheHit()
		log.Debug("estimate served from cache", slog.String("id", id))
		return &cached, nil
	}

	result := estimator.Estimate(profile, today)
	result.ID = id
	s.recorder.ObserveComputed(result.LifeExpectancyYears, result.FreeYearsLeft)

	if err := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); err != nil {
		log.Warn("failed to cache estimate", slog.String("key", cacheKey), sl.Err(err))
	}

	event := models.EstimateEvent{
		ID:                  result.ID,
		LifeExpectancyYears: result.LifeExpectancyYears,
		PredictedDeathDate:  result.PredictedDeathDate,
		AsOf:                result.AsOf,
	}
	if err := s.publisher.PublishEstimate(ctx, event); err != nil {
		s.recorder.ObservePublishError()
		log.Warn("failed to publish estimate event", slog.String("id", id), sl.Err(err))
	}

	log.Info("computed new estimate", slog.String("id", id),
		slog.Float64("life_expectancy_years", result.LifeExpectancyYears))
	return &result, nil
}

// ParseProfile переводит анкету из запроса в доменную форму и проверяет то,
// что не выражается тегами валидатора.
func ParseProfile(req models.DummyProfile, today time.Time) (models.Profile, error) {
	dob, err := time.Parse(DateLayout, req.DateOfBirth)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidBirthDate, err)
	}
	if dob.After(today) {
		return models.Profile{}, ErrBirthDateInFuture
	}

	gender := models.Gender(req.Gender)
	switch gender {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
	default:
		return models.Profile{}, fmt.Errorf("%w: %q", ErrUnknownGender, req.Gender)
	}

	diet := models.DietQuality(req.DietQuality)
	if _, ok := estimator.DietImpact(diet); !ok {
		return models.Profile{}, fmt.Errorf("%w: %q", ErrUnknownDiet, req.DietQuality)
	}

	return models.Profile{
		DateOfBirth:          dob,
		Country:              req.Country,
		Gender:               gender,
		Smokes:               req.Smokes,
		CigarettesPerDay:     req.CigarettesPerDay,
		Drinks:               req.Drinks,
		WeeklyAlcoholML:      req.WeeklyAlcoholVolumeML,
		AlcoholType:          req.AlcoholType,
		HeightCM:             req.HeightCM,
		WeightKG:             req.WeightKG,
		FamilyHeartDisease:   req.FamilyHeartDisease,
		FamilyCancer:         req.FamilyCancer,
		SleepHoursPerDay:     req.SleepHoursPerDay,
		WorkHoursPerWeek:     req.WorkHoursPerWeek,
		ExerciseHoursPerWeek: req.ExerciseHoursPerWeek,
		Diet:                 diet,
	}, nil
}

// EstimateID возвращает детерминированный UUIDv5 для пары анкета + дата.
func EstimateID(p models.Profile, today time.Time) string {
	payload, err := json.Marshal(struct {
		Profile models.Profile
		AsOf    string
	}{p, today.UTC().Format(DateLayout)})
	if err != nil {
		// Profile состоит из примитивов и time.Time, ошибки здесь не бывает.
		panic(err)
	}
	return uuid.NewSHA1(estimateNamespace, payload).String()
}

var inputErrors = []error{
	ErrInvalidBirthDate,
	ErrBirthDateInFuture,
	ErrUnknownGender,
	ErrUnknownDiet,
}

// InputError возвращает sentinel-ошибку, если err вызвана некорректной анкетой,
// и nil в остальных случаях.
func InputError(err error) error {
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return target
		}
	}
	return nil
}
