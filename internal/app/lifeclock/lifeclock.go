package lifeclock

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/streadway/amqp"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/lifeclock/internal/cache"
	"github.com/magabrotheeeer/lifeclock/internal/config"
	"github.com/magabrotheeeer/lifeclock/internal/http/handlers/health"
	"github.com/magabrotheeeer/lifeclock/internal/lib/sl"
	"github.com/magabrotheeeer/lifeclock/internal/metrics"
	"github.com/magabrotheeeer/lifeclock/internal/rabbitmq"
	estimateservice "github.com/magabrotheeeer/lifeclock/internal/services/estimate"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	server  *http.Server
	logger  *slog.Logger
	closers []func() error
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	app := &App{logger: logger}
	checkers := map[string]health.Checker{}

	var estimateCache estimateservice.Cache = cache.Noop{}
	if cfg.AddressRedis != "" {
		redisCache, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, redisCache.Close)
		estimateCache = redisCache
		checkers["redis"] = func(r *http.Request) error {
			return redisCache.Db.Ping(r.Context()).Err()
		}
		logger.Info("estimate cache enabled", slog.String("address", cfg.AddressRedis))
	}

	var publisher estimateservice.Publisher = rabbitmq.Noop{}
	if cfg.URL != "" {
		conn, err := rabbitmq.Connect(ctx, cfg.URL, cfg.Retries, cfg.RetryDelay)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.closers = append(app.closers, conn.Close)

		ch, err := rabbitmq.SetupChannel(conn, cfg.Exchange)
		if err != nil {
			app.Close()
			return nil, err
		}
		publisher = rabbitmq.NewPublisher(ch, cfg.Exchange, cfg.RoutingKey)
		checkers["rabbitmq"] = amqpChecker(conn)
		logger.Info("estimate events enabled", slog.String("exchange", cfg.Exchange))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.New(reg)

	service := estimateservice.NewService(estimateCache, publisher, recorder, logger, cfg.CacheTTL)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Estimates: service,
		Limiter:   rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Checkers:  checkers,
	})

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return app, nil
}

func amqpChecker(conn *amqp.Connection) health.Checker {
	closed := conn.NotifyClose(make(chan *amqp.Error, 1))
	return func(*http.Request) error {
		select {
		case err, ok := <-closed:
			if ok && err != nil {
				return err
			}
			return amqp.ErrClosed
		default:
			return nil
		}
	}
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.Close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.Close()
		return err
	}
}

// Close освобождает внешние соединения в обратном порядке.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("failed to close resource", sl.Err(err))
		}
	}
	a.closers = nil
}
