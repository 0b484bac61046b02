// Package health реализует проверку живости сервиса.
package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/lifeclock/internal/http/response"
	"github.com/magabrotheeeer/lifeclock/internal/lib/sl"
)

// Checker проверяет внешнюю зависимость. Nil-чекеры пропускаются.
type Checker func(r *http.Request) error

type Handler struct {
	log      *slog.Logger
	checkers map[string]Checker
}

func New(log *slog.Logger, checkers map[string]Checker) *Handler {
	return &Handler{
		log:      log,
		checkers: checkers,
	}
}

// ServeHTTP отвечает 200, если все настроенные зависимости доступны, иначе 503.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	for name, check := range h.checkers {
		if check == nil {
			continue
		}
		if err := check(r); err != nil {
			h.log.Error("dependency is unhealthy", slog.String("op", op), slog.String("dependency", name), sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error(name+" is unavailable"))
			return
		}
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"status": "ok",
	}))
}
