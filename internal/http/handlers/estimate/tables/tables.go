// Package tables отдаёт справочники, на которых основан расчёт:
// страны, типы алкоголя, качество питания и допустимые значения пола.
package tables

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/lifeclock/internal/estimator"
	"github.com/magabrotheeeer/lifeclock/internal/http/response"
)

type Handler struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Справочники
// @Description Базовая продолжительность жизни по странам, крепость напитков и поправки за питание.
// @Tags Estimates
// @Produce  json
// @Success 200 {object} response.Response{data=estimator.Tables}
// @Router /tables [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.estimate.tables"
	h.log.Debug("serving lookup tables",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	render.JSON(w, r, response.OKWithData(estimator.LookupTables()))
}
