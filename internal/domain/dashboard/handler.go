package dashboard

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"veterinaria-api/internal/platform/logger"
	"veterinaria-api/internal/platform/web"
)

type Handler struct {
	svc *Service
	log logger.Logger
}

func NewHandler(svc *Service, log logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	h := NewHandler(svc, log)

	r.Route("/api/dashboard", func(dr chi.Router) {
		dr.Get("/summary", h.Summary)
		dr.Get("/counts", h.Counts)
		dr.Get("/upcoming-citas", h.Upcoming)
		dr.Get("/recent-activity", h.RecentActivity)
	})
}

// Summary godoc
// @Summary Resumen de citas del día y de la semana
// @Tags dashboard
// @Produce json
// @Success 200 {object} Summary
// @Failure 500 {object} web.ErrorBody
// @Router /api/dashboard/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Summary(r.Context())
	if err != nil {
		h.fail(w, "summary", err, "Error interno del servidor al obtener el resumen del dashboard.")
		return
	}
	web.WriteJSON(w, http.StatusOK, out)
}

// Counts godoc
// @Summary Totales de clientes y mascotas
// @Tags dashboard
// @Produce json
// @Success 200 {object} Counts
// @Failure 500 {object} web.ErrorBody
// @Router /api/dashboard/counts [get]
func (h *Handler) Counts(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Counts(r.Context())
	if err != nil {
		h.fail(w, "counts", err, "Error interno del servidor al obtener los conteos.")
		return
	}
	web.WriteJSON(w, http.StatusOK, out)
}

// Upcoming godoc
// @Summary Próximas citas abiertas
// @Tags dashboard
// @Produce json
// @Param limit query int false "Cantidad máxima (default 5, máx 50)"
// @Success 200 {array} UpcomingAppointment
// @Failure 500 {object} web.ErrorBody
// @Router /api/dashboard/upcoming-citas [get]
func (h *Handler) Upcoming(w http.ResponseWriter, r *http.Request) {
	// limit ausente, malformado o <= 0 llega como 0; Service.Upcoming aplica
	// el default (DefaultUpcomingLimit) y el tope (MaxUpcomingLimit).
	limit, _ := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("limit")))

	out, err := h.svc.Upcoming(r.Context(), limit)
	if err != nil {
		h.fail(w, "upcoming", err, "Error interno del servidor al obtener las próximas citas.")
		return
	}
	web.WriteJSON(w, http.StatusOK, out)
}

// RecentActivity godoc
// @Summary Actividad reciente
// @Tags dashboard
// @Produce json
// @Success 200 {array} Activity
// @Failure 500 {object} web.ErrorBody
// @Router /api/dashboard/recent-activity [get]
func (h *Handler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.RecentActivity(r.Context())
	if err != nil {
		h.fail(w, "recent_activity", err, "Error interno del servidor al obtener la actividad reciente.")
		return
	}
	web.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error, msg string) {
	web.WriteError(w, h.log, op, err, web.Messages{Entity: "dashboard", Internal: msg})
}
