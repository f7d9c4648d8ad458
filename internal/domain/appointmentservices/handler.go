package appointmentservices

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"veterinaria-api/internal/platform/logger"
	"veterinaria-api/internal/platform/web"
)

var messages = web.Messages{
	Entity:     "citaservicios",
	NotFound:   "Registro de CitaServicio no encontrado.",
	Conflict:   "Este servicio ya está asignado a esta cita.",
	Referenced: "No se puede eliminar el registro porque está en uso.",
	MissingRef: "La CitaID o ServicioID proporcionados no existen.",
	Internal:   "Error interno del servidor al procesar CitaServicios.",
	Created:    "Registro de CitaServicio creado correctamente.",
	Updated:    "Registro de CitaServicio actualizado correctamente.",
	Deleted:    "Registro de CitaServicio eliminado correctamente.",
}

var reportMessages = web.Messages{
	Entity:   "reporte_cita",
	NotFound: "Cita no encontrada.",
	Internal: "Error interno del servidor al obtener los datos del reporte de la cita.",
}

type Handler struct {
	svc *Service
	log logger.Logger
}

func NewHandler(svc *Service, log logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes monta /api/citaservicios y /api/citaservicios/reporte/{id}.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	h := NewHandler(svc, log)

	res := web.Resource[AppointmentService, Input]{
		Service:  svc,
		Messages: messages,
		Log:      log,
	}

	r.Route("/api/citaservicios", func(cr chi.Router) {
		cr.Get("/reporte/{id}", h.Report)
		cr.Get("/", listAppointmentServices(res))
		cr.Post("/", createAppointmentService(res))
		cr.Get("/{id}", getAppointmentService(res))
		cr.Put("/{id}", updateAppointmentService(res))
		cr.Delete("/{id}", deleteAppointmentService(res))
	})
}

// Report godoc
// @Summary Reporte de una cita
// @Description Devuelve la cita con mascota, cliente, empleado, servicios y TotalPagar.
// @Tags citaservicios
// @Produce json
// @Param id path int true "ID de la cita"
// @Success 200 {object} Report
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/citaservicios/reporte/{id} [get]
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	id, err := web.ParseID(r)
	if err != nil {
		web.WriteError(w, h.log, "report", err, reportMessages)
		return
	}

	rep, err := h.svc.Report(r.Context(), id)
	if err != nil {
		web.WriteError(w, h.log, "report", err, reportMessages)
		return
	}
	web.WriteJSON(w, http.StatusOK, rep)
}

// listAppointmentServices godoc
// @Summary Listar servicios de citas
// @Description Búsqueda opcional por mascota, cliente, servicio o estado de la cita (subcadena, sin distinguir mayúsculas).
// @Tags citaservicios
// @Produce json
// @Param search query string false "Texto a buscar"
// @Success 200 {array} AppointmentService
// @Failure 500 {object} web.ErrorBody
// @Router /api/citaservicios [get]
func listAppointmentServices(res web.Resource[AppointmentService, Input]) http.HandlerFunc {
	return web.ListHandler(res)
}

// getAppointmentService godoc
// @Summary Obtener servicio de cita por ID
// @Tags citaservicios
// @Produce json
// @Param id path int true "ID del servicio de cita"
// @Success 200 {object} AppointmentService
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/citaservicios/{id} [get]
func getAppointmentService(res web.Resource[AppointmentService, Input]) http.HandlerFunc {
	return web.GetHandler(res)
}

// createAppointmentService godoc
// @Summary Crear servicio de cita
// @Description Obligatorios: CitaID y ServicioID. Un servicio no se puede repetir en la misma cita.
// @Tags citaservicios
// @Accept json
// @Produce json
// @Param payload body Input true "Datos del servicio de cita"
// @Success 201 {object} web.CreatedBody
// @Failure 400 {object} web.ErrorBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/citaservicios [post]
func createAppointmentService(res web.Resource[AppointmentService, Input]) http.HandlerFunc {
	return web.CreateHandler(res)
}

// updateAppointmentService godoc
// @Summary Actualizar servicio de cita
// @Tags citaservicios
// @Accept json
// @Produce json
// @Param id path int true "ID del servicio de cita"
// @Param payload body Input true "Datos del servicio de cita"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/citaservicios/{id} [put]
func updateAppointmentService(res web.Resource[AppointmentService, Input]) http.HandlerFunc {
	return web.UpdateHandler(res)
}

// deleteAppointmentService godoc
// @Summary Eliminar servicio de cita
// @Tags citaservicios
// @Produce json
// @Param id path int true "ID del servicio de cita"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/citaservicios/{id} [delete]
func deleteAppointmentService(res web.Resource[AppointmentService, Input]) http.HandlerFunc {
	return web.DeleteHandler(res)
}
