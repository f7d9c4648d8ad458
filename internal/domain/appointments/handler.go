package appointments

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"veterinaria-api/internal/platform/logger"
	"veterinaria-api/internal/platform/web"
)

var messages = web.Messages{
	Entity:     "citas",
	NotFound:   "Cita no encontrada.",
	Referenced: "No se puede eliminar la cita porque tiene servicios asociados. Por favor, elimina primero los servicios asociados a esta cita.",
	MissingRef: "La mascota o el empleado indicados no existen.",
	Internal:   "Error interno del servidor al procesar citas.",
	Created:    "Cita creada correctamente.",
	Updated:    "Cita actualizada correctamente.",
	Deleted:    "Cita eliminada correctamente.",
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	res := web.Resource[Appointment, Input]{
		Service:  svc,
		Messages: messages,
		Log:      log,
	}

	r.Route("/api/citas", func(cr chi.Router) {
		cr.Get("/", listAppointments(res))
		cr.Post("/", createAppointment(res))
		cr.Get("/{id}", getAppointment(res))
		cr.Put("/{id}", updateAppointment(res))
		cr.Delete("/{id}", deleteAppointment(res))
	})
}

// listAppointments godoc
// @Summary Listar citas
// @Description Búsqueda opcional por mascota, cliente, empleado, rol o Estado (subcadena, sin distinguir mayúsculas).
// @Tags citas
// @Produce json
// @Param search query string false "Texto a buscar"
// @Success 200 {array} Appointment
// @Failure 500 {object} web.ErrorBody
// @Router /api/citas [get]
func listAppointments(res web.Resource[Appointment, Input]) http.HandlerFunc {
	return web.ListHandler(res)
}

// getAppointment godoc
// @Summary Obtener cita por ID
// @Tags citas
// @Produce json
// @Param id path int true "ID de la cita"
// @Success 200 {object} Appointment
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/citas/{id} [get]
func getAppointment(res web.Resource[Appointment, Input]) http.HandlerFunc {
	return web.GetHandler(res)
}

// createAppointment godoc
// @Summary Crear cita
// @Description Obligatorios: MascotaID y EmpleadoID. Fecha por defecto es ahora y no puede ser de un día pasado. Estado por defecto Pendiente.
// @Tags citas
// @Accept json
// @Produce json
// @Param payload body Input true "Datos de la cita"
// @Success 201 {object} web.CreatedBody
// @Failure 400 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/citas [post]
func createAppointment(res web.Resource[Appointment, Input]) http.HandlerFunc {
	return web.CreateHandler(res)
}

// updateAppointment godoc
// @Summary Actualizar cita
// @Description Todos los campos son obligatorios. Una fecha pasada solo se acepta si es la misma ya guardada (a precisión de minuto).
// @Tags citas
// @Accept json
// @Produce json
// @Param id path int true "ID de la cita"
// @Param payload body Input true "Datos de la cita"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/citas/{id} [put]
func updateAppointment(res web.Resource[Appointment, Input]) http.HandlerFunc {
	return web.UpdateHandler(res)
}

// deleteAppointment godoc
// @Summary Eliminar cita
// @Description Devuelve 409 si tiene registros asociados.
// @Tags citas
// @Produce json
// @Param id path int true "ID de la cita"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/citas/{id} [delete]
func deleteAppointment(res web.Resource[Appointment, Input]) http.HandlerFunc {
	return web.DeleteHandler(res)
}
