package employees

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"veterinaria-api/internal/platform/logger"
	"veterinaria-api/internal/platform/web"
)

var messages = web.Messages{
	Entity:     "empleados",
	NotFound:   "Empleado no encontrado.",
	Conflict:   "El DNI proporcionado ya existe para otro empleado.",
	Referenced: "No se puede eliminar el empleado porque tiene citas asociadas. Por favor, elimina primero las citas relacionadas.",
	MissingRef: "El rol indicado no existe.",
	Internal:   "Error interno del servidor al procesar empleados.",
	Created:    "Empleado creado correctamente.",
	Updated:    "Empleado actualizado correctamente.",
	Deleted:    "Empleado eliminado correctamente.",
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	res := web.Resource[Employee, Input]{
		Service:  svc,
		Messages: messages,
		Log:      log,
	}

	r.Route("/api/empleados", func(er chi.Router) {
		er.Get("/", listEmployees(res))
		er.Post("/", createEmployee(res))
		er.Get("/{id}", getEmployee(res))
		er.Put("/{id}", updateEmployee(res))
		er.Delete("/{id}", deleteEmployee(res))
	})
}

// listEmployees godoc
// @Summary Listar empleados
// @Description Búsqueda opcional por nombres, DNI, Telefono, Correo o NombreRol (subcadena, sin distinguir mayúsculas).
// @Tags empleados
// @Produce json
// @Param search query string false "Texto a buscar"
// @Success 200 {array} Employee
// @Failure 500 {object} web.ErrorBody
// @Router /api/empleados [get]
func listEmployees(res web.Resource[Employee, Input]) http.HandlerFunc {
	return web.ListHandler(res)
}

// getEmployee godoc
// @Summary Obtener empleado por ID
// @Tags empleados
// @Produce json
// @Param id path int true "ID del empleado"
// @Success 200 {object} Employee
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/empleados/{id} [get]
func getEmployee(res web.Resource[Employee, Input]) http.HandlerFunc {
	return web.GetHandler(res)
}

// createEmployee godoc
// @Summary Crear empleado
// @Description Obligatorios: PrimerNombre, ApellidoPaterno, ApellidoMaterno, DNI (8 dígitos) y RolID.
// @Tags empleados
// @Accept json
// @Produce json
// @Param payload body Input true "Datos del empleado"
// @Success 201 {object} web.CreatedBody
// @Failure 400 {object} web.ErrorBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/empleados [post]
func createEmployee(res web.Resource[Employee, Input]) http.HandlerFunc {
	return web.CreateHandler(res)
}

// updateEmployee godoc
// @Summary Actualizar empleado
// @Tags empleados
// @Accept json
// @Produce json
// @Param id path int true "ID del empleado"
// @Param payload body Input true "Datos del empleado"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/empleados/{id} [put]
func updateEmployee(res web.Resource[Employee, Input]) http.HandlerFunc {
	return web.UpdateHandler(res)
}

// deleteEmployee godoc
// @Summary Eliminar empleado
// @Description Devuelve 409 si tiene registros asociados.
// @Tags empleados
// @Produce json
// @Param id path int true "ID del empleado"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/empleados/{id} [delete]
func deleteEmployee(res web.Resource[Employee, Input]) http.HandlerFunc {
	return web.DeleteHandler(res)
}
