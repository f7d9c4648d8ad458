package clients

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"veterinaria-api/internal/platform/logger"
	"veterinaria-api/internal/platform/web"
)

var messages = web.Messages{
	Entity:     "clientes",
	NotFound:   "Cliente no encontrado.",
	Conflict:   "El DNI proporcionado ya existe para otro cliente.",
	Referenced: "No se puede eliminar el cliente porque tiene mascotas asociadas u otros registros relacionados.",
	Internal:   "Error interno del servidor al procesar clientes.",
	Created:    "Cliente creado correctamente.",
	Updated:    "Cliente actualizado correctamente.",
	Deleted:    "Cliente eliminado correctamente.",
}

// RegisterRoutes monta /api/clientes.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	res := web.Resource[Client, Input]{
		Service:  svc,
		Messages: messages,
		Log:      log,
	}

	r.Route("/api/clientes", func(cr chi.Router) {
		cr.Get("/", listClients(res))
		cr.Post("/", createClient(res))
		cr.Get("/{id}", getClient(res))
		cr.Put("/{id}", updateClient(res))
		cr.Delete("/{id}", deleteClient(res))
	})
}

// listClients godoc
// @Summary Listar clientes
// @Description Búsqueda opcional por PrimerNombre, apellidos, DNI, Telefono o Correo (subcadena, sin distinguir mayúsculas).
// @Tags clientes
// @Produce json
// @Param search query string false "Texto a buscar"
// @Success 200 {array} Client
// @Failure 500 {object} web.ErrorBody
// @Router /api/clientes [get]
func listClients(res web.Resource[Client, Input]) http.HandlerFunc {
	return web.ListHandler(res)
}

// getClient godoc
// @Summary Obtener cliente por ID
// @Tags clientes
// @Produce json
// @Param id path int true "ID del cliente"
// @Success 200 {object} Client
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/clientes/{id} [get]
func getClient(res web.Resource[Client, Input]) http.HandlerFunc {
	return web.GetHandler(res)
}

// createClient godoc
// @Summary Crear cliente
// @Description Obligatorios: PrimerNombre, ApellidoPaterno, ApellidoMaterno y DNI (8 dígitos). Si no viene Correo se guarda a@gmail.com.
// @Tags clientes
// @Accept json
// @Produce json
// @Param payload body Input true "Datos del cliente"
// @Success 201 {object} web.CreatedBody
// @Failure 400 {object} web.ErrorBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/clientes [post]
func createClient(res web.Resource[Client, Input]) http.HandlerFunc {
	return web.CreateHandler(res)
}

// updateClient godoc
// @Summary Actualizar cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param id path int true "ID del cliente"
// @Param payload body Input true "Datos del cliente"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/clientes/{id} [put]
func updateClient(res web.Resource[Client, Input]) http.HandlerFunc {
	return web.UpdateHandler(res)
}

// deleteClient godoc
// @Summary Eliminar cliente
// @Description Devuelve 409 si tiene registros asociados.
// @Tags clientes
// @Produce json
// @Param id path int true "ID del cliente"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/clientes/{id} [delete]
func deleteClient(res web.Resource[Client, Input]) http.HandlerFunc {
	return web.DeleteHandler(res)
}
