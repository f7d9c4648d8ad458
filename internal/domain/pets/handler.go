package pets

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"veterinaria-api/internal/platform/logger"
	"veterinaria-api/internal/platform/web"
)

var messages = web.Messages{
	Entity:     "mascotas",
	NotFound:   "Mascota no encontrada.",
	Referenced: "No se puede eliminar la mascota porque tiene registros asociados (por ejemplo, citas). Por favor, elimina primero los elementos relacionados.",
	MissingRef: "El cliente o la raza indicados no existen.",
	Internal:   "Error interno del servidor al procesar mascotas.",
	Created:    "Mascota creada correctamente.",
	Updated:    "Mascota actualizada correctamente.",
	Deleted:    "Mascota eliminada correctamente.",
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	res := web.Resource[Pet, Input]{
		Service:  svc,
		Messages: messages,
		Log:      log,
	}

	r.Route("/api/mascotas", func(pr chi.Router) {
		pr.Get("/", listPets(res))
		pr.Post("/", createPet(res))
		pr.Get("/{id}", getPet(res))
		pr.Put("/{id}", updatePet(res))
		pr.Delete("/{id}", deletePet(res))
	})
}

// listPets godoc
// @Summary Listar mascotas
// @Description Búsqueda opcional por Nombre, nombre del cliente, raza o especie (subcadena, sin distinguir mayúsculas).
// @Tags mascotas
// @Produce json
// @Param search query string false "Texto a buscar"
// @Success 200 {array} Pet
// @Failure 500 {object} web.ErrorBody
// @Router /api/mascotas [get]
func listPets(res web.Resource[Pet, Input]) http.HandlerFunc {
	return web.ListHandler(res)
}

// getPet godoc
// @Summary Obtener mascota por ID
// @Tags mascotas
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} Pet
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/mascotas/{id} [get]
func getPet(res web.Resource[Pet, Input]) http.HandlerFunc {
	return web.GetHandler(res)
}

// createPet godoc
// @Summary Crear mascota
// @Description Obligatorios: Nombre, Edad (>= 0), Sexo, ClienteID y RazaID. Los IDs aceptan número o string numérico.
// @Tags mascotas
// @Accept json
// @Produce json
// @Param payload body Input true "Datos de la mascota"
// @Success 201 {object} web.CreatedBody
// @Failure 400 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/mascotas [post]
func createPet(res web.Resource[Pet, Input]) http.HandlerFunc {
	return web.CreateHandler(res)
}

// updatePet godoc
// @Summary Actualizar mascota
// @Tags mascotas
// @Accept json
// @Produce json
// @Param id path int true "ID de la mascota"
// @Param payload body Input true "Datos de la mascota"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/mascotas/{id} [put]
func updatePet(res web.Resource[Pet, Input]) http.HandlerFunc {
	return web.UpdateHandler(res)
}

// deletePet godoc
// @Summary Eliminar mascota
// @Description Devuelve 409 si tiene registros asociados.
// @Tags mascotas
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/mascotas/{id} [delete]
func deletePet(res web.Resource[Pet, Input]) http.HandlerFunc {
	return web.DeleteHandler(res)
}
