package breeds

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"veterinaria-api/internal/platform/logger"
	"veterinaria-api/internal/platform/web"
)

var messages = web.Messages{
	Entity:     "razas",
	NotFound:   "Raza no encontrada.",
	Conflict:   "Ya existe una raza con este nombre para la especie seleccionada.",
	Referenced: "No se puede eliminar la raza porque tiene mascotas asociadas. Por favor, elimina primero los elementos relacionados.",
	MissingRef: "La especie indicada no existe.",
	Internal:   "Error interno del servidor al procesar razas.",
	Created:    "Raza creada correctamente.",
	Updated:    "Raza actualizada correctamente.",
	Deleted:    "Raza eliminada correctamente.",
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	res := web.Resource[Breed, Input]{
		Service:  svc,
		Messages: messages,
		Log:      log,
	}

	r.Route("/api/razas", func(br chi.Router) {
		br.Get("/", listBreeds(res))
		br.Post("/", createBreed(res))
		br.Get("/{id}", getBreed(res))
		br.Put("/{id}", updateBreed(res))
		br.Delete("/{id}", deleteBreed(res))
	})
}

// listBreeds godoc
// @Summary Listar razas
// @Description Búsqueda opcional por NombreRaza o NombreEspecie (subcadena, sin distinguir mayúsculas).
// @Tags razas
// @Produce json
// @Param search query string false "Texto a buscar"
// @Success 200 {array} Breed
// @Failure 500 {object} web.ErrorBody
// @Router /api/razas [get]
func listBreeds(res web.Resource[Breed, Input]) http.HandlerFunc {
	return web.ListHandler(res)
}

// getBreed godoc
// @Summary Obtener raza por ID
// @Tags razas
// @Produce json
// @Param id path int true "ID de la raza"
// @Success 200 {object} Breed
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/razas/{id} [get]
func getBreed(res web.Resource[Breed, Input]) http.HandlerFunc {
	return web.GetHandler(res)
}

// createBreed godoc
// @Summary Crear raza
// @Description Obligatorios: NombreRaza y EspecieID.
// @Tags razas
// @Accept json
// @Produce json
// @Param payload body Input true "Datos de la raza"
// @Success 201 {object} web.CreatedBody
// @Failure 400 {object} web.ErrorBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/razas [post]
func createBreed(res web.Resource[Breed, Input]) http.HandlerFunc {
	return web.CreateHandler(res)
}

// updateBreed godoc
// @Summary Actualizar raza
// @Tags razas
// @Accept json
// @Produce json
// @Param id path int true "ID de la raza"
// @Param payload body Input true "Datos de la raza"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/razas/{id} [put]
func updateBreed(res web.Resource[Breed, Input]) http.HandlerFunc {
	return web.UpdateHandler(res)
}

// deleteBreed godoc
// @Summary Eliminar raza
// @Description Devuelve 409 si tiene registros asociados.
// @Tags razas
// @Produce json
// @Param id path int true "ID de la raza"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/razas/{id} [delete]
func deleteBreed(res web.Resource[Breed, Input]) http.HandlerFunc {
	return web.DeleteHandler(res)
}
