package subcategories

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"veterinaria-api/internal/platform/logger"
	"veterinaria-api/internal/platform/web"
)

var messages = web.Messages{
	Entity:     "subcategorias",
	NotFound:   "Subcategoría no encontrada.",
	Conflict:   "Ya existe una subcategoría con este nombre para la categoría seleccionada.",
	Referenced: "No se puede eliminar la subcategoría porque tiene servicios asociados. Por favor, elimina primero los elementos relacionados.",
	MissingRef: "La categoría indicada no existe.",
	Internal:   "Error interno del servidor al procesar subcategorías.",
	Created:    "Subcategoría creada correctamente.",
	Updated:    "Subcategoría actualizada correctamente.",
	Deleted:    "Subcategoría eliminada correctamente.",
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	res := web.Resource[Subcategory, Input]{
		Service:  svc,
		Messages: messages,
		Log:      log,
	}

	r.Route("/api/subcategorias", func(sr chi.Router) {
		sr.Get("/", listSubcategories(res))
		sr.Post("/", createSubcategory(res))
		sr.Get("/{id}", getSubcategory(res))
		sr.Put("/{id}", updateSubcategory(res))
		sr.Delete("/{id}", deleteSubcategory(res))
	})
}

// listSubcategories godoc
// @Summary Listar subcategorías
// @Description Búsqueda opcional por Nombre o NombreCategoria (subcadena, sin distinguir mayúsculas).
// @Tags subcategorias
// @Produce json
// @Param search query string false "Texto a buscar"
// @Success 200 {array} Subcategory
// @Failure 500 {object} web.ErrorBody
// @Router /api/subcategorias [get]
func listSubcategories(res web.Resource[Subcategory, Input]) http.HandlerFunc {
	return web.ListHandler(res)
}

// getSubcategory godoc
// @Summary Obtener subcategoría por ID
// @Tags subcategorias
// @Produce json
// @Param id path int true "ID de la subcategoría"
// @Success 200 {object} Subcategory
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/subcategorias/{id} [get]
func getSubcategory(res web.Resource[Subcategory, Input]) http.HandlerFunc {
	return web.GetHandler(res)
}

// createSubcategory godoc
// @Summary Crear subcategoría
// @Description Obligatorios: CategoriaProductoID y Nombre. Descripcion vacía se guarda como null.
// @Tags subcategorias
// @Accept json
// @Produce json
// @Param payload body Input true "Datos de la subcategoría"
// @Success 201 {object} web.CreatedBody
// @Failure 400 {object} web.ErrorBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/subcategorias [post]
func createSubcategory(res web.Resource[Subcategory, Input]) http.HandlerFunc {
	return web.CreateHandler(res)
}

// updateSubcategory godoc
// @Summary Actualizar subcategoría
// @Tags subcategorias
// @Accept json
// @Produce json
// @Param id path int true "ID de la subcategoría"
// @Param payload body Input true "Datos de la subcategoría"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/subcategorias/{id} [put]
func updateSubcategory(res web.Resource[Subcategory, Input]) http.HandlerFunc {
	return web.UpdateHandler(res)
}

// deleteSubcategory godoc
// @Summary Eliminar subcategoría
// @Description Devuelve 409 si tiene registros asociados.
// @Tags subcategorias
// @Produce json
// @Param id path int true "ID de la subcategoría"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/subcategorias/{id} [delete]
func deleteSubcategory(res web.Resource[Subcategory, Input]) http.HandlerFunc {
	return web.DeleteHandler(res)
}
