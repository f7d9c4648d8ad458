package categories

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"veterinaria-api/internal/platform/logger"
	"veterinaria-api/internal/platform/web"
)

var messages = web.Messages{
	Entity:     "categorias",
	NotFound:   "Categoría no encontrada.",
	Conflict:   "Ya existe una categoría con este nombre.",
	Referenced: "No se puede eliminar la categoría porque tiene subcategorías o servicios asociados. Por favor, elimina primero los elementos relacionados.",
	Internal:   "Error interno del servidor al procesar categorías.",
	Created:    "Categoría creada correctamente.",
	Updated:    "Categoría actualizada correctamente.",
	Deleted:    "Categoría eliminada correctamente.",
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	res := web.Resource[Category, Input]{
		Service:  svc,
		Messages: messages,
		Log:      log,
		CreatedExtra: func(in Input) map[string]any {
			return map[string]any{"NombreCategoria": strings.TrimSpace(in.Name)}
		},
	}

	r.Route("/api/categorias", func(cr chi.Router) {
		cr.Get("/", listCategories(res))
		cr.Post("/", createCategory(res))
		cr.Get("/{id}", getCategory(res))
		cr.Put("/{id}", updateCategory(res))
		cr.Delete("/{id}", deleteCategory(res))
	})
}

// listCategories godoc
// @Summary Listar categorías
// @Description Búsqueda opcional por NombreCategoria (subcadena, sin distinguir mayúsculas).
// @Tags categorias
// @Produce json
// @Param search query string false "Texto a buscar"
// @Success 200 {array} Category
// @Failure 500 {object} web.ErrorBody
// @Router /api/categorias [get]
func listCategories(res web.Resource[Category, Input]) http.HandlerFunc {
	return web.ListHandler(res)
}

// getCategory godoc
// @Summary Obtener categoría por ID
// @Tags categorias
// @Produce json
// @Param id path int true "ID de la categoría"
// @Success 200 {object} Category
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/categorias/{id} [get]
func getCategory(res web.Resource[Category, Input]) http.HandlerFunc {
	return web.GetHandler(res)
}

// createCategory godoc
// @Summary Crear categoría
// @Tags categorias
// @Accept json
// @Produce json
// @Param payload body Input true "Datos de la categoría"
// @Success 201 {object} web.CreatedBody{NombreCategoria=string}
// @Failure 400 {object} web.ErrorBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/categorias [post]
func createCategory(res web.Resource[Category, Input]) http.HandlerFunc {
	return web.CreateHandler(res)
}

// updateCategory godoc
// @Summary Actualizar categoría
// @Tags categorias
// @Accept json
// @Produce json
// @Param id path int true "ID de la categoría"
// @Param payload body Input true "Datos de la categoría"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/categorias/{id} [put]
func updateCategory(res web.Resource[Category, Input]) http.HandlerFunc {
	return web.UpdateHandler(res)
}

// deleteCategory godoc
// @Summary Eliminar categoría
// @Description Devuelve 409 si tiene registros asociados.
// @Tags categorias
// @Produce json
// @Param id path int true "ID de la categoría"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/categorias/{id} [delete]
func deleteCategory(res web.Resource[Category, Input]) http.HandlerFunc {
	return web.DeleteHandler(res)
}
