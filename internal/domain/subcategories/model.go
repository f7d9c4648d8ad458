package subcategories

import "veterinaria-api/internal/platform/jsonx"

// Subcategory pertenece a una categoría y agrupa servicios.
type Subcategory struct {
	ID           int64   `json:"SubcategoriaID"`
	CategoryID   int64   `json:"CategoriaProductoID"`
	Name         string  `json:"Nombre"`
	Description  *string `json:"Descripcion"`
	CategoryName string  `json:"NombreCategoria"`
}

type Input struct {
	CategoryID  jsonx.Int `json:"CategoriaProductoID" swaggertype:"integer"`
	Name        string    `json:"Nombre"`
	Description string    `json:"Descripcion"`
}
