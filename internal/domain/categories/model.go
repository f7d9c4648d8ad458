package categories

// Category agrupa subcategorías de servicios.
type Category struct {
	ID   int64  `json:"CategoriaProductoID"`
	Name string `json:"NombreCategoria"`
}

type Input struct {
	Name string `json:"NombreCategoria"`
}
