package clinicservices

import (
	"github.com/shopspring/decimal"

	"veterinaria-api/internal/platform/jsonx"
)

// ClinicService es un servicio facturable (consulta, vacuna, baño, ...).
// La subcategoría es opcional; los nombres de subcategoría/categoría vienen de LEFT JOIN.
type ClinicService struct {
	ID          int64   `json:"ServicioID"`
	Name        string  `json:"NombreServicio"`
	Description *string `json:"Descripcion"`
	Price       float64 `json:"Precio"`

	SubcategoryID   *int64  `json:"SubcategoriaID"`
	SubcategoryName *string `json:"NombreSubcategoria"`
	CategoryID      *int64  `json:"CategoriaProductoID"`
	CategoryName    *string `json:"NombreCategoria"`
}

type Input struct {
	Name          string              `json:"NombreServicio"`
	Description   string              `json:"Descripcion"`
	Price         decimal.NullDecimal `json:"Precio" swaggertype:"number"`
	SubcategoryID jsonx.Int           `json:"SubcategoriaID" swaggertype:"integer"`
}
