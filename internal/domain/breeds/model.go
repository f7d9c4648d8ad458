package breeds

import "veterinaria-api/internal/platform/jsonx"

// Breed pertenece a una especie.
type Breed struct {
	ID          int64  `json:"RazaID"`
	Name        string `json:"NombreRaza"`
	SpeciesID   int64  `json:"EspecieID"`
	SpeciesName string `json:"NombreEspecie"`
}

type Input struct {
	Name      string    `json:"NombreRaza"`
	SpeciesID jsonx.Int `json:"EspecieID" swaggertype:"integer"`
}
