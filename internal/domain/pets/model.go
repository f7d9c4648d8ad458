package pets

import "veterinaria-api/internal/platform/jsonx"

// Sex de la mascota, tal como lo guarda el formulario.
type Sex string

const (
	SexMale   Sex = "Macho"
	SexFemale Sex = "Hembra"
)

// Pet pertenece a un cliente y a una raza (y por la raza, a una especie).
// Los campos de nombre de cliente/raza/especie vienen del join y son de solo lectura.
type Pet struct {
	ID   int64  `json:"MascotaID"`
	Name string `json:"Nombre"`
	Age  int    `json:"Edad"`
	Sex  Sex    `json:"Sexo"`

	ClientID              int64  `json:"ClienteID"`
	ClientFirstName       string `json:"ClientePrimerNombre"`
	ClientPaternalSurname string `json:"ClienteApellidoPaterno"`
	ClientMaternalSurname string `json:"ClienteApellidoMaterno"`

	BreedID     int64  `json:"RazaID"`
	BreedName   string `json:"NombreRaza"`
	SpeciesID   int64  `json:"EspecieID"`
	SpeciesName string `json:"NombreEspecie"`
}

type Input struct {
	Name     string    `json:"Nombre"`
	Age      jsonx.Int `json:"Edad" swaggertype:"integer"`
	Sex      string    `json:"Sexo"`
	ClientID jsonx.Int `json:"ClienteID" swaggertype:"integer"`
	BreedID  jsonx.Int `json:"RazaID" swaggertype:"integer"`
}
