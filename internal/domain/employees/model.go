package employees

import "veterinaria-api/internal/platform/jsonx"

const DefaultEmail = "a@gmail.com"

// Employee atiende citas; tiene exactamente un rol.
type Employee struct {
	ID              int64  `json:"EmpleadoID"`
	FirstName       string `json:"PrimerNombre"`
	PaternalSurname string `json:"ApellidoPaterno"`
	MaternalSurname string `json:"ApellidoMaterno"`
	DNI             string `json:"DNI"`
	Email           string `json:"Correo"`
	Phone           string `json:"Telefono"`
	RoleID          int64  `json:"RolID"`
	RoleName        string `json:"NombreRol"`
}

type Input struct {
	FirstName       string    `json:"PrimerNombre"`
	PaternalSurname string    `json:"ApellidoPaterno"`
	MaternalSurname string    `json:"ApellidoMaterno"`
	DNI             string    `json:"DNI"`
	Email           *string   `json:"Correo"`
	Phone           string    `json:"Telefono"`
	RoleID          jsonx.Int `json:"RolID" swaggertype:"integer"`
}
