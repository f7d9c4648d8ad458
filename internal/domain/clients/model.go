package clients

import "time"

// DefaultEmail se usa cuando el formulario no manda Correo al crear.
const DefaultEmail = "a@gmail.com"

// Client es un dueño de mascotas registrado en la clínica.
type Client struct {
	ID              int64  `json:"ClienteID"`
	FirstName       string `json:"PrimerNombre"`
	PaternalSurname string `json:"ApellidoPaterno"`
	MaternalSurname string `json:"ApellidoMaterno"`
	DNI             string `json:"DNI"`
	Phone           string `json:"Telefono"`
	Address         string `json:"Direccion"`
	Email           string `json:"Correo"`

	CreatedAt time.Time `json:"FechaCreacion"`
	UpdatedAt time.Time `json:"FechaActualizacion"`
}

// Input son los campos editables (POST/PUT).
type Input struct {
	FirstName       string  `json:"PrimerNombre"`
	PaternalSurname string  `json:"ApellidoPaterno"`
	MaternalSurname string  `json:"ApellidoMaterno"`
	DNI             string  `json:"DNI"`
	Phone           string  `json:"Telefono"`
	Address         string  `json:"Direccion"`
	Email           *string `json:"Correo"`
}
