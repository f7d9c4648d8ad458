package appointmentservices

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRow es una fila plana del join cita -> mascota/cliente/empleado -> servicios.
// Las columnas de servicio son nulas cuando la cita no tiene servicios (LEFT JOIN).
type ReportRow struct {
	AppointmentID     int64
	AppointmentDate   time.Time
	AppointmentStatus string

	PetID      int64
	PetName    string
	PetAge     int
	PetSex     string
	PetSpecies string
	PetBreed   string

	ClientID              int64
	ClientFirstName       string
	ClientPaternalSurname string
	ClientMaternalSurname string
	ClientDNI             string
	ClientPhone           string
	ClientAddress         string
	ClientEmail           string

	EmployeeFirstName       string
	EmployeePaternalSurname string
	EmployeeRole            string

	ServiceID          *int64
	ServiceName        *string
	ServiceDescription *string
	ServicePrice       decimal.NullDecimal
}

type Report struct {
	AppointmentID int64          `json:"CitaID"`
	Date          time.Time      `json:"Fecha"`
	Status        string         `json:"Estado"`
	Pet           ReportPet      `json:"Mascota"`
	Client        ReportClient   `json:"Cliente"`
	Employee      ReportEmployee `json:"Empleado"`
	Services      []ReportLine   `json:"Servicios"`
	Total         float64        `json:"TotalPagar"`
}

type ReportPet struct {
	ID      int64  `json:"ID"`
	Name    string `json:"Nombre"`
	Age     int    `json:"Edad"`
	Sex     string `json:"Sexo"`
	Species string `json:"Especie"`
	Breed   string `json:"Raza"`
}

type ReportClient struct {
	ID              int64  `json:"ID"`
	FirstName       string `json:"PrimerNombre"`
	PaternalSurname string `json:"ApellidoPaterno"`
	MaternalSurname string `json:"ApellidoMaterno"`
	DNI             string `json:"DNI"`
	Phone           string `json:"Telefono"`
	Address         string `json:"Direccion"`
	Email           string `json:"Correo"`
}

type ReportEmployee struct {
	FirstName       string `json:"PrimerNombre"`
	PaternalSurname string `json:"ApellidoPaterno"`
	Role            string `json:"Rol"`
}

type ReportLine struct {
	ID          int64   `json:"ID"`
	Name        string  `json:"Nombre"`
	Description *string `json:"Descripcion"`
	Price       float64 `json:"Precio"`
}

// BuildReport pliega las filas del join en un único reporte. La cabecera sale de
// la primera fila; si esa fila no trae servicio, Servicios queda vacío.
// El total se suma en decimal y se redondea a 2 decimales. rows no debe estar vacío.
func BuildReport(rows []ReportRow) Report {
	first := rows[0]
	rep := Report{
		AppointmentID: first.AppointmentID,
		Date:          first.AppointmentDate,
		Status:        first.AppointmentStatus,
		Pet: ReportPet{
			ID:      first.PetID,
			Name:    first.PetName,
			Age:     first.PetAge,
			Sex:     first.PetSex,
			Species: first.PetSpecies,
			Breed:   first.PetBreed,
		},
		Client: ReportClient{
			ID:              first.ClientID,
			FirstName:       first.ClientFirstName,
			PaternalSurname: first.ClientPaternalSurname,
			MaternalSurname: first.ClientMaternalSurname,
			DNI:             first.ClientDNI,
			Phone:           first.ClientPhone,
			Address:         first.ClientAddress,
			Email:           first.ClientEmail,
		},
		Employee: ReportEmployee{
			FirstName:       first.EmployeeFirstName,
			PaternalSurname: first.EmployeePaternalSurname,
			Role:            first.EmployeeRole,
		},
		Services: []ReportLine{},
	}

	total := decimal.Zero
	if first.ServiceID != nil {
		for _, row := range rows {
			if row.ServiceID == nil {
				continue
			}
			price := decimal.Zero
			if row.ServicePrice.Valid {
				price = row.ServicePrice.Decimal
			}
			line := ReportLine{
				ID:          *row.ServiceID,
				Description: row.ServiceDescription,
				Price:       price.Round(2).InexactFloat64(),
			}
			if row.ServiceName != nil {
				line.Name = *row.ServiceName
			}
			rep.Services = append(rep.Services, line)
			total = total.Add(price)
		}
	}

	rep.Total = total.Round(2).InexactFloat64()
	return rep
}
