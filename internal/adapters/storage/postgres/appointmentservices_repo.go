package postgres

import (
	"context"
	"database/sql"

	"veterinaria-api/internal/domain/appointmentservices"
)

type AppointmentServicesRepo struct {
	db *sql.DB
}

func NewAppointmentServicesRepo(db *sql.DB) *AppointmentServicesRepo {
	return &AppointmentServicesRepo{db: db}
}

const appointmentServicesSelect = `
	SELECT
		cs.cita_servicio_id, cs.cita_id, ci.fecha, ci.estado,
		m.nombre, cl.primer_nombre, cl.apellido_paterno, cl.apellido_materno,
		cs.servicio_id, s.nombre_servicio, s.descripcion, s.precio
	FROM cita_servicios cs
	JOIN citas ci ON ci.cita_id = cs.cita_id
	JOIN mascotas m ON m.mascota_id = ci.mascota_id
	JOIN clientes cl ON cl.cliente_id = m.cliente_id
	JOIN servicios s ON s.servicio_id = cs.servicio_id`

func scanAppointmentService(sc interface{ Scan(...any) error }) (appointmentservices.AppointmentService, error) {
	var (
		a    appointmentservices.AppointmentService
		desc sql.NullString
	)
	err := sc.Scan(
		&a.ID,
		&a.AppointmentID,
		&a.AppointmentDate,
		&a.AppointmentStatus,
		&a.PetName,
		&a.ClientFirstName,
		&a.ClientPaternalSurname,
		&a.ClientMaternalSurname,
		&a.ServiceID,
		&a.ServiceName,
		&desc,
		&a.ServicePrice,
	)
	if err != nil {
		return appointmentservices.AppointmentService{}, err
	}
	a.ServiceDescription = stringPtr(desc)
	return a, nil
}

func (r *AppointmentServicesRepo) List(ctx context.Context, search string) ([]appointmentservices.AppointmentService, error) {
	q, args := listQuery(appointmentServicesSelect,
		"ci.fecha DESC, LOWER(m.nombre), LOWER(s.nombre_servicio), cs.cita_servicio_id", search,
		"m.nombre", "cl.primer_nombre", "cl.apellido_paterno", "cl.apellido_materno",
		"s.nombre_servicio", "ci.estado")

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointmentservices.AppointmentService, 0)
	for rows.Next() {
		a, err := scanAppointmentService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentServicesRepo) GetByID(ctx context.Context, id int64) (appointmentservices.AppointmentService, error) {
	a, err := scanAppointmentService(r.db.QueryRowContext(ctx, appointmentServicesSelect+` WHERE cs.cita_servicio_id = $1`, id))
	if err != nil {
		return appointmentservices.AppointmentService{}, mapNoRows(err)
	}
	return a, nil
}

func (r *AppointmentServicesRepo) Create(ctx context.Context, a appointmentservices.AppointmentService) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO cita_servicios (cita_id, servicio_id) VALUES ($1, $2) RETURNING cita_servicio_id`,
		a.AppointmentID, a.ServiceID,
	).Scan(&id)
	return id, mapWriteErr(err)
}

func (r *AppointmentServicesRepo) Update(ctx context.Context, a appointmentservices.AppointmentService) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cita_servicios SET cita_id = $2, servicio_id = $3 WHERE cita_servicio_id = $1`,
		a.ID, a.AppointmentID, a.ServiceID,
	)
	if err != nil {
		return mapWriteErr(err)
	}
	return requireAffected(res)
}

func (r *AppointmentServicesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cita_servicios WHERE cita_servicio_id = $1`, id)
	if err != nil {
		return mapDeleteErr(err)
	}
	return requireAffected(res)
}

// ReportRows hace el join completo de la cita; servicios por LEFT JOIN.
func (r *AppointmentServicesRepo) ReportRows(ctx context.Context, appointmentID int64) ([]appointmentservices.ReportRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			ci.cita_id, ci.fecha, ci.estado,
			m.mascota_id, m.nombre, m.edad, m.sexo, e.nombre_especie, ra.nombre_raza,
			cl.cliente_id, cl.primer_nombre, cl.apellido_paterno, cl.apellido_materno,
			cl.dni, cl.telefono, cl.direccion, cl.correo,
			emp.primer_nombre, emp.apellido_paterno, rol.nombre_rol,
			s.servicio_id, s.nombre_servicio, s.descripcion, s.precio
		FROM citas ci
		JOIN mascotas m ON m.mascota_id = ci.mascota_id
		JOIN clientes cl ON cl.cliente_id = m.cliente_id
		JOIN razas ra ON ra.raza_id = m.raza_id
		JOIN especies e ON e.especie_id = ra.especie_id
		JOIN empleados emp ON emp.empleado_id = ci.empleado_id
		JOIN roles rol ON rol.rol_id = emp.rol_id
		LEFT JOIN cita_servicios cs ON cs.cita_id = ci.cita_id
		LEFT JOIN servicios s ON s.servicio_id = cs.servicio_id
		WHERE ci.cita_id = $1
		ORDER BY LOWER(s.nombre_servicio), s.servicio_id
	`, appointmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointmentservices.ReportRow, 0)
	for rows.Next() {
		var (
			row       appointmentservices.ReportRow
			serviceID sql.NullInt64
			name      sql.NullString
			desc      sql.NullString
		)
		if err := rows.Scan(
			&row.AppointmentID,
			&row.AppointmentDate,
			&row.AppointmentStatus,
			&row.PetID,
			&row.PetName,
			&row.PetAge,
			&row.PetSex,
			&row.PetSpecies,
			&row.PetBreed,
			&row.ClientID,
			&row.ClientFirstName,
			&row.ClientPaternalSurname,
			&row.ClientMaternalSurname,
			&row.ClientDNI,
			&row.ClientPhone,
			&row.ClientAddress,
			&row.ClientEmail,
			&row.EmployeeFirstName,
			&row.EmployeePaternalSurname,
			&row.EmployeeRole,
			&serviceID,
			&name,
			&desc,
			&row.ServicePrice,
		); err != nil {
			return nil, err
		}
		row.ServiceID = int64Ptr(serviceID)
		row.ServiceName = stringPtr(name)
		row.ServiceDescription = stringPtr(desc)
		out = append(out, row)
	}
	return out, rows.Err()
}
