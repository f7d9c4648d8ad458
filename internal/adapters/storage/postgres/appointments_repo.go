package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"veterinaria-api/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

const appointmentsSelect = `
	SELECT
		ci.cita_id, ci.fecha, ci.estado,
		ci.mascota_id, m.nombre, cl.primer_nombre, cl.apellido_paterno, cl.apellido_materno,
		ci.empleado_id, e.primer_nombre, e.apellido_paterno, r.nombre_rol,
		ci.created_at, ci.updated_at
	FROM citas ci
	JOIN mascotas m ON m.mascota_id = ci.mascota_id
	JOIN clientes cl ON cl.cliente_id = m.cliente_id
	JOIN empleados e ON e.empleado_id = ci.empleado_id
	JOIN roles r ON r.rol_id = e.rol_id`

func scanAppointment(sc interface{ Scan(...any) error }) (appointments.Appointment, error) {
	var a appointments.Appointment
	err := sc.Scan(
		&a.ID,
		&a.Date,
		&a.Status,
		&a.PetID,
		&a.PetName,
		&a.ClientFirstName,
		&a.ClientPaternalSurname,
		&a.ClientMaternalSurname,
		&a.EmployeeID,
		&a.EmployeeFirstName,
		&a.EmployeePaternalSurname,
		&a.EmployeeRole,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *AppointmentsRepo) List(ctx context.Context, search string) ([]appointments.Appointment, error) {
	q, args := listQuery(appointmentsSelect, "ci.fecha DESC, ci.cita_id DESC", search,
		"m.nombre", "cl.primer_nombre", "cl.apellido_paterno", "cl.apellido_materno",
		"e.primer_nombre", "e.apellido_paterno", "r.nombre_rol", "ci.estado")

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	a, err := scanAppointment(r.db.QueryRowContext(ctx, appointmentsSelect+` WHERE ci.cita_id = $1`, id))
	if err != nil {
		return appointments.Appointment{}, mapNoRows(err)
	}
	return a, nil
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO citas (fecha, estado, mascota_id, empleado_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING cita_id
	`,
		a.Date,
		string(a.Status),
		a.PetID,
		a.EmployeeID,
		a.CreatedAt,
		a.UpdatedAt,
	).Scan(&id)
	return id, mapWriteErr(err)
}

// Update bloquea la fila (FOR UPDATE) mientras valida la fecha guardada y escribe.
func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment, check appointments.DateCheck) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var stored time.Time
	err = tx.QueryRowContext(ctx, `SELECT fecha FROM citas WHERE cita_id = $1 FOR UPDATE`, a.ID).Scan(&stored)
	if err != nil {
		return mapNoRows(err)
	}

	if err := check(stored); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE citas
		SET
			fecha = $2,
			estado = $3,
			mascota_id = $4,
			empleado_id = $5,
			updated_at = $6
		WHERE cita_id = $1
	`,
		a.ID,
		a.Date,
		string(a.Status),
		a.PetID,
		a.EmployeeID,
		a.UpdatedAt,
	)
	if err != nil {
		return mapWriteErr(err)
	}

	return tx.Commit()
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM citas WHERE cita_id = $1`, id)
	if err != nil {
		return mapDeleteErr(err)
	}
	return requireAffected(res)
}
