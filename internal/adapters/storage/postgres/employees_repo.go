package postgres

import (
	"context"
	"database/sql"

	"veterinaria-api/internal/domain/employees"
)

type EmployeesRepo struct {
	db *sql.DB
}

func NewEmployeesRepo(db *sql.DB) *EmployeesRepo {
	return &EmployeesRepo{db: db}
}

const employeesSelect = `
	SELECT
		e.empleado_id, e.primer_nombre, e.apellido_paterno, e.apellido_materno,
		e.dni, e.correo, e.telefono, e.rol_id, r.nombre_rol
	FROM empleados e
	JOIN roles r ON r.rol_id = e.rol_id`

func scanEmployee(sc interface{ Scan(...any) error }) (employees.Employee, error) {
	var e employees.Employee
	err := sc.Scan(
		&e.ID,
		&e.FirstName,
		&e.PaternalSurname,
		&e.MaternalSurname,
		&e.DNI,
		&e.Email,
		&e.Phone,
		&e.RoleID,
		&e.RoleName,
	)
	return e, err
}

func (r *EmployeesRepo) List(ctx context.Context, search string) ([]employees.Employee, error) {
	q, args := listQuery(employeesSelect, "LOWER(e.primer_nombre), e.empleado_id", search,
		"e.primer_nombre", "e.apellido_paterno", "e.apellido_materno",
		"e.dni", "e.telefono", "e.correo", "r.nombre_rol")

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]employees.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EmployeesRepo) GetByID(ctx context.Context, id int64) (employees.Employee, error) {
	e, err := scanEmployee(r.db.QueryRowContext(ctx, employeesSelect+` WHERE e.empleado_id = $1`, id))
	if err != nil {
		return employees.Employee{}, mapNoRows(err)
	}
	return e, nil
}

func (r *EmployeesRepo) Create(ctx context.Context, e employees.Employee) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO empleados (
			primer_nombre, apellido_paterno, apellido_materno,
			dni, correo, telefono, rol_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING empleado_id
	`,
		e.FirstName,
		e.PaternalSurname,
		e.MaternalSurname,
		e.DNI,
		e.Email,
		e.Phone,
		e.RoleID,
	).Scan(&id)
	return id, mapWriteErr(err)
}

func (r *EmployeesRepo) Update(ctx context.Context, e employees.Employee) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE empleados
		SET
			primer_nombre = $2,
			apellido_paterno = $3,
			apellido_materno = $4,
			dni = $5,
			correo = $6,
			telefono = $7,
			rol_id = $8
		WHERE empleado_id = $1
	`,
		e.ID,
		e.FirstName,
		e.PaternalSurname,
		e.MaternalSurname,
		e.DNI,
		e.Email,
		e.Phone,
		e.RoleID,
	)
	if err != nil {
		return mapWriteErr(err)
	}
	return requireAffected(res)
}

func (r *EmployeesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM empleados WHERE empleado_id = $1`, id)
	if err != nil {
		return mapDeleteErr(err)
	}
	return requireAffected(res)
}
