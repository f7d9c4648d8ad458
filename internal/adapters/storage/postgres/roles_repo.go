package postgres

import (
	"context"
	"database/sql"

	"veterinaria-api/internal/domain/roles"
)

type RolesRepo struct {
	db *sql.DB
}

func NewRolesRepo(db *sql.DB) *RolesRepo {
	return &RolesRepo{db: db}
}

const rolesSelect = `SELECT rol_id, nombre_rol FROM roles`

func (r *RolesRepo) List(ctx context.Context, search string) ([]roles.Role, error) {
	q, args := listQuery(rolesSelect, "LOWER(nombre_rol), rol_id", search, "nombre_rol")

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]roles.Role, 0)
	for rows.Next() {
		var role roles.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	return out, rows.Err()
}

func (r *RolesRepo) GetByID(ctx context.Context, id int64) (roles.Role, error) {
	var role roles.Role
	err := r.db.QueryRowContext(ctx, rolesSelect+` WHERE rol_id = $1`, id).Scan(&role.ID, &role.Name)
	if err != nil {
		return roles.Role{}, mapNoRows(err)
	}
	return role, nil
}

func (r *RolesRepo) Create(ctx context.Context, role roles.Role) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO roles (nombre_rol) VALUES ($1) RETURNING rol_id`,
		role.Name,
	).Scan(&id)
	return id, mapWriteErr(err)
}

func (r *RolesRepo) Update(ctx context.Context, role roles.Role) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE roles SET nombre_rol = $2 WHERE rol_id = $1`,
		role.ID, role.Name,
	)
	if err != nil {
		return mapWriteErr(err)
	}
	return requireAffected(res)
}

func (r *RolesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roles WHERE rol_id = $1`, id)
	if err != nil {
		return mapDeleteErr(err)
	}
	return requireAffected(res)
}
