package postgres

import (
	"context"
	"database/sql"

	"veterinaria-api/internal/domain/clients"
)

type ClientsRepo struct {
	db *sql.DB
}

func NewClientsRepo(db *sql.DB) *ClientsRepo {
	return &ClientsRepo{db: db}
}

const clientsSelect = `
	SELECT
		cliente_id, primer_nombre, apellido_paterno, apellido_materno,
		dni, telefono, direccion, correo,
		created_at, updated_at
	FROM clientes`

func scanClient(sc interface{ Scan(...any) error }) (clients.Client, error) {
	var c clients.Client
	err := sc.Scan(
		&c.ID,
		&c.FirstName,
		&c.PaternalSurname,
		&c.MaternalSurname,
		&c.DNI,
		&c.Phone,
		&c.Address,
		&c.Email,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r *ClientsRepo) List(ctx context.Context, search string) ([]clients.Client, error) {
	q, args := listQuery(clientsSelect,
		"LOWER(primer_nombre), LOWER(apellido_paterno), cliente_id", search,
		"primer_nombre", "apellido_paterno", "apellido_materno", "dni", "telefono", "correo")

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clients.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ClientsRepo) GetByID(ctx context.Context, id int64) (clients.Client, error) {
	c, err := scanClient(r.db.QueryRowContext(ctx, clientsSelect+` WHERE cliente_id = $1`, id))
	if err != nil {
		return clients.Client{}, mapNoRows(err)
	}
	return c, nil
}

func (r *ClientsRepo) Create(ctx context.Context, c clients.Client) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO clientes (
			primer_nombre, apellido_paterno, apellido_materno,
			dni, telefono, direccion, correo,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING cliente_id
	`,
		c.FirstName,
		c.PaternalSurname,
		c.MaternalSurname,
		c.DNI,
		c.Phone,
		c.Address,
		c.Email,
		c.CreatedAt,
		c.UpdatedAt,
	).Scan(&id)
	return id, mapWriteErr(err)
}

// Update reemplaza los campos editables (PUT completo).
func (r *ClientsRepo) Update(ctx context.Context, c clients.Client) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clientes
		SET
			primer_nombre = $2,
			apellido_paterno = $3,
			apellido_materno = $4,
			dni = $5,
			telefono = $6,
			direccion = $7,
			correo = $8,
			updated_at = $9
		WHERE cliente_id = $1
	`,
		c.ID,
		c.FirstName,
		c.PaternalSurname,
		c.MaternalSurname,
		c.DNI,
		c.Phone,
		c.Address,
		c.Email,
		c.UpdatedAt,
	)
	if err != nil {
		return mapWriteErr(err)
	}
	return requireAffected(res)
}

func (r *ClientsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clientes WHERE cliente_id = $1`, id)
	if err != nil {
		return mapDeleteErr(err)
	}
	return requireAffected(res)
}
