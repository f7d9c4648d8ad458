package postgres

import (
	"context"
	"database/sql"

	"veterinaria-api/internal/domain/species"
)

type SpeciesRepo struct {
	db *sql.DB
}

func NewSpeciesRepo(db *sql.DB) *SpeciesRepo {
	return &SpeciesRepo{db: db}
}

const speciesSelect = `SELECT especie_id, nombre_especie FROM especies`

func (r *SpeciesRepo) List(ctx context.Context, search string) ([]species.Species, error) {
	q, args := listQuery(speciesSelect, "LOWER(nombre_especie), especie_id", search, "nombre_especie")

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]species.Species, 0)
	for rows.Next() {
		var s species.Species
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SpeciesRepo) GetByID(ctx context.Context, id int64) (species.Species, error) {
	var s species.Species
	err := r.db.QueryRowContext(ctx, speciesSelect+` WHERE especie_id = $1`, id).Scan(&s.ID, &s.Name)
	if err != nil {
		return species.Species{}, mapNoRows(err)
	}
	return s, nil
}

func (r *SpeciesRepo) Create(ctx context.Context, s species.Species) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO especies (nombre_especie) VALUES ($1) RETURNING especie_id`,
		s.Name,
	).Scan(&id)
	return id, mapWriteErr(err)
}

func (r *SpeciesRepo) Update(ctx context.Context, s species.Species) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE especies SET nombre_especie = $2 WHERE especie_id = $1`,
		s.ID, s.Name,
	)
	if err != nil {
		return mapWriteErr(err)
	}
	return requireAffected(res)
}

func (r *SpeciesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM especies WHERE especie_id = $1`, id)
	if err != nil {
		return mapDeleteErr(err)
	}
	return requireAffected(res)
}
