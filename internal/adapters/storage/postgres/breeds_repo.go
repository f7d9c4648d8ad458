package postgres

import (
	"context"
	"database/sql"

	"veterinaria-api/internal/domain/breeds"
)

type BreedsRepo struct {
	db *sql.DB
}

func NewBreedsRepo(db *sql.DB) *BreedsRepo {
	return &BreedsRepo{db: db}
}

const breedsSelect = `
	SELECT r.raza_id, r.nombre_raza, r.especie_id, e.nombre_especie
	FROM razas r
	JOIN especies e ON e.especie_id = r.especie_id`

func (r *BreedsRepo) List(ctx context.Context, search string) ([]breeds.Breed, error) {
	q, args := listQuery(breedsSelect, "LOWER(r.nombre_raza), r.raza_id", search,
		"r.nombre_raza", "e.nombre_especie")

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeds.Breed, 0)
	for rows.Next() {
		var b breeds.Breed
		if err := rows.Scan(&b.ID, &b.Name, &b.SpeciesID, &b.SpeciesName); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BreedsRepo) GetByID(ctx context.Context, id int64) (breeds.Breed, error) {
	var b breeds.Breed
	err := r.db.QueryRowContext(ctx, breedsSelect+` WHERE r.raza_id = $1`, id).
		Scan(&b.ID, &b.Name, &b.SpeciesID, &b.SpeciesName)
	if err != nil {
		return breeds.Breed{}, mapNoRows(err)
	}
	return b, nil
}

func (r *BreedsRepo) Create(ctx context.Context, b breeds.Breed) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO razas (nombre_raza, especie_id) VALUES ($1, $2) RETURNING raza_id`,
		b.Name, b.SpeciesID,
	).Scan(&id)
	return id, mapWriteErr(err)
}

func (r *BreedsRepo) Update(ctx context.Context, b breeds.Breed) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE razas SET nombre_raza = $2, especie_id = $3 WHERE raza_id = $1`,
		b.ID, b.Name, b.SpeciesID,
	)
	if err != nil {
		return mapWriteErr(err)
	}
	return requireAffected(res)
}

func (r *BreedsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM razas WHERE raza_id = $1`, id)
	if err != nil {
		return mapDeleteErr(err)
	}
	return requireAffected(res)
}
