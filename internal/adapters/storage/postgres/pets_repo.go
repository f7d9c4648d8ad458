package postgres

import (
	"context"
	"database/sql"

	"veterinaria-api/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petsSelect = `
	SELECT
		m.mascota_id, m.nombre, m.edad, m.sexo,
		m.cliente_id, c.primer_nombre, c.apellido_paterno, c.apellido_materno,
		m.raza_id, r.nombre_raza, r.especie_id, e.nombre_especie
	FROM mascotas m
	JOIN clientes c ON c.cliente_id = m.cliente_id
	JOIN razas r ON r.raza_id = m.raza_id
	JOIN especies e ON e.especie_id = r.especie_id`

func scanPet(sc interface{ Scan(...any) error }) (pets.Pet, error) {
	var p pets.Pet
	err := sc.Scan(
		&p.ID,
		&p.Name,
		&p.Age,
		&p.Sex,
		&p.ClientID,
		&p.ClientFirstName,
		&p.ClientPaternalSurname,
		&p.ClientMaternalSurname,
		&p.BreedID,
		&p.BreedName,
		&p.SpeciesID,
		&p.SpeciesName,
	)
	return p, err
}

func (r *PetsRepo) List(ctx context.Context, search string) ([]pets.Pet, error) {
	q, args := listQuery(petsSelect, "LOWER(m.nombre), m.mascota_id", search,
		"m.nombre", "c.primer_nombre", "c.apellido_paterno", "c.apellido_materno",
		"r.nombre_raza", "e.nombre_especie")

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	p, err := scanPet(r.db.QueryRowContext(ctx, petsSelect+` WHERE m.mascota_id = $1`, id))
	if err != nil {
		return pets.Pet{}, mapNoRows(err)
	}
	return p, nil
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO mascotas (nombre, edad, sexo, cliente_id, raza_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING mascota_id
	`,
		p.Name,
		p.Age,
		string(p.Sex),
		p.ClientID,
		p.BreedID,
	).Scan(&id)
	return id, mapWriteErr(err)
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE mascotas
		SET
			nombre = $2,
			edad = $3,
			sexo = $4,
			cliente_id = $5,
			raza_id = $6
		WHERE mascota_id = $1
	`,
		p.ID,
		p.Name,
		p.Age,
		string(p.Sex),
		p.ClientID,
		p.BreedID,
	)
	if err != nil {
		return mapWriteErr(err)
	}
	return requireAffected(res)
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mascotas WHERE mascota_id = $1`, id)
	if err != nil {
		return mapDeleteErr(err)
	}
	return requireAffected(res)
}
