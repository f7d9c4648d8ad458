package postgres

import (
	"context"
	"database/sql"

	"veterinaria-api/internal/domain/clinicservices"
)

type ClinicServicesRepo struct {
	db *sql.DB
}

func NewClinicServicesRepo(db *sql.DB) *ClinicServicesRepo {
	return &ClinicServicesRepo{db: db}
}

// Subcategoría y categoría por LEFT JOIN: un servicio puede no tener subcategoría.
const clinicServicesSelect = `
	SELECT
		s.servicio_id, s.nombre_servicio, s.descripcion, s.precio,
		s.subcategoria_id, sc.nombre, sc.categoria_producto_id, c.nombre_categoria
	FROM servicios s
	LEFT JOIN subcategorias sc ON sc.subcategoria_id = s.subcategoria_id
	LEFT JOIN categorias_productos c ON c.categoria_producto_id = sc.categoria_producto_id`

func scanClinicService(sc interface{ Scan(...any) error }) (clinicservices.ClinicService, error) {
	var (
		s       clinicservices.ClinicService
		desc    sql.NullString
		subID   sql.NullInt64
		subName sql.NullString
		catID   sql.NullInt64
		catName sql.NullString
	)
	if err := sc.Scan(&s.ID, &s.Name, &desc, &s.Price, &subID, &subName, &catID, &catName); err != nil {
		return clinicservices.ClinicService{}, err
	}
	s.Description = stringPtr(desc)
	s.SubcategoryID = int64Ptr(subID)
	s.SubcategoryName = stringPtr(subName)
	s.CategoryID = int64Ptr(catID)
	s.CategoryName = stringPtr(catName)
	return s, nil
}

func (r *ClinicServicesRepo) List(ctx context.Context, search string) ([]clinicservices.ClinicService, error) {
	q, args := listQuery(clinicServicesSelect, "LOWER(s.nombre_servicio), s.servicio_id", search,
		"s.nombre_servicio", "s.descripcion", "sc.nombre", "c.nombre_categoria")

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clinicservices.ClinicService, 0)
	for rows.Next() {
		s, err := scanClinicService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ClinicServicesRepo) GetByID(ctx context.Context, id int64) (clinicservices.ClinicService, error) {
	s, err := scanClinicService(r.db.QueryRowContext(ctx, clinicServicesSelect+` WHERE s.servicio_id = $1`, id))
	if err != nil {
		return clinicservices.ClinicService{}, mapNoRows(err)
	}
	return s, nil
}

func (r *ClinicServicesRepo) Create(ctx context.Context, s clinicservices.ClinicService) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO servicios (nombre_servicio, descripcion, precio, subcategoria_id)
		VALUES ($1,$2,$3,$4)
		RETURNING servicio_id
	`,
		s.Name,
		nullString(s.Description),
		s.Price,
		nullInt64(s.SubcategoryID),
	).Scan(&id)
	return id, mapWriteErr(err)
}

func (r *ClinicServicesRepo) Update(ctx context.Context, s clinicservices.ClinicService) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE servicios
		SET
			nombre_servicio = $2,
			descripcion = $3,
			precio = $4,
			subcategoria_id = $5
		WHERE servicio_id = $1
	`,
		s.ID,
		s.Name,
		nullString(s.Description),
		s.Price,
		nullInt64(s.SubcategoryID),
	)
	if err != nil {
		return mapWriteErr(err)
	}
	return requireAffected(res)
}

func (r *ClinicServicesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM servicios WHERE servicio_id = $1`, id)
	if err != nil {
		return mapDeleteErr(err)
	}
	return requireAffected(res)
}
