package postgres

import (
	"context"
	"database/sql"

	"veterinaria-api/internal/domain/subcategories"
)

type SubcategoriesRepo struct {
	db *sql.DB
}

func NewSubcategoriesRepo(db *sql.DB) *SubcategoriesRepo {
	return &SubcategoriesRepo{db: db}
}

const subcategoriesSelect = `
	SELECT s.subcategoria_id, s.categoria_producto_id, s.nombre, s.descripcion, c.nombre_categoria
	FROM subcategorias s
	JOIN categorias_productos c ON c.categoria_producto_id = s.categoria_producto_id`

func scanSubcategory(sc interface{ Scan(...any) error }) (subcategories.Subcategory, error) {
	var (
		s    subcategories.Subcategory
		desc sql.NullString
	)
	if err := sc.Scan(&s.ID, &s.CategoryID, &s.Name, &desc, &s.CategoryName); err != nil {
		return subcategories.Subcategory{}, err
	}
	s.Description = stringPtr(desc)
	return s, nil
}

func (r *SubcategoriesRepo) List(ctx context.Context, search string) ([]subcategories.Subcategory, error) {
	q, args := listQuery(subcategoriesSelect, "LOWER(s.nombre), s.subcategoria_id", search,
		"s.nombre", "c.nombre_categoria")

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]subcategories.Subcategory, 0)
	for rows.Next() {
		s, err := scanSubcategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SubcategoriesRepo) GetByID(ctx context.Context, id int64) (subcategories.Subcategory, error) {
	s, err := scanSubcategory(r.db.QueryRowContext(ctx, subcategoriesSelect+` WHERE s.subcategoria_id = $1`, id))
	if err != nil {
		return subcategories.Subcategory{}, mapNoRows(err)
	}
	return s, nil
}

func (r *SubcategoriesRepo) Create(ctx context.Context, s subcategories.Subcategory) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO subcategorias (categoria_producto_id, nombre, descripcion)
		VALUES ($1, $2, $3)
		RETURNING subcategoria_id
	`, s.CategoryID, s.Name, nullString(s.Description)).Scan(&id)
	return id, mapWriteErr(err)
}

func (r *SubcategoriesRepo) Update(ctx context.Context, s subcategories.Subcategory) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE subcategorias
		SET categoria_producto_id = $2, nombre = $3, descripcion = $4
		WHERE subcategoria_id = $1
	`, s.ID, s.CategoryID, s.Name, nullString(s.Description))
	if err != nil {
		return mapWriteErr(err)
	}
	return requireAffected(res)
}

func (r *SubcategoriesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subcategorias WHERE subcategoria_id = $1`, id)
	if err != nil {
		return mapDeleteErr(err)
	}
	return requireAffected(res)
}
