package postgres

import (
	"context"
	"database/sql"

	"veterinaria-api/internal/domain/categories"
)

type CategoriesRepo struct {
	db *sql.DB
}

func NewCategoriesRepo(db *sql.DB) *CategoriesRepo {
	return &CategoriesRepo{db: db}
}

const categoriesSelect = `SELECT categoria_producto_id, nombre_categoria FROM categorias_productos`

func (r *CategoriesRepo) List(ctx context.Context, search string) ([]categories.Category, error) {
	q, args := listQuery(categoriesSelect, "LOWER(nombre_categoria), categoria_producto_id", search, "nombre_categoria")

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]categories.Category, 0)
	for rows.Next() {
		var c categories.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoriesRepo) GetByID(ctx context.Context, id int64) (categories.Category, error) {
	var c categories.Category
	err := r.db.QueryRowContext(ctx, categoriesSelect+` WHERE categoria_producto_id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		return categories.Category{}, mapNoRows(err)
	}
	return c, nil
}

func (r *CategoriesRepo) Create(ctx context.Context, c categories.Category) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categorias_productos (nombre_categoria) VALUES ($1) RETURNING categoria_producto_id`,
		c.Name,
	).Scan(&id)
	return id, mapWriteErr(err)
}

func (r *CategoriesRepo) Update(ctx context.Context, c categories.Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categorias_productos SET nombre_categoria = $2 WHERE categoria_producto_id = $1`,
		c.ID, c.Name,
	)
	if err != nil {
		return mapWriteErr(err)
	}
	return requireAffected(res)
}

func (r *CategoriesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categorias_productos WHERE categoria_producto_id = $1`, id)
	if err != nil {
		return mapDeleteErr(err)
	}
	return requireAffected(res)
}
