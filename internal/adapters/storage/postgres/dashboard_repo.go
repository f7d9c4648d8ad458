package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"veterinaria-api/internal/domain/dashboard"
)

type DashboardRepo struct {
	db *sql.DB
}

func NewDashboardRepo(db *sql.DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

func (r *DashboardRepo) CountAppointments(ctx context.Context, f dashboard.AppointmentFilter) (int64, error) {
	var (
		conds []string
		args  []any
	)
	if len(f.Statuses) > 0 {
		args = append(args, f.Statuses)
		conds = append(conds, fmt.Sprintf("estado = ANY($%d)", len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		conds = append(conds, fmt.Sprintf("fecha >= $%d", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		conds = append(conds, fmt.Sprintf("fecha < $%d", len(args)))
	}

	q := `SELECT COUNT(*) FROM citas`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}

	var n int64
	err := r.db.QueryRowContext(ctx, q, args...).Scan(&n)
	return n, err
}

func (r *DashboardRepo) CountClients(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clientes`).Scan(&n)
	return n, err
}

func (r *DashboardRepo) CountPets(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mascotas`).Scan(&n)
	return n, err
}

// Upcoming agrupa por cita; los nombres de servicio llegan como text[] distinto y ordenado.
func (r *DashboardRepo) Upcoming(ctx context.Context, from time.Time, statuses []string, limit int) ([]dashboard.UpcomingRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			ci.cita_id, ci.fecha, m.nombre, cl.primer_nombre, cl.apellido_paterno,
			COALESCE(
				array_agg(DISTINCT s.nombre_servicio ORDER BY s.nombre_servicio)
					FILTER (WHERE s.nombre_servicio IS NOT NULL),
				'{}'
			) AS servicios
		FROM citas ci
		JOIN mascotas m ON m.mascota_id = ci.mascota_id
		JOIN clientes cl ON cl.cliente_id = m.cliente_id
		LEFT JOIN cita_servicios cs ON cs.cita_id = ci.cita_id
		LEFT JOIN servicios s ON s.servicio_id = cs.servicio_id
		WHERE ci.fecha >= $1 AND ci.estado = ANY($2)
		GROUP BY ci.cita_id, ci.fecha, m.nombre, cl.primer_nombre, cl.apellido_paterno
		ORDER BY ci.fecha ASC, ci.cita_id ASC
		LIMIT $3
	`, from, statuses, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// pgtype.Map no es seguro entre goroutines: uno por consulta.
	types := pgtype.NewMap()

	out := make([]dashboard.UpcomingRow, 0)
	for rows.Next() {
		var row dashboard.UpcomingRow
		if err := rows.Scan(
			&row.AppointmentID,
			&row.Date,
			&row.PetName,
			&row.ClientFirstName,
			&row.ClientPaternalSurname,
			types.SQLScanner(&row.ServiceNames),
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

const appointmentActivitySelect = `
	SELECT ci.cita_id, ci.fecha, m.nombre, cl.primer_nombre, cl.apellido_paterno, ci.created_at, ci.updated_at
	FROM citas ci
	JOIN mascotas m ON m.mascota_id = ci.mascota_id
	JOIN clientes cl ON cl.cliente_id = m.cliente_id`

func scanAppointmentActivity(sc interface{ Scan(...any) error }) (dashboard.AppointmentActivity, error) {
	var a dashboard.AppointmentActivity
	err := sc.Scan(
		&a.AppointmentID,
		&a.Date,
		&a.PetName,
		&a.ClientFirstName,
		&a.ClientPaternalSurname,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *DashboardRepo) RecentAppointments(ctx context.Context, limit int) ([]dashboard.AppointmentActivity, error) {
	rows, err := r.db.QueryContext(ctx,
		appointmentActivitySelect+` ORDER BY ci.created_at DESC, ci.cita_id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dashboard.AppointmentActivity, 0, limit)
	for rows.Next() {
		a, err := scanAppointmentActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *DashboardRepo) LatestClient(ctx context.Context) (dashboard.ClientActivity, bool, error) {
	var c dashboard.ClientActivity
	err := r.db.QueryRowContext(ctx, `
		SELECT cliente_id, primer_nombre, apellido_paterno, created_at
		FROM clientes
		ORDER BY created_at DESC, cliente_id DESC
		LIMIT 1
	`).Scan(&c.ClientID, &c.FirstName, &c.PaternalSurname, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return dashboard.ClientActivity{}, false, nil
	}
	if err != nil {
		return dashboard.ClientActivity{}, false, err
	}
	return c, true, nil
}

func (r *DashboardRepo) LatestWithStatus(ctx context.Context, status string) (dashboard.AppointmentActivity, bool, error) {
	a, err := scanAppointmentActivity(r.db.QueryRowContext(ctx,
		appointmentActivitySelect+` WHERE ci.estado = $1 ORDER BY ci.updated_at DESC, ci.cita_id DESC LIMIT 1`,
		status))
	if errors.Is(err, sql.ErrNoRows) {
		return dashboard.AppointmentActivity{}, false, nil
	}
	if err != nil {
		return dashboard.AppointmentActivity{}, false, err
	}
	return a, true, nil
}
