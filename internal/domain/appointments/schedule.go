package appointments

import (
	"strings"
	"time"

	"veterinaria-api/internal/domain/apperr"
)

// Formatos aceptados para Fecha. Los que no traen zona se leen en hora local.
var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate interpreta la fecha enviada por el formulario.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.Invalid("Formato de fecha inválido.")
}

// IsDateInPast compara solo la parte de fecha (medianoche local): una cita de
// hoy a una hora ya pasada no cuenta como pasada.
func IsDateInPast(date, now time.Time) bool {
	return startOfDay(date, now.Location()).Before(startOfDay(now, now.Location()))
}

// SameSlot compara dos fechas a precisión de minuto (datetime-local no manda segundos).
func SameSlot(a, b time.Time) bool {
	return a.Truncate(time.Minute).Equal(b.Truncate(time.Minute))
}

// CheckReschedule: una fecha pasada solo se acepta si es la misma que ya estaba guardada.
// Así se puede cambiar el estado de una cita vencida sin tocar su fecha.
func CheckReschedule(proposed, stored, now time.Time) error {
	if IsDateInPast(proposed, now) && !SameSlot(proposed, stored) {
		return apperr.Invalid("No se puede cambiar una cita a una fecha pasada.")
	}
	return nil
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
