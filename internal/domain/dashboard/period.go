package dashboard

import "time"

// DayRange devuelve [medianoche de hoy, medianoche de mañana) en la zona de now.
func DayRange(now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// WeekRange devuelve [lunes 00:00, lunes siguiente 00:00). La semana empieza en lunes.
func WeekRange(now time.Time) (time.Time, time.Time) {
	offset := int(now.Weekday()) - 1
	if offset < 0 {
		offset = 6 // domingo
	}
	y, m, d := now.Date()
	start := time.Date(y, m, d-offset, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 7)
}
