// Package docday define el cálculo del "día efectivo" de un registro de
// documentación. El día se calcula siempre en la zona horaria de la fecha
// que dio el caller; solo en creación pura sin fecha se usa la hora del
// servidor. Depender silenciosamente de la zona del servidor produce
// errores de un día de desfase.
package docday

import (
	"regexp"
	"time"
)

// Formatos de fecha aceptados del caller.
const (
	dateOnlyFormat = "2006-01-02"
	eventTimeRe    = `^([01]\d|2[0-3]):[0-5]\d$`
)

var eventTimePattern = regexp.MustCompile(eventTimeRe)

// Effective devuelve la fecha efectiva de un registro: la fecha del caller
// si fue dada, si no el momento actual del servidor.
func Effective(callerDate *time.Time, now time.Time) time.Time {
	if callerDate != nil {
		return *callerDate
	}
	return now
}

// Day trunca un instante a su día calendario, en la zona horaria del propio
// instante (no en UTC ni en la del servidor).
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Window devuelve los límites [from, to) del día calendario al que pertenece t.
func Window(t time.Time) (from, to time.Time) {
	from = Day(t)
	return from, from.AddDate(0, 0, 1)
}

// EndOfDay devuelve el último instante representable del día de t; se usa
// para extender el límite superior de un filtro de rango inclusivo.
func EndOfDay(t time.Time) time.Time {
	return Day(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// ParseDate interpreta una fecha del caller: RFC3339 con hora, o solo fecha
// (YYYY-MM-DD) interpretada en hora local del servicio.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(dateOnlyFormat, s, time.Local)
}

// ValidEventTime valida una hora de evento en formato 24h HH:MM.
func ValidEventTime(s string) bool {
	return eventTimePattern.MatchString(s)
}
