package postgres

import "time"

const (
	dateLayout   = "2006-01-02"
	defaultLimit = 50
	maxLimit     = 500
)

// formatDate fecha de columna DATE nullable al formato de la API ("" si es NULL).
func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// pageBounds normaliza limit/offset de un listado.
func pageBounds(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
