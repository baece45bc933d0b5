package dto

import (
	"strings"
	"time"

	"github.com/camposoft/ganaderia-api/internal/domain"
)

// Actor identidad de la petición extraída del token por el middleware.
// Se pasa explícito a cada caso de uso; nunca hay estado global de usuario.
type Actor struct {
	IDUsuario     int64
	NombreUsuario string
	Rol           string // rol global: SuperAdmin | Usuario
}

// EsSuperAdmin indica rol global SuperAdmin.
func (a Actor) EsSuperAdmin() bool {
	return a.Rol == "SuperAdmin"
}

// ErrorResponse cuerpo de toda respuesta de error de la API. El campo ok
// siempre es false; mensaje es apto para mostrar al usuario y detalle lleva
// el contexto técnico cuando lo hay.
type ErrorResponse struct {
	OK      bool     `json:"ok"`
	Mensaje string   `json:"mensaje"`
	Detalle string   `json:"detalle,omitempty"`
	Issues  []string `json:"issues,omitempty"`
}

const formatoFecha = "2006-01-02"

// Fecha fecha sin hora en el wire (formato YYYY-MM-DD).
type Fecha struct {
	time.Time
}

// UnmarshalJSON acepta "YYYY-MM-DD" y también timestamps RFC3339 (se trunca la hora).
func (f *Fecha) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if t, err := time.Parse(formatoFecha, s); err == nil {
		f.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return domain.Validacion("fecha inválida, se espera YYYY-MM-DD: " + s)
	}
	f.Time = t.Truncate(24 * time.Hour)
	return nil
}

// MarshalJSON emite "YYYY-MM-DD".
func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + f.Format(formatoFecha) + `"`), nil
}

// Ptr devuelve *time.Time o nil si la fecha es cero.
func (f *Fecha) Ptr() *time.Time {
	if f == nil || f.IsZero() {
		return nil
	}
	t := f.Time
	return &t
}

// FechaDe convierte *time.Time a *Fecha para respuestas.
func FechaDe(t *time.Time) *Fecha {
	if t == nil {
		return nil
	}
	return &Fecha{Time: *t}
}
