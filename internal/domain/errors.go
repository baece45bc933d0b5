package domain

import "errors"

// Errores de dominio (sin dependencias externas). El mapeo a códigos HTTP
// vive en la capa de interfaces.
var (
	ErrNoEncontrado          = errors.New("recurso no encontrado")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrNoAutorizado          = errors.New("token requerido o inválido")
	ErrProhibido             = errors.New("acceso denegado")
	ErrDuplicado             = errors.New("recurso duplicado")
	ErrConflicto             = errors.New("conflicto con el estado actual")
	ErrReferenciaInvalida    = errors.New("referencia a entidad inexistente")
	ErrEstadoInvalido        = errors.New("transición de estado no permitida")
	ErrEntradaInvalida       = errors.New("entrada inválida")
)

// ValidacionError entrada inválida con mensaje propio y detalle opcional por campo.
// errors.Is(err, ErrEntradaInvalida) es verdadero para cualquier ValidacionError.
type ValidacionError struct {
	Mensaje string
	Issues  []string
}

func (e *ValidacionError) Error() string {
	if e.Mensaje != "" {
		return e.Mensaje
	}
	return ErrEntradaInvalida.Error()
}

func (e *ValidacionError) Is(target error) bool {
	return target == ErrEntradaInvalida
}

// Validacion construye un ValidacionError con mensaje y detalle opcional.
func Validacion(mensaje string, issues ...string) error {
	return &ValidacionError{Mensaje: mensaje, Issues: issues}
}
