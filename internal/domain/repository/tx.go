package repository

import "context"

// Repositorios es el juego completo de repositorios ligado a una misma
// conexión o transacción.
type Repositorios struct {
	Usuarios    UsuarioRepository
	Fincas      FincaRepository
	Miembros    MiembroRepository
	Semovientes SemovienteRepository
	Movimientos MovimientoRepository
	Registros   RegistroMedicoRepository
}

// TxRunner ejecuta fn dentro de una transacción: commit si fn devuelve nil,
// rollback en caso contrario. Los repositorios que recibe fn operan sobre la
// transacción abierta.
type TxRunner interface {
	EnTransaccion(ctx context.Context, fn func(r Repositorios) error) error
}
