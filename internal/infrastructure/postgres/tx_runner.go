package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/camposoft/ganaderia-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// EnTransaccion inicia una transacción, ejecuta fn con los repositorios atados
// a la tx y hace Commit o Rollback según el resultado.
func (r *TxRunner) EnTransaccion(ctx context.Context, fn func(repos repository.Repositorios) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := repository.Repositorios{
		Usuarios:    NewUsuarioRepository(tx),
		Fincas:      NewFincaRepository(tx),
		Miembros:    NewMiembroRepository(tx),
		Semovientes: NewSemovienteRepository(tx),
		Movimientos: NewMovimientoRepository(tx),
		Registros:   NewRegistroMedicoRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
