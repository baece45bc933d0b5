package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/camposoft/ganaderia-api/internal/domain/entity"
)

// SemovientePatch campos opcionales para la actualización parcial de un
// semoviente (lista blanca; el estado y la finca NUNCA se tocan por aquí,
// solo vía transiciones o cambio manual de estado).
type SemovientePatch struct {
	NroMarca        *string
	NroRegistro     *string
	Nombre          *string
	FechaNacimiento *time.Time
	Sexo            *string
	IDRaza          *int64
	IDEspecie       *int64
	IDMadre         *int64
	IDPadre         *int64
	PesoActual      *decimal.Decimal
	FechaPeso       *time.Time
	FechaIngreso    *time.Time
	NroChip         *string
	NroSanitario    *string
}

// EstaVacio indica que no hay nada que actualizar.
func (p SemovientePatch) EstaVacio() bool {
	return p.NroMarca == nil && p.NroRegistro == nil && p.Nombre == nil &&
		p.FechaNacimiento == nil && p.Sexo == nil && p.IDRaza == nil &&
		p.IDEspecie == nil && p.IDMadre == nil && p.IDPadre == nil &&
		p.PesoActual == nil && p.FechaPeso == nil && p.FechaIngreso == nil &&
		p.NroChip == nil && p.NroSanitario == nil
}

// CambioEstado parámetros del cambio manual de estado (sin movimiento en el libro).
type CambioEstado struct {
	Estado        string
	Fecha         *time.Time
	Motivo        *string
	Observaciones *string
}

// Baja campos de decommission que acompañan una transición de salida.
type Baja struct {
	Fecha         time.Time
	Motivo        string
	Observaciones *string
}

// SemovienteRepository define el puerto de persistencia para semovientes.
type SemovienteRepository interface {
	Create(ctx context.Context, s *entity.Semoviente) error
	GetByID(ctx context.Context, id int64) (*entity.Semoviente, error)
	// GetParaTransicion carga la fila con SELECT ... FOR UPDATE; solo tiene
	// sentido dentro de una transacción (serializa transiciones concurrentes
	// sobre el mismo animal).
	GetParaTransicion(ctx context.Context, id int64) (*entity.Semoviente, error)
	ListByFinca(ctx context.Context, idFinca int64, incluirInactivos bool) ([]*entity.Semoviente, error)
	ActualizarParcial(ctx context.Context, id int64, patch SemovientePatch) (*entity.Semoviente, error)
	// CambiarEstado aplica el override administrativo: Activo limpia los campos
	// de baja; cualquier otro estado los fija con COALESCE sobre los previos.
	CambiarEstado(ctx context.Context, id int64, cambio CambioEstado) (*entity.Semoviente, error)
	// AplicarTransicion muta estado, finca (si nuevaFinca != nil) y campos de
	// baja (si baja != nil) en una sola sentencia.
	AplicarTransicion(ctx context.Context, id int64, estado string, nuevaFinca *int64, baja *Baja) error
	// AnularPadres pone a NULL id_madre/id_padre en la descendencia del animal.
	AnularPadres(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
