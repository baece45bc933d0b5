package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un semoviente. Activo es el único estado
// inicial; los demás se alcanzan vía movimientos o cambio manual de estado.
const (
	EstadoActivo    = "Activo"
	EstadoTraslado  = "Traslado"
	EstadoVendido   = "Vendido"
	EstadoFallecido = "Fallecido"
	EstadoInactivo  = "Inactivo"
	EstadoRobado    = "Robado"
	EstadoPerdido   = "Perdido"
)

// Sexo del semoviente.
const (
	SexoMacho  = "Macho"
	SexoHembra = "Hembra"
)

// Tipo de ingreso al hato.
const (
	IngresoNacimiento = "Nacimiento"
	IngresoCompra     = "Compra"
)

// Semoviente es una cabeza de ganado registrada en una finca.
// IDMadre/IDPadre son referencias débiles a otros semovientes: al eliminar un
// animal se anulan en la descendencia, nunca se elimina en cascada.
type Semoviente struct {
	ID              int64
	NroMarca        string  // único
	NroRegistro     *string // único cuando no es nil
	Nombre          string
	FechaNacimiento time.Time
	Sexo            string
	IDRaza          int64
	IDEspecie       int64
	IDMadre         *int64
	IDPadre         *int64
	IDFinca         int64
	Estado          string
	TipoIngreso     string
	FechaIngreso    time.Time
	ValorCompra     *decimal.Decimal // requerido > 0 si TipoIngreso=Compra; nil si Nacimiento
	PesoActual      *decimal.Decimal
	FechaPeso       *time.Time
	NroChip         *string
	NroSanitario    *string

	// Campos de baja; solo con sentido cuando Estado != Activo.
	FechaSalida       *time.Time
	FechaBaja         *time.Time
	MotivoBaja        *string
	ObservacionesBaja *string
}

// EsEstadoValido valida un estado del ciclo de vida.
func EsEstadoValido(estado string) bool {
	switch estado {
	case EstadoActivo, EstadoTraslado, EstadoVendido, EstadoFallecido,
		EstadoInactivo, EstadoRobado, EstadoPerdido:
		return true
	}
	return false
}

// EsSexoValido valida el sexo.
func EsSexoValido(sexo string) bool {
	return sexo == SexoMacho || sexo == SexoHembra
}
