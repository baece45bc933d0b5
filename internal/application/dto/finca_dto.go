package dto

import "github.com/camposoft/ganaderia-api/internal/domain/entity"

// FincaResponse representación de una finca.
type FincaResponse struct {
	IDFinca         int64   `json:"id_finca"`
	NombreFinca     string  `json:"nombre_finca"`
	Ubicacion       *string `json:"ubicacion"`
	NombreAdmin     *string `json:"nombre_admin"`
	TelefonoAdmin   *string `json:"telefono_admin"`
	AdministradorID *int64  `json:"administrador_id"`
}

// FincaDesdeEntidad mapea la entidad a la respuesta.
func FincaDesdeEntidad(f *entity.Finca) FincaResponse {
	return FincaResponse{
		IDFinca:         f.ID,
		NombreFinca:     f.NombreFinca,
		Ubicacion:       f.Ubicacion,
		NombreAdmin:     f.NombreAdmin,
		TelefonoAdmin:   f.TelefonoAdmin,
		AdministradorID: f.AdministradorID,
	}
}

// CrearFincaRequest POST /api/fincas.
type CrearFincaRequest struct {
	NombreFinca     string  `json:"nombre_finca"`
	Ubicacion       *string `json:"ubicacion"`
	NombreAdmin     *string `json:"nombre_admin"`
	TelefonoAdmin   *string `json:"telefono_admin"`
	AdministradorID *int64  `json:"administrador_id"`
}

// ActualizarFincaRequest PATCH /api/fincas/:id (al menos un campo).
type ActualizarFincaRequest struct {
	NombreFinca   *string `json:"nombre_finca"`
	Ubicacion     *string `json:"ubicacion"`
	NombreAdmin   *string `json:"nombre_admin"`
	TelefonoAdmin *string `json:"telefono_admin"`
}
