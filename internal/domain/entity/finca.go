package entity

// Finca es el tenant de nivel superior: dueña de semovientes y personal.
// AdministradorID es una denormalización: cuando no es nil debe apuntar a un
// usuario que tenga rol AdminFinca en esta finca (el registro de miembros la
// mantiene al día en cada asignación o revocación).
type Finca struct {
	ID              int64
	NombreFinca     string
	Ubicacion       *string
	NombreAdmin     *string
	TelefonoAdmin   *string
	AdministradorID *int64
}
