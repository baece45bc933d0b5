package entity

// Especie de ganado (Bovino, Equino, ...).
type Especie struct {
	ID            int64
	NombreEspecie string
}

// Raza pertenece a exactamente una especie.
type Raza struct {
	ID         int64
	IDEspecie  int64
	NombreRaza string
}
