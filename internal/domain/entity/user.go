package entity

import "time"

// Roles de la aplicación. Un colaborador queda acotado a su tienda; el
// admin opera sobre todas.
const (
	RoleAdmin       = "admin"
	RoleColaborador = "colaborador"
)

// User representa un usuario de la aplicación. StoreID vacío significa
// acceso a todas las tiendas (admin).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	StoreID      string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
