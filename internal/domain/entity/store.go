package entity

import "time"

// Store representa una tienda o sucursal. Cada tienda posee sus propias
// filas de producto y sus ventas.
type Store struct {
	ID        string
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
