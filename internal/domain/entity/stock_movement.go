package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de inventario.
const (
	MovementTypeEntry = "ENTRY" // entrada: compra, ajuste positivo, traslado recibido
	MovementTypeExit  = "EXIT"  // salida: venta, ajuste negativo, traslado enviado
)

// IsValidMovementType valida el tipo de movimiento.
func IsValidMovementType(t string) bool {
	return t == MovementTypeEntry || t == MovementTypeExit
}

// StockMovement es un asiento del libro de inventario: el registro de un
// cambio de cantidad sobre un producto. Es append-only; una vez escrito no
// se actualiza ni se borra. La suma de entradas menos salidas de un producto
// es igual a su stock actual menos el inicial.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string          // ENTRY o EXIT
	Quantity  decimal.Decimal // siempre positiva; el signo lo da Type
	Date      time.Time
	Details   string // texto libre: motivo del ajuste, venta o traslado
	CreatedBy string // UserID
}
