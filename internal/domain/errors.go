package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInvalidTarget     = errors.New("la tienda destino es la misma de origen")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrUnauthorized      = errors.New("no autorizado")
)

// InsufficientStockError lleva la cantidad disponible para que el caller
// decida si reintentar con una cantidad menor. Unwrap lo hace compatible
// con errors.Is(err, ErrInsufficientStock).
type InsufficientStockError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %s, solicitado %s", e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// NewInsufficientStock construye el error con las cantidades involucradas.
func NewInsufficientStock(available, requested decimal.Decimal) error {
	return &InsufficientStockError{Available: available, Requested: requested}
}
