package dto

import "github.com/shopspring/decimal"

// AdjustStockRequest body para POST /api/inventory/:id/adjust.
type AdjustStockRequest struct {
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
	Type     string          `json:"type" validate:"required,oneof=ENTRY EXIT"`
	Details  string          `json:"details" validate:"max=500"`
}

// TransferStockRequest body para POST /api/inventory/transfer.
type TransferStockRequest struct {
	ProductID     string          `json:"product_id" validate:"required,uuid4"`
	TargetStoreID string          `json:"target_store_id" validate:"required,uuid4"`
	Quantity      decimal.Decimal `json:"quantity" validate:"required"`
	Reason        string          `json:"reason" validate:"max=500"`
}

// MovementResponse asiento del libro devuelto por las consultas de historial.
type MovementResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Date      string          `json:"date"`
	Details   string          `json:"details"`
}
