package dto

import "github.com/shopspring/decimal"

// SaleItemInput línea del checkout.
type SaleItemInput struct {
	ProductID string          `json:"product_id" validate:"required,uuid4"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	StoreID       string          `json:"store_id" validate:"required,uuid4"`
	CustomerName  string          `json:"customer_name" validate:"max=120"`
	PaymentMethod string          `json:"payment_method" validate:"required,max=40"`
	CouponCode    string          `json:"coupon_code" validate:"max=40"`
	Items         []SaleItemInput `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse línea de venta con el reparto de descuento aplicado.
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Gross     decimal.Decimal `json:"gross"`
	Discount  decimal.Decimal `json:"discount"`
	Net       decimal.Decimal `json:"net"`
}

// SaleResponse respuesta del checkout y de las consultas de venta.
type SaleResponse struct {
	ID            string             `json:"id"`
	StoreID       string             `json:"store_id"`
	Date          string             `json:"date"`
	Total         decimal.Decimal    `json:"total"`
	Discount      decimal.Decimal    `json:"discount"`
	CouponCode    string             `json:"coupon_code,omitempty"`
	PaymentMethod string             `json:"payment_method"`
	Status        string             `json:"status"`
	CustomerName  string             `json:"customer_name,omitempty"`
	Items         []SaleItemResponse `json:"items"`
}
