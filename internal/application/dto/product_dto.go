package dto

import "github.com/shopspring/decimal"

// BundleComponentInput componente de un bundle en el request de creación.
type BundleComponentInput struct {
	ID       string          `json:"id" validate:"required,uuid4"`
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
}

// CreateBundleRequest body para POST /api/products/bundle.
type CreateBundleRequest struct {
	Name       string                 `json:"name" validate:"required,min=2,max=120"`
	FinalPrice decimal.Decimal        `json:"final_price" validate:"required"`
	StoreID    string                 `json:"store_id" validate:"required,uuid4"`
	Components []BundleComponentInput `json:"components" validate:"required,min=1,dive"`
}

// ProductResponse representación de un producto en las respuestas.
type ProductResponse struct {
	ID            string          `json:"id"`
	StoreID       string          `json:"store_id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Price         decimal.Decimal `json:"price"`
	ProviderPrice decimal.Decimal `json:"provider_price"`
	Stock         decimal.Decimal `json:"stock"`
	IsBundle      bool            `json:"is_bundle"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
}

// BundleComponentResponse componente de un bundle en las respuestas.
type BundleComponentResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// StoreResponse representación de una tienda.
type StoreResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
