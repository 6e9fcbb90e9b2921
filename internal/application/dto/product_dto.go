package dto

import (
	"github.com/shopspring/decimal"
)

// ProductPayload cuerpo que se envía al servicio remoto en create/update.
type ProductPayload struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	ImageURL string          `json:"image_url,omitempty"`
}

// ProductResponse salida de un producto (API sandbox).
type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	ImageURL string          `json:"image_url,omitempty"`
}
