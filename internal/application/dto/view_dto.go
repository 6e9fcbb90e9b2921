package dto

import "time"

// ViewStateResponse estado de la pantalla de productos tal como se renderiza.
type ViewStateResponse struct {
	Load      string          `json:"load"`  // idle | loading | error
	Modal     string          `json:"modal"` // closed | create | edit
	EditingID string          `json:"editing_id,omitempty"`
	Rows      []RowResponse   `json:"rows"`
	Toasts    []ToastResponse `json:"toasts"`
}

// RowResponse una fila de la tabla; Placeholder indica fila esqueleto.
type RowResponse struct {
	Placeholder bool   `json:"placeholder"`
	ID          string `json:"id,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Name        string `json:"name,omitempty"`
	Price       string `json:"price,omitempty"`
	Stock       string `json:"stock,omitempty"`
}

// ToastResponse notificación visible.
type ToastResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
