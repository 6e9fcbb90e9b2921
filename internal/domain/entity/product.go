package entity

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Product representa un producto tal como lo expone el servicio remoto.
// La consola solo mantiene una copia transitoria; no valida precio ni stock.
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal // precio de venta, no negativo en datos válidos
	Stock    int
	ImageURL string // opcional
}

// Initial devuelve la primera letra del nombre (vacío si no hay nombre).
func (p Product) Initial() string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(r)
}
