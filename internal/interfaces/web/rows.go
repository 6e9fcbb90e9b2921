// Package web renderiza la pantalla de gestión de productos a partir de un
// Snapshot de la vista: tabla, filas esqueleto, modal de formulario, diálogo de
// confirmación y notificaciones.
package web

import (
	"net/url"
	"strconv"

	"github.com/jhoicas/Inventario-admin/internal/application/productview"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
	"github.com/jhoicas/Inventario-admin/pkg/money"
)

// PlaceholderImageBase imagen usada cuando el producto no tiene ImageURL;
// se completa con la inicial del nombre.
const PlaceholderImageBase = "https://placehold.co/100/EAEBF0/1D2129?text="

// DefaultSkeletonRows filas esqueleto mientras carga.
const DefaultSkeletonRows = 5

// Columns cabeceras de la tabla. Cada fila, incluida la esqueleto, tiene una celda por columna.
var Columns = []string{"Gambar", "Nama Produk", "Harga", "Stok", "Aksi"}

// Row una fila renderizada de la tabla.
type Row struct {
	Placeholder bool
	ID          string
	ImageURL    string
	Name        string
	Price       string
	Stock       string
}

// TableRows construye las filas: skeletonRows esqueletos mientras carga (sin importar
// el tamaño de la colección previa) o una fila por producto en cualquier otro estado.
func TableRows(snap productview.Snapshot, f *money.Formatter, skeletonRows int) []Row {
	if snap.Loading() {
		if skeletonRows <= 0 {
			skeletonRows = DefaultSkeletonRows
		}
		rows := make([]Row, skeletonRows)
		for i := range rows {
			rows[i] = Row{Placeholder: true}
		}
		return rows
	}

	rows := make([]Row, 0, len(snap.Products))
	for _, p := range snap.Products {
		rows = append(rows, Row{
			ID:       p.ID,
			ImageURL: ImageFor(p),
			Name:     p.Name,
			Price:    f.Format(p.Price),
			Stock:    strconv.Itoa(p.Stock),
		})
	}
	return rows
}

// ImageFor devuelve la imagen del producto o el placeholder con su inicial.
func ImageFor(p entity.Product) string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	return PlaceholderImageBase + url.QueryEscape(p.Initial())
}
