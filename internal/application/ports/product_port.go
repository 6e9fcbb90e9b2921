package ports

import (
	"context"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
)

// ProductDataSource define el puerto de salida hacia el servicio REST de productos.
// La vista solo distingue "falló" de "funcionó"; los adaptadores envuelven sus
// errores en domain.ErrRemote.
type ProductDataSource interface {
	List(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, in dto.ProductPayload) (*entity.Product, error)
	Update(ctx context.Context, id string, in dto.ProductPayload) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductListExporter genera un documento con el listado de productos cacheado.
type ProductListExporter interface {
	ExportProductList(ctx context.Context, title string, products []entity.Product) ([]byte, error)
}
