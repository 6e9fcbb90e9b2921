package repository

import (
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia del catálogo sandbox (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
	Delete(id string) error
}
