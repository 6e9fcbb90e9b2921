// Package memory implementa repositorios en memoria para la API sandbox.
package memory

import (
	"sync"

	"github.com/jhoicas/Inventario-admin/internal/domain"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo guarda productos en memoria preservando el orden de inserción.
type ProductRepo struct {
	mu    sync.RWMutex
	byID  map[string]entity.Product
	order []string
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{byID: make(map[string]entity.Product)}
}

// Create persiste un nuevo producto. Devuelve domain.ErrInvalidInput si el ID ya existe.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[product.ID]; ok {
		return domain.ErrInvalidInput
	}
	r.byID[product.ID] = *product
	r.order = append(r.order, product.ID)
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Update reemplaza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[product.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[product.ID] = *product
	return nil
}

// List devuelve todos los productos en orden de creación.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		p := r.byID[id]
		out = append(out, &p)
	}
	return out, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
