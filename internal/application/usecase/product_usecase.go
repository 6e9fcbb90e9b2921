package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/domain"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo sandbox que consume la consola en desarrollo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto con ID UUID.
func (uc *ProductUseCase) Create(in dto.ProductPayload) (*dto.ProductResponse, error) {
	if err := validatePayload(in); err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(in.Name),
		Price:    in.Price,
		Stock:    in.Stock,
		ImageURL: strings.TrimSpace(in.ImageURL),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update reemplaza los datos del producto (semántica PUT). nil si no existe.
func (uc *ProductUseCase) Update(id string, in dto.ProductPayload) (*dto.ProductResponse, error) {
	if err := validatePayload(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	product.Name = strings.TrimSpace(in.Name)
	product.Price = in.Price
	product.Stock = in.Stock
	product.ImageURL = strings.TrimSpace(in.ImageURL)
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos (la consola reemplaza su colección completa).
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func validatePayload(in dto.ProductPayload) error {
	if strings.TrimSpace(in.Name) == "" || in.Price.IsNegative() || in.Stock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Stock:    p.Stock,
		ImageURL: p.ImageURL,
	}
}
