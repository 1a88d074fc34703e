package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Único lugar con reglas de
// negocio: toda validación ocurre aquí, antes de tocar el store (fail fast,
// sin escrituras parciales).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// validate aplica las reglas de campos y devuelve quantity/price ya coercidos.
// quantity debe ser un entero ≥ 0; price un decimal ≥ 0; name no vacío.
func validate(in dto.ProductRequest) (int, decimal.Decimal, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, decimal.Decimal{}, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.Quantity == nil {
		return 0, decimal.Decimal{}, fmt.Errorf("%w: quantity es requerido", domain.ErrInvalidInput)
	}
	if !in.Quantity.IsInteger() {
		return 0, decimal.Decimal{}, fmt.Errorf("%w: quantity debe ser un número entero", domain.ErrInvalidInput)
	}
	if in.Quantity.IsNegative() {
		return 0, decimal.Decimal{}, fmt.Errorf("%w: quantity no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Price == nil {
		return 0, decimal.Decimal{}, fmt.Errorf("%w: price es requerido", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return 0, decimal.Decimal{}, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	return int(in.Quantity.IntPart()), *in.Price, nil
}

// Create valida la entrada, asigna el identificador y persiste el producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	quantity, price, err := validate(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Quantity:    quantity,
		Price:       price,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos del store.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update valida la entrada y reemplaza todos los campos mutables del producto.
// Si el id no existe devuelve domain.ErrNotFound sin crear nada.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	quantity, price, err := validate(in)
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Quantity:    quantity,
		Price:       price,
		Category:    in.Category,
		UpdatedAt:   time.Now(),
	}
	// Replace completa CreatedAt desde la fila existente o devuelve ErrNotFound.
	if err := uc.repo.Replace(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
