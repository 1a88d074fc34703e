package repository

import (
	"context"

	"github.com/jhoicas/inventario-lite/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Semántica de documento: insertar con id ya asignado, listar todo, buscar,
// reemplazar y eliminar por id.
//
// GetByID devuelve (nil, nil) si el producto no existe; Replace y Delete
// devuelven domain.ErrNotFound (una actualización o borrado sobre un id
// inexistente nunca debe ser un no-op silencioso).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Replace(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
