package repositories

import (
	"errors"

	"tienda/internal/models"
)

// ErrProductNotFound is returned when a product id does not exist.
// Callers should test for it with errors.Is.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
// Implementations are the only writers to the underlying table;
// handlers and services never bypass them.
type ProductRepository interface {
	// GetAll returns every product ordered by price ascending.
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}
