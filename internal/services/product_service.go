package services

import (
	"log"

	"tienda/internal/models"
	"tienda/internal/repositories"
)

// EventPublisher publishes product lifecycle events to a message broker.
// Satisfied by *rabbitmq.Client.
type EventPublisher interface {
	PublishProductEvent(action string, product any) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher // optional, may be nil
}

// NewProductService creates a new ProductService. The publisher may be
// nil, in which case no events are emitted.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// GetAllProducts retrieves all products, ordered by price ascending.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product. Availability always starts true;
// clients cannot set it on creation.
func (s *ProductService) CreateProduct(product *models.Product) error {
	product.Availability = true
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publish("product.created", product)
	return nil
}

// UpdateProduct overwrites name, price and availability of an existing
// product. It returns repositories.ErrProductNotFound if the id does
// not exist. The fetch and the save are two separate round-trips with
// no transaction around them.
func (s *ProductService) UpdateProduct(id uint, name string, price float64, availability bool) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Name = name
	product.Price = price
	product.Availability = availability
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	s.publish("product.updated", product)
	return product, nil
}

// ToggleAvailability flips the availability of an existing product and
// persists the result. This is a read-modify-write over two round-trips
// with no row lock: two concurrent toggles on the same id can both read
// the same prior value and write the same new one.
func (s *ProductService) ToggleAvailability(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Availability = !product.Availability
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	s.publish("product.availability_changed", product)
	return product, nil
}

// DeleteProduct permanently removes a product by its ID.
func (s *ProductService) DeleteProduct(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("product.deleted", product)
	return nil
}

// publish emits an event if a publisher is configured. Publishing is
// best-effort: a broker failure must never fail the request.
func (s *ProductService) publish(action string, product *models.Product) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishProductEvent(action, product); err != nil {
		log.Printf("Failed to publish %s event for product %d: %v", action, product.ID, err)
	}
}
