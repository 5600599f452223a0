package services_test

import (
	"errors"
	"fmt"
	"testing"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProductEvent(action string, product any) error {
	args := m.Called(action, product)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProducts := []models.Product{
		{ID: 1, Name: "Monitor", Price: 300, Availability: true},
		{ID: 2, Name: "Teclado", Price: 450, Availability: true},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProduct := &models.Product{ID: 1, Name: "Monitor", Price: 300, Availability: true}

	// Test successful retrieval
	mockRepo.On("GetByID", uint(1)).Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	// Test product not found
	mockRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("product 99: %w", repositories.ErrProductNotFound)).Once()
	product, err = service.GetProductByID(99)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_DefaultsAvailability(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Availability
	})).Return(nil).Once()

	product := &models.Product{Name: "Monitor", Price: 300}
	err := service.CreateProduct(product)

	assert.NoError(t, err)
	assert.True(t, product.Availability)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_PublishesEvent(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockEvents := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockEvents)

	mockRepo.On("Create", mock.Anything).Return(nil).Once()
	mockEvents.On("PublishProductEvent", "product.created", mock.Anything).Return(nil).Once()

	err := service.CreateProduct(&models.Product{Name: "Monitor", Price: 300})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestProductService_CreateProduct_PublishFailureIsNotFatal(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockEvents := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockEvents)

	mockRepo.On("Create", mock.Anything).Return(nil).Once()
	mockEvents.On("PublishProductEvent", "product.created", mock.Anything).
		Return(errors.New("broker unreachable")).Once()

	err := service.CreateProduct(&models.Product{Name: "Monitor", Price: 300})

	assert.NoError(t, err)
	mockEvents.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	existing := &models.Product{ID: 1, Name: "Monitor", Price: 300, Availability: true}
	mockRepo.On("GetByID", uint(1)).Return(existing, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.Name == "Monitor Curvo" && p.Price == 499 && !p.Availability
	})).Return(nil).Once()

	product, err := service.UpdateProduct(1, "Monitor Curvo", 499, false)

	assert.NoError(t, err)
	assert.Equal(t, "Monitor Curvo", product.Name)
	assert.Equal(t, 499.0, product.Price)
	assert.False(t, product.Availability)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("product 99: %w", repositories.ErrProductNotFound)).Once()

	product, err := service.UpdateProduct(99, "Monitor", 300, true)

	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ToggleAvailability(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	existing := &models.Product{ID: 1, Name: "Monitor", Price: 300, Availability: true}
	mockRepo.On("GetByID", uint(1)).Return(existing, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return !p.Availability
	})).Return(nil).Once()

	product, err := service.ToggleAvailability(1)

	assert.NoError(t, err)
	assert.False(t, product.Availability)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ToggleAvailability_TwiceRestoresValue(t *testing.T) {
	// Toggle is its own inverse under serialized access.
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	stored := models.Product{ID: 1, Name: "Monitor", Price: 300, Availability: true}
	mockRepo.On("GetByID", uint(1)).Return(&stored, nil).Twice()
	mockRepo.On("Update", mock.Anything).Return(nil).Twice()

	first, err := service.ToggleAvailability(1)
	assert.NoError(t, err)
	assert.False(t, first.Availability)

	second, err := service.ToggleAvailability(1)
	assert.NoError(t, err)
	assert.True(t, second.Availability)

	mockRepo.AssertExpectations(t)
}

func TestProductService_ToggleAvailability_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("product 99: %w", repositories.ErrProductNotFound)).Once()

	product, err := service.ToggleAvailability(99)

	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockEvents := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockEvents)

	existing := &models.Product{ID: 1, Name: "Monitor", Price: 300, Availability: true}
	mockRepo.On("GetByID", uint(1)).Return(existing, nil).Once()
	mockRepo.On("Delete", uint(1)).Return(nil).Once()
	mockEvents.On("PublishProductEvent", "product.deleted", mock.Anything).Return(nil).Once()

	err := service.DeleteProduct(1)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("product 99: %w", repositories.ErrProductNotFound)).Once()

	err := service.DeleteProduct(99)

	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}
