package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tienda/internal/middleware"
	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/services"
)

const msgProductNotFound = "Producto no encontrado"

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
// Validation middleware runs before each handler; a handler is only
// reached with a well-formed id and body.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.GetProducts)
	products.Get("/:id", middleware.ValidateProductID, h.GetProductByID)
	products.Post("/", middleware.ValidateCreateProduct, h.CreateProduct)
	products.Put("/:id", middleware.ValidateProductID, middleware.ValidateUpdateProduct, h.UpdateProduct)
	products.Patch("/:id", middleware.ValidateProductID, h.UpdateAvailability)
	products.Delete("/:id", middleware.ValidateProductID, h.DeleteProduct)
}

// GetProducts returns the list of products ordered by price ascending.
//
// @Summary     Get a list of products
// @Tags        Products
// @Produce     json
// @Success     200 {object} map[string]interface{} "data: list of products"
// @Router      /api/products [get]
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": products})
}

// GetProductById returns a single product by its unique ID.
//
// @Summary     Get a product by ID
// @Tags        Products
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} map[string]interface{} "data: product"
// @Failure     400 {object} map[string]interface{} "invalid id"
// @Failure     404 {object} map[string]interface{} "not found"
// @Router      /api/products/{id} [get]
func (h *ProductHandler) GetProductByID(c *fiber.Ctx) error {
	id := c.Locals(middleware.LocalProductID).(uint)

	product, err := h.productService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.JSON(fiber.Map{"data": product})
}

// CreateProduct inserts a new product. Availability is not read from
// the body; every new product starts available.
//
// @Summary     Create a new product
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       product body middleware.CreateProductInput true "name and price"
// @Success     201 {object} map[string]interface{} "data: created product"
// @Failure     400 {object} map[string]interface{} "invalid input"
// @Router      /api/products [post]
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	input := c.Locals(middleware.LocalProductInput).(middleware.CreateProductInput)

	product := models.Product{
		Name:  input.Name,
		Price: *input.Price,
	}
	if err := h.productService.CreateProduct(&product); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": product})
}

// UpdateProduct replaces name, price and availability of a product.
// This is a full update: omitted fields fail validation upstream.
//
// @Summary     Update a product by ID
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       id path int true "Product ID"
// @Param       product body middleware.UpdateProductInput true "name, price and availability"
// @Success     200 {object} map[string]interface{} "data: updated product"
// @Failure     400 {object} map[string]interface{} "invalid input"
// @Failure     404 {object} map[string]interface{} "not found"
// @Router      /api/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id := c.Locals(middleware.LocalProductID).(uint)
	input := c.Locals(middleware.LocalProductInput).(middleware.UpdateProductInput)

	product, err := h.productService.UpdateProduct(id, input.Name, *input.Price, *input.Availability)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.JSON(fiber.Map{"data": product})
}

// UpdateAvailability toggles the availability of a product. The body
// is ignored: the server flips the persisted value.
//
// @Summary     Toggle product availability
// @Tags        Products
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} map[string]interface{} "data: updated product"
// @Failure     400 {object} map[string]interface{} "invalid id"
// @Failure     404 {object} map[string]interface{} "not found"
// @Router      /api/products/{id} [patch]
func (h *ProductHandler) UpdateAvailability(c *fiber.Ctx) error {
	id := c.Locals(middleware.LocalProductID).(uint)

	product, err := h.productService.ToggleAvailability(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.JSON(fiber.Map{"data": product})
}

// DeleteProduct permanently removes a product and returns a literal
// confirmation string rather than the deleted entity.
//
// @Summary     Delete a product by ID
// @Tags        Products
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} map[string]interface{} "data: confirmation message"
// @Failure     400 {object} map[string]interface{} "invalid id"
// @Failure     404 {object} map[string]interface{} "not found"
// @Router      /api/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id := c.Locals(middleware.LocalProductID).(uint)

	if err := h.productService.DeleteProduct(id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.JSON(fiber.Map{"data": "Producto eliminado"})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msgProductNotFound})
}
