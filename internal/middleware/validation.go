package middleware

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Locals keys under which validated input is stored for the handler.
const (
	LocalProductID    = "productID"
	LocalProductInput = "productInput"
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// CreateProductInput is the request body for creating a product.
// Pointer fields distinguish "missing" from a zero value.
type CreateProductInput struct {
	Name  string   `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"required,gt=0"`
}

// UpdateProductInput is the request body for a full product update.
// All fields are required: this is a replace, not a partial patch.
type UpdateProductInput struct {
	Name         string   `json:"name" validate:"required"`
	Price        *float64 `json:"price" validate:"required,gt=0"`
	Availability *bool    `json:"availability" validate:"required"`
}

var validate = validator.New()

// ValidateProductID checks that the :id path parameter is a valid
// integer before the handler runs. On failure it responds 400 and does
// not invoke the rest of the chain; on success the parsed id is stored
// in c.Locals under LocalProductID.
func ValidateProductID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": []FieldError{{Field: "id", Msg: "ID no Válido"}},
		})
	}
	c.Locals(LocalProductID, uint(id))
	return c.Next()
}

// ValidateCreateProduct parses and validates the create-product body.
// Every failed rule is reported, not just the first. The validated
// input is stored in c.Locals under LocalProductInput.
func ValidateCreateProduct(c *fiber.Ctx) error {
	var input CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return badBody(c, err)
	}
	if errs := checkStruct(input); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	c.Locals(LocalProductInput, input)
	return c.Next()
}

// ValidateUpdateProduct parses and validates the full-update body.
func ValidateUpdateProduct(c *fiber.Ctx) error {
	var input UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return badBody(c, err)
	}
	if errs := checkStruct(input); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	c.Locals(LocalProductInput, input)
	return c.Next()
}

// checkStruct runs the declared rules and translates every violation.
func checkStruct(input any) []FieldError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "body", Msg: "Valor no válido"}}
	}
	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		fieldErrors = append(fieldErrors, FieldError{
			Field: field,
			Msg:   messageFor(field, e.Tag()),
		})
	}
	return fieldErrors
}

// badBody maps an unparsable request body to the 400 error list. A
// JSON type mismatch (e.g. a string where price expects a number) is
// attributed to the offending field.
func badBody(c *fiber.Ctx, err error) error {
	field := "body"
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field = typeErr.Field
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errors": []FieldError{{Field: field, Msg: "Valor no válido"}},
	})
}

func messageFor(field, tag string) string {
	switch field {
	case "name":
		return "El nombre del Producto no puede ir vacio"
	case "price":
		if tag == "required" {
			return "El precio del Producto no puede ir vacio"
		}
		return "Precio no válido"
	case "availability":
		return "Valor para disponibilidad no válido"
	}
	return "Valor no válido"
}
