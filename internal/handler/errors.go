package handler

import (
	"errors"
	"log"

	"go-loja-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors to the wire contract. Expected business
// outcomes get a descriptive 4xx; anything else is logged and answered with
// the generic fallback so internal detail never leaks.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var vErr *service.ValidationError

	switch {
	case errors.Is(err, service.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"erro": "Produto não encontrado"})
	case errors.Is(err, service.ErrSaleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"erro": "Venda não encontrada"})
	case errors.Is(err, service.ErrCategoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"erro": "Categoria não encontrada"})
	case errors.Is(err, service.ErrSubcategoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"erro": "Subcategoria não encontrada"})
	case errors.Is(err, service.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "Estoque insuficiente"})
	case errors.Is(err, service.ErrProductInUse):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"erro": "Produto possui vendas registradas"})
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"erro": fallback})
	}
}
