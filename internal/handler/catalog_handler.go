package handler

import (
	"go-loja-backend/internal/model"
	"go-loja-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts()
	if err != nil {
		return respondError(c, err, "Erro ao listar produtos")
	}
	return c.JSON(products)
}

func (h *CatalogHandler) GetLowStockProducts(c *fiber.Ctx) error {
	products, err := h.service.ListLowStock()
	if err != nil {
		return respondError(c, err, "Erro ao listar produtos")
	}
	return c.JSON(products)
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "JSON inválido"})
	}

	row, err := h.service.CreateProduct(&product)
	if err != nil {
		return respondError(c, err, "Erro ao adicionar produto")
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "ID de produto inválido"})
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return respondError(c, err, "Erro ao excluir produto")
	}
	return c.JSON(fiber.Map{"mensagem": "Produto excluído com sucesso"})
}

func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return respondError(c, err, "Erro ao listar categorias")
	}
	return c.JSON(categories)
}

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "JSON inválido"})
	}

	if err := h.service.CreateCategory(&category); err != nil {
		return respondError(c, err, "Erro ao adicionar categoria")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "ID de categoria inválido"})
	}

	if err := h.service.DeleteCategory(id); err != nil {
		return respondError(c, err, "Erro ao excluir categoria")
	}
	return c.JSON(fiber.Map{"mensagem": "Categoria excluída com sucesso"})
}

func (h *CatalogHandler) GetSubcategories(c *fiber.Ctx) error {
	subcategories, err := h.service.ListSubcategories()
	if err != nil {
		return respondError(c, err, "Erro ao listar subcategorias")
	}
	return c.JSON(subcategories)
}

func (h *CatalogHandler) CreateSubcategory(c *fiber.Ctx) error {
	var subcategory model.Subcategory
	if err := c.BodyParser(&subcategory); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "JSON inválido"})
	}

	if err := h.service.CreateSubcategory(&subcategory); err != nil {
		return respondError(c, err, "Erro ao adicionar subcategoria")
	}
	return c.Status(fiber.StatusCreated).JSON(subcategory)
}

func (h *CatalogHandler) DeleteSubcategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "ID de subcategoria inválido"})
	}

	if err := h.service.DeleteSubcategory(id); err != nil {
		return respondError(c, err, "Erro ao excluir subcategoria")
	}
	return c.JSON(fiber.Map{"mensagem": "Subcategoria excluída com sucesso"})
}
