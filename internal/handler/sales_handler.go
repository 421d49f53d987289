package handler

import (
	"go-loja-backend/internal/model"
	"go-loja-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SalesHandler struct {
	service service.SalesService
}

func NewSalesHandler(s service.SalesService) *SalesHandler {
	return &SalesHandler{service: s}
}

// CreateSale handles POST /venda.
func (h *SalesHandler) CreateSale(c *fiber.Ctx) error {
	var input model.SaleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "JSON inválido"})
	}

	sale, err := h.service.CreateSale(&input)
	if err != nil {
		return respondError(c, err, "Erro ao realizar a venda")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"mensagem": "Venda realizada",
		"venda":    sale,
	})
}

// DeleteSale handles DELETE /vendas/:id.
func (h *SalesHandler) DeleteSale(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"erro": "ID de venda inválido"})
	}

	if err := h.service.DeleteSale(id); err != nil {
		return respondError(c, err, "Erro ao excluir venda")
	}

	return c.JSON(fiber.Map{"mensagem": "Venda excluída com sucesso"})
}

// Report handles GET /relatorio-vendas.
func (h *SalesHandler) Report(c *fiber.Ctx) error {
	report, err := h.service.Report()
	if err != nil {
		return respondError(c, err, "Erro ao gerar relatório de vendas")
	}
	return c.JSON(report)
}
