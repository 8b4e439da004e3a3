package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cardapio-digital/cardapio-api/internal/application/dto"
	"github.com/cardapio-digital/cardapio-api/internal/application/usecase"
	"github.com/cardapio-digital/cardapio-api/internal/domain"
)

// PedidoHandler maneja as requisições HTTP de pedidos.
// Criação e listagem são públicas; aceitar/rejeitar/comprovante exigem admin.
type PedidoHandler struct {
	uc *usecase.PedidoUseCase
}

// NewPedidoHandler constrói o handler.
func NewPedidoHandler(uc *usecase.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// List godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Produce      json
// @Success      200  {array}  dto.PedidoResponse
// @Router       /api/orders [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.Listar(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao buscar pedidos"})
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Criar pedido
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarPedidoRequest  true  "dados do pedido"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Cliente == "" || in.Telefone == "" || in.Endereco == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados de entrega incompletos"})
	}
	out, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao criar pedido"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: out.ID})
}

// Accept godoc
// @Summary      Aceitar pedido
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do pedido"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/accept [put]
func (h *PedidoHandler) Accept(c *fiber.Ctx) error {
	return h.mudarStatus(c, h.uc.Aceitar, "erro ao aceitar pedido")
}

// Reject godoc
// @Summary      Rejeitar pedido
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do pedido"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/reject [put]
func (h *PedidoHandler) Reject(c *fiber.Ctx) error {
	return h.mudarStatus(c, h.uc.Rejeitar, "erro ao rejeitar pedido")
}

// Comprovante godoc
// @Summary      Comprovante do pedido em PDF
// @Tags         pedidos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID do pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/comprovante [get]
func (h *PedidoHandler) Comprovante(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Comprovante(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao gerar comprovante"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="comprovante-`+id+`.pdf"`)
	return c.Send(pdf)
}

func (h *PedidoHandler) mudarStatus(c *fiber.Ctx, fn func(ctx context.Context, id string) error, msgErro string) error {
	id := c.Params("id")
	if err := fn(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msgErro})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
