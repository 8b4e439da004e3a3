package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cardapio-digital/cardapio-api/internal/application/dto"
	"github.com/cardapio-digital/cardapio-api/internal/application/usecase"
	"github.com/cardapio-digital/cardapio-api/internal/domain"
)

// MenuHandler maneja as requisições HTTP do cardápio.
// Leitura é pública; criação e exclusão exigem admin (ver router).
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler constrói o handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// List godoc
// @Summary      Listar cardápio
// @Tags         menu
// @Produce      json
// @Param        categoria  query  string  false  "filtro por categoria (sem acentos/maiúsculas)"
// @Success      200  {array}  dto.ItemMenuResponse
// @Router       /api/menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.Listar(c.Context(), c.Query("categoria"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao buscar menu"})
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Criar item do cardápio
// @Tags         menu
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarItemMenuRequest  true  "dados do item"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/menu [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarItemMenuRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome obrigatório"})
	}
	out, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao inserir item"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: out.ID})
}

// Delete godoc
// @Summary      Remover item do cardápio
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do item"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu/{id} [delete]
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Excluir(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao remover item"})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
