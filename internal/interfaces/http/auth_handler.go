package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cardapio-digital/cardapio-api/internal/application/auth"
	"github.com/cardapio-digital/cardapio-api/internal/application/dto"
	"github.com/cardapio-digital/cardapio-api/internal/domain"
	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
)

// AuthHandler maneja registro, login, verificação de sessão e logout.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroRequest  true  "nome, senha, tipo"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" || in.Senha == "" || in.Tipo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados incompletos"})
	}
	if !entity.TipoValido(in.Tipo) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo deve ser cliente ou admin"})
	}
	u, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "usuário já existe ou dados inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao processar senha"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: u.ID})
}

// Login godoc
// @Summary      Iniciar sessão
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "nome, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" || in.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados incompletos"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		// Mensagem uniforme: não revela se o nome existe.
		if errors.Is(err, domain.ErrCredenciaisInvalidas) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuário ou senha inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro no login"})
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Verificar sessão
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessaoResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	// AuthMiddleware já validou a sessão e carregou os locals.
	return c.JSON(dto.SessaoResponse{
		Nome:      GetNome(c),
		Tipo:      GetTipo(c),
		ExpiresAt: GetExpiresAt(c),
	})
}

// Logout godoc
// @Summary      Encerrar sessão
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Idempotente: sessão ausente ou token malformado não é erro.
	h.uc.Logout(c.Context(), c.Get("Authorization"))
	return c.JSON(dto.SuccessResponse{Success: true})
}
