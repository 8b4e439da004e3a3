package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cardapio-digital/cardapio-api/internal/application/auth"
	"github.com/cardapio-digital/cardapio-api/internal/application/dto"
	"github.com/cardapio-digital/cardapio-api/internal/domain"
)

// Locals keys preenchidas pelo AuthMiddleware.
const (
	LocalUsuarioID = "usuario_id"
	LocalNome      = "nome"
	LocalTipo      = "tipo"
	LocalToken     = "token"
	LocalExpiresAt = "expires_at"
)

// timeoutAutenticacao prazo máximo da consulta de sessão por requisição.
// Estourado o prazo, a requisição é negada (fail closed).
const timeoutAutenticacao = 5 * time.Second

// AuthMiddleware valida o bearer token contra o Session Store (leitura fresca
// a cada requisição) e carrega o usuário resolvido em c.Locals.
func AuthMiddleware(uc *auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), timeoutAutenticacao)
		defer cancel()

		aut, err := uc.Autenticar(ctx, c.Get("Authorization"))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenAusente):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token ausente"})
			case errors.Is(err, domain.ErrSessaoInvalida):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SESSION", Message: "sessão inválida"})
			case errors.Is(err, domain.ErrSessaoExpirada):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "EXPIRED_SESSION", Message: "sessão expirada"})
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro no servidor"})
			}
		}

		c.Locals(LocalUsuarioID, aut.Usuario.ID)
		c.Locals(LocalNome, aut.Usuario.Nome)
		c.Locals(LocalTipo, aut.Usuario.Tipo)
		c.Locals(LocalToken, aut.Token)
		c.Locals(LocalExpiresAt, aut.ExpiresAt)
		return c.Next()
	}
}

// RequireTipo autoriza o acesso apenas aos tipos indicados. Deve ser usado
// DEPOIS de AuthMiddleware (precisa de LocalTipo). O chamador é conhecido mas
// não permitido: 403, distinto do 401 de autenticação.
func RequireTipo(tipos ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tipo := GetTipo(c)
		if tipo == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "requisição não autenticada"})
		}
		for _, t := range tipos {
			if tipo == t {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado (admin)"})
	}
}

// GetUsuarioID devolve o ID do usuário autenticado (depois do AuthMiddleware).
func GetUsuarioID(c *fiber.Ctx) string { return localString(c, LocalUsuarioID) }

// GetNome devolve o nome do usuário autenticado.
func GetNome(c *fiber.Ctx) string { return localString(c, LocalNome) }

// GetTipo devolve o tipo do usuário autenticado.
func GetTipo(c *fiber.Ctx) string { return localString(c, LocalTipo) }

// GetToken devolve o token apresentado na requisição.
func GetToken(c *fiber.Ctx) string { return localString(c, LocalToken) }

// GetExpiresAt devolve a validade da sessão (epoch millis); 0 se ausente.
func GetExpiresAt(c *fiber.Ctx) int64 {
	v := c.Locals(LocalExpiresAt)
	if v == nil {
		return 0
	}
	n, _ := v.(int64)
	return n
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
