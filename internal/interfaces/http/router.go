package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cardapio-digital/cardapio-api/internal/application/auth"
	"github.com/cardapio-digital/cardapio-api/internal/application/usecase"
	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC   *auth.UseCase
	MenuUC   *usecase.MenuUseCase
	PedidoUC *usecase.PedidoUseCase
}

// Router registra as rotas da API. Leituras do cardápio e de pedidos são
// públicas; toda mutação administrativa passa por AuthMiddleware e depois
// RequireTipo(admin) — em falha, o handler protegido nunca executa.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	autenticado := AuthMiddleware(deps.AuthUC)
	somenteAdmin := RequireTipo(entity.TipoAdmin)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Get("/session/verify", autenticado, authHandler.Verify)
	api.Post("/logout", authHandler.Logout)

	// Cardápio (GET público; mutações admin)
	menuHandler := NewMenuHandler(deps.MenuUC)
	api.Get("/menu", menuHandler.List)
	api.Post("/menu", autenticado, somenteAdmin, menuHandler.Create)
	api.Delete("/menu/:id", autenticado, somenteAdmin, menuHandler.Delete)

	// Pedidos (GET e POST públicos; mudanças de status e comprovante admin)
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	api.Get("/orders", pedidoHandler.List)
	api.Post("/orders", pedidoHandler.Create)
	api.Put("/orders/:id/accept", autenticado, somenteAdmin, pedidoHandler.Accept)
	api.Put("/orders/:id/reject", autenticado, somenteAdmin, pedidoHandler.Reject)
	api.Get("/orders/:id/comprovante", autenticado, somenteAdmin, pedidoHandler.Comprovante)
}
