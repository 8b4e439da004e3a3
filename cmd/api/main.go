package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/cardapio-digital/cardapio-api/internal/application/auth"
	"github.com/cardapio-digital/cardapio-api/internal/application/usecase"
	"github.com/cardapio-digital/cardapio-api/internal/infrastructure/pdf"
	"github.com/cardapio-digital/cardapio-api/internal/infrastructure/postgres"
	httpRouter "github.com/cardapio-digital/cardapio-api/internal/interfaces/http"
	"github.com/cardapio-digital/cardapio-api/pkg/config"
	"github.com/cardapio-digital/cardapio-api/pkg/logger"
	"github.com/cardapio-digital/cardapio-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	sessaoRepo := postgres.NewSessaoRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)

	hasher := password.NewHasher(cfg.Senha.Custo)
	authUC := auth.NewUseCase(usuarioRepo, sessaoRepo, hasher, cfg.Sessao.TTL(), log)
	menuUC := usecase.NewMenuUseCase(menuRepo)
	comprovante := pdf.NewMarotoComprovanteGenerator(cfg.App.Name)
	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo, comprovante)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cardápio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:   authUC,
		MenuUC:   menuUC,
		PedidoUC: pedidoUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
