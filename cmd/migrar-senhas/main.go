// migrar-senhas hasheia, no lugar, as senhas legadas ainda em texto plano.
// Senhas que já parecem bcrypt (prefixo "$2") são puladas, então o comando é
// idempotente e seguro de reexecutar. Roda separado do servidor; uma instância
// por vez.
//
// Uso: go run ./cmd/migrar-senhas
// Sai com status != 0 se a leitura falhar ou se toda linha processada falhar.
package main

import (
	"context"
	"os"

	"github.com/cardapio-digital/cardapio-api/internal/application/auth"
	"github.com/cardapio-digital/cardapio-api/internal/infrastructure/postgres"
	"github.com/cardapio-digital/cardapio-api/pkg/config"
	"github.com/cardapio-digital/cardapio-api/pkg/logger"
	"github.com/cardapio-digital/cardapio-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexão ao PostgreSQL")
		os.Exit(1)
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	hasher := password.NewHasher(cfg.Senha.Custo)

	res, err := auth.RehashSenhas(ctx, usuarioRepo, hasher, log)
	if err != nil {
		log.Error().Err(err).Msg("migração abortada")
		os.Exit(1)
	}

	log.Info().
		Int("total", res.Total).
		Int("migrados", res.Migrados).
		Int("pulados", res.Pulados).
		Int("falhas", res.Falhas).
		Msg("migração concluída")

	// Lote integralmente falho: sinaliza ao operador via status de saída.
	if res.Falhas > 0 && res.Migrados == 0 && res.Pulados == 0 {
		os.Exit(1)
	}
}
