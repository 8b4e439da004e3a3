package auth

import (
	"context"

	"github.com/cardapio-digital/cardapio-api/internal/domain/repository"
	"github.com/cardapio-digital/cardapio-api/pkg/logger"
	"github.com/cardapio-digital/cardapio-api/pkg/password"
)

// ResultadoRehash resumo de uma execução da migração de senhas.
type ResultadoRehash struct {
	Total    int // usuários lidos
	Migrados int // senhas em texto plano que foram hasheadas
	Pulados  int // já estavam em formato hash
	Falhas   int // linhas com erro (logadas, não abortam o lote)
}

// RehashSenhas percorre todos os usuários e hasheia, no lugar, qualquer senha
// que ainda pareça texto plano. Senhas já em formato bcrypt são puladas, então
// a operação é idempotente (segunda execução: zero regravações). Cada linha é
// processada de forma independente: falha em uma é logada e o lote continua.
// Deve rodar uma instância por vez; pode rodar com o servidor no ar.
func RehashSenhas(ctx context.Context, repo repository.UsuarioRepository, hasher password.Hasher, log *logger.Logger) (ResultadoRehash, error) {
	usuarios, err := repo.Listar(ctx)
	if err != nil {
		return ResultadoRehash{}, err
	}

	var res ResultadoRehash
	res.Total = len(usuarios)
	for _, u := range usuarios {
		if password.LooksHashed(u.Senha) {
			log.Debug().Str("usuario", u.Nome).Msg("senha já hasheada — pulando")
			res.Pulados++
			continue
		}
		hash, err := hasher.Hash(u.Senha)
		if err != nil {
			log.Error().Err(err).Str("usuario", u.Nome).Msg("erro ao hashear senha")
			res.Falhas++
			continue
		}
		if err := repo.AtualizarSenha(ctx, u.ID, hash); err != nil {
			log.Error().Err(err).Str("usuario", u.Nome).Msg("erro ao gravar senha migrada")
			res.Falhas++
			continue
		}
		log.Info().Str("usuario", u.Nome).Msg("senha migrada")
		res.Migrados++
	}
	return res, nil
}
