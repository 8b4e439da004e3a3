package repository

import (
	"context"

	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
)

// SessaoRepository define o porto de persistência para Sessao.
// O Session Store é o único dono das linhas de sessão: toda verificação é uma
// leitura fresca (sem cache), então logout e expiração valem já na requisição
// seguinte.
type SessaoRepository interface {
	Criar(ctx context.Context, s *entity.Sessao) error
	// BuscarComUsuario devolve a sessão com o usuário dono (join) ou (nil, nil)
	// se o token não existir.
	BuscarComUsuario(ctx context.Context, token string) (*entity.SessaoComUsuario, error)
	// Excluir remove a sessão. Não é erro o token já não existir.
	Excluir(ctx context.Context, token string) error
}
