package repository

import (
	"context"

	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
)

// MenuRepository define o porto de persistência para ItemMenu.
type MenuRepository interface {
	Criar(ctx context.Context, item *entity.ItemMenu) error
	Listar(ctx context.Context) ([]*entity.ItemMenu, error)
	// Excluir devolve domain.ErrNotFound se o item não existir.
	Excluir(ctx context.Context, id string) error
}
