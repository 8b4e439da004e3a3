package repository

import (
	"context"

	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
)

// PedidoRepository define o porto de persistência para Pedido.
type PedidoRepository interface {
	Criar(ctx context.Context, p *entity.Pedido) error
	Listar(ctx context.Context) ([]*entity.Pedido, error)
	// BuscarPorID devolve (nil, nil) se o pedido não existir.
	BuscarPorID(ctx context.Context, id string) (*entity.Pedido, error)
	// AtualizarStatus devolve domain.ErrNotFound se o pedido não existir.
	AtualizarStatus(ctx context.Context, id, status string) error
}
