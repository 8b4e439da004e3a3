package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardapio-digital/cardapio-api/internal/domain"
	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
	"github.com/cardapio-digital/cardapio-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementação do porto PedidoRepository sobre PostgreSQL.
// Itens é serializado como JSONB.
type PedidoRepo struct {
	pool *pgxpool.Pool
}

// NewPedidoRepository constrói o adaptador de persistência para pedidos.
func NewPedidoRepository(pool *pgxpool.Pool) *PedidoRepo {
	return &PedidoRepo{pool: pool}
}

// Criar persiste um novo pedido.
func (r *PedidoRepo) Criar(ctx context.Context, p *entity.Pedido) error {
	itens, err := json.Marshal(p.Itens)
	if err != nil {
		return fmt.Errorf("marshal itens: %w", err)
	}
	query := `
		INSERT INTO pedidos (id, cliente, telefone, endereco, itens, total, status, timestamp, comentarios)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.pool.Exec(ctx, query,
		p.ID, p.Cliente, p.Telefone, p.Endereco, itens, p.Total, p.Status, p.Timestamp, p.Comentarios,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// Listar devolve os pedidos, mais recentes primeiro.
func (r *PedidoRepo) Listar(ctx context.Context) ([]*entity.Pedido, error) {
	query := `
		SELECT id, cliente, telefone, endereco, itens, total, status, timestamp, comentarios
		FROM pedidos ORDER BY timestamp DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		p, err := scanPedido(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// BuscarPorID busca um pedido por ID. (nil, nil) se não existir.
func (r *PedidoRepo) BuscarPorID(ctx context.Context, id string) (*entity.Pedido, error) {
	query := `
		SELECT id, cliente, telefone, endereco, itens, total, status, timestamp, comentarios
		FROM pedidos WHERE id = $1`
	p, err := scanPedido(r.pool.QueryRow(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return p, nil
}

// AtualizarStatus muda o status do pedido. Devolve domain.ErrNotFound se não existir.
func (r *PedidoRepo) AtualizarStatus(ctx context.Context, id, status string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE pedidos SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update status pedido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanPedido faz o scan de uma linha de pedidos, desserializando o JSONB de itens.
func scanPedido(scan func(dest ...any) error) (*entity.Pedido, error) {
	var p entity.Pedido
	var itens []byte
	if err := scan(&p.ID, &p.Cliente, &p.Telefone, &p.Endereco, &itens, &p.Total, &p.Status, &p.Timestamp, &p.Comentarios); err != nil {
		return nil, err
	}
	if len(itens) > 0 {
		if err := json.Unmarshal(itens, &p.Itens); err != nil {
			return nil, fmt.Errorf("unmarshal itens: %w", err)
		}
	}
	return &p, nil
}
