package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardapio-digital/cardapio-api/internal/domain"
	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
	"github.com/cardapio-digital/cardapio-api/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo implementação do porto MenuRepository sobre PostgreSQL.
type MenuRepo struct {
	pool *pgxpool.Pool
}

// NewMenuRepository constrói o adaptador de persistência para o cardápio.
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepo {
	return &MenuRepo{pool: pool}
}

// Criar persiste um novo item do cardápio.
func (r *MenuRepo) Criar(ctx context.Context, item *entity.ItemMenu) error {
	query := `
		INSERT INTO menu_items (id, nome, descricao, preco, categoria, disponivel, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		item.ID, item.Nome, item.Descricao, item.Preco, item.Categoria, item.Disponivel, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item menu: %w", err)
	}
	return nil
}

// Listar devolve os itens do cardápio, mais recentes primeiro.
func (r *MenuRepo) Listar(ctx context.Context) ([]*entity.ItemMenu, error) {
	query := `
		SELECT id, nome, descricao, preco, categoria, disponivel, created_at
		FROM menu_items ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemMenu
	for rows.Next() {
		var it entity.ItemMenu
		if err := rows.Scan(&it.ID, &it.Nome, &it.Descricao, &it.Preco, &it.Categoria, &it.Disponivel, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item menu: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Excluir remove um item do cardápio. Devolve domain.ErrNotFound se não existir.
func (r *MenuRepo) Excluir(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item menu: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
