package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
	"github.com/cardapio-digital/cardapio-api/internal/domain/repository"
)

var _ repository.SessaoRepository = (*SessaoRepo)(nil)

// SessaoRepo implementação do porto SessaoRepository sobre PostgreSQL.
// Uma linha por token (token é PK); expires_at em milissegundos epoch.
type SessaoRepo struct {
	pool *pgxpool.Pool
}

// NewSessaoRepository constrói o adaptador de persistência para sessões.
func NewSessaoRepository(pool *pgxpool.Pool) *SessaoRepo {
	return &SessaoRepo{pool: pool}
}

// Criar persiste uma nova sessão.
func (r *SessaoRepo) Criar(ctx context.Context, s *entity.Sessao) error {
	query := `
		INSERT INTO sessoes (token, usuario_id, expires_at)
		VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, query, s.Token, s.UsuarioID, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("insert sessao: %w", err)
	}
	return nil
}

// BuscarComUsuario busca a sessão com o usuário dono (join). (nil, nil) se o
// token não existir — a expiração é decidida pelo chamador.
func (r *SessaoRepo) BuscarComUsuario(ctx context.Context, token string) (*entity.SessaoComUsuario, error) {
	query := `
		SELECT s.token, s.usuario_id, s.expires_at, u.id, u.nome, u.senha, u.tipo, u.created_at
		FROM sessoes s JOIN usuarios u ON s.usuario_id = u.id
		WHERE s.token = $1`
	var sc entity.SessaoComUsuario
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&sc.Sessao.Token, &sc.Sessao.UsuarioID, &sc.Sessao.ExpiresAt,
		&sc.Usuario.ID, &sc.Usuario.Nome, &sc.Usuario.Senha, &sc.Usuario.Tipo, &sc.Usuario.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sessao: %w", err)
	}
	return &sc, nil
}

// Excluir remove a sessão pelo token. Token inexistente não é erro (idempotente).
func (r *SessaoRepo) Excluir(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessoes WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete sessao: %w", err)
	}
	return nil
}
