package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardapio-digital/cardapio-api/internal/domain"
	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
	"github.com/cardapio-digital/cardapio-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository constrói o adaptador de persistência para usuários.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// Criar persiste um novo usuário. Devolve domain.ErrDuplicate se o nome já existir.
func (r *UsuarioRepo) Criar(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nome, senha, tipo, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query, u.ID, u.Nome, u.Senha, u.Tipo, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// BuscarPorNome busca um usuário pelo nome (case-sensitive). (nil, nil) se não existir.
func (r *UsuarioRepo) BuscarPorNome(ctx context.Context, nome string) (*entity.Usuario, error) {
	query := `
		SELECT id, nome, senha, tipo, created_at
		FROM usuarios WHERE nome = $1`
	var u entity.Usuario
	err := r.pool.QueryRow(ctx, query, nome).Scan(&u.ID, &u.Nome, &u.Senha, &u.Tipo, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by nome: %w", err)
	}
	return &u, nil
}

// Listar devolve todos os usuários (usado pela migração de senhas).
func (r *UsuarioRepo) Listar(ctx context.Context) ([]*entity.Usuario, error) {
	query := `
		SELECT id, nome, senha, tipo, created_at
		FROM usuarios ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nome, &u.Senha, &u.Tipo, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// AtualizarSenha substitui o hash de senha de um usuário (rotação via migração).
func (r *UsuarioRepo) AtualizarSenha(ctx context.Context, id, senhaHash string) error {
	_, err := r.pool.Exec(ctx, `UPDATE usuarios SET senha = $2 WHERE id = $1`, id, senhaHash)
	if err != nil {
		return fmt.Errorf("update senha: %w", err)
	}
	return nil
}
