package repository

import (
	"context"

	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
)

// UsuarioRepository define o porto de persistência para Usuario (DIP).
// As buscas devolvem (nil, nil) quando o usuário não existe.
type UsuarioRepository interface {
	Criar(ctx context.Context, u *entity.Usuario) error
	BuscarPorNome(ctx context.Context, nome string) (*entity.Usuario, error)
	Listar(ctx context.Context) ([]*entity.Usuario, error)
	AtualizarSenha(ctx context.Context, id, senhaHash string) error
}
