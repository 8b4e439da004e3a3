package auth_test

import (
	"context"
	"sync"

	"github.com/cardapio-digital/cardapio-api/internal/domain"
	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
	"github.com/cardapio-digital/cardapio-api/pkg/logger"
)

// Dublês em memória dos portos de persistência, para exercitar os casos de
// uso sem banco.

type fakeUsuarioRepo struct {
	mu           sync.Mutex
	usuarios     []entity.Usuario
	errListar    error
	errAtualizar error
}

func (f *fakeUsuarioRepo) Criar(_ context.Context, u *entity.Usuario) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.usuarios {
		if e.Nome == u.Nome {
			return domain.ErrDuplicate
		}
	}
	f.usuarios = append(f.usuarios, *u)
	return nil
}

func (f *fakeUsuarioRepo) BuscarPorNome(_ context.Context, nome string) (*entity.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.usuarios {
		if e.Nome == nome {
			u := e
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) Listar(_ context.Context) ([]*entity.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errListar != nil {
		return nil, f.errListar
	}
	list := make([]*entity.Usuario, 0, len(f.usuarios))
	for _, e := range f.usuarios {
		u := e
		list = append(list, &u)
	}
	return list, nil
}

func (f *fakeUsuarioRepo) AtualizarSenha(_ context.Context, id, senhaHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errAtualizar != nil {
		return f.errAtualizar
	}
	for i := range f.usuarios {
		if f.usuarios[i].ID == id {
			f.usuarios[i].Senha = senhaHash
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeUsuarioRepo) porID(id string) (entity.Usuario, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.usuarios {
		if e.ID == id {
			return e, true
		}
	}
	return entity.Usuario{}, false
}

type fakeSessaoRepo struct {
	mu         sync.Mutex
	sessoes    map[string]entity.Sessao
	usuarios   *fakeUsuarioRepo
	errCriar   error
	errExcluir error
}

func newFakeSessaoRepo(usuarios *fakeUsuarioRepo) *fakeSessaoRepo {
	return &fakeSessaoRepo{sessoes: make(map[string]entity.Sessao), usuarios: usuarios}
}

func (f *fakeSessaoRepo) Criar(_ context.Context, s *entity.Sessao) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errCriar != nil {
		return f.errCriar
	}
	f.sessoes[s.Token] = *s
	return nil
}

func (f *fakeSessaoRepo) BuscarComUsuario(_ context.Context, token string) (*entity.SessaoComUsuario, error) {
	f.mu.Lock()
	s, ok := f.sessoes[token]
	f.mu.Unlock()
	if !ok {
		return nil, nil
	}
	u, ok := f.usuarios.porID(s.UsuarioID)
	if !ok {
		return nil, nil
	}
	return &entity.SessaoComUsuario{Sessao: s, Usuario: u}, nil
}

func (f *fakeSessaoRepo) Excluir(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errExcluir != nil {
		return f.errExcluir
	}
	delete(f.sessoes, token)
	return nil
}

// logTeste logger silencioso para os testes.
func logTeste() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}
