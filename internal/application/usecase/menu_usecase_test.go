package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardapio-digital/cardapio-api/internal/application/dto"
	"github.com/cardapio-digital/cardapio-api/internal/application/usecase"
	"github.com/cardapio-digital/cardapio-api/internal/domain"
	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
)

type fakeMenuRepo struct {
	items []entity.ItemMenu
}

func (f *fakeMenuRepo) Criar(_ context.Context, item *entity.ItemMenu) error {
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeMenuRepo) Listar(_ context.Context) ([]*entity.ItemMenu, error) {
	list := make([]*entity.ItemMenu, 0, len(f.items))
	for i := range f.items {
		it := f.items[i]
		list = append(list, &it)
	}
	return list, nil
}

func (f *fakeMenuRepo) Excluir(_ context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func TestMenuCriar(t *testing.T) {
	repo := &fakeMenuRepo{}
	uc := usecase.NewMenuUseCase(repo)

	out, err := uc.Criar(context.Background(), dto.CriarItemMenuRequest{
		Nome:       "Feijoada",
		Descricao:  "Completa",
		Preco:      decimal.RequireFromString("42.90"),
		Categoria:  "Pratos",
		Disponivel: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Feijoada", out.Nome)
	assert.True(t, out.Preco.Equal(decimal.RequireFromString("42.90")))
	assert.False(t, out.CreatedAt.IsZero())
	assert.Len(t, repo.items, 1)
}

func TestMenuListar_FiltroCategoria(t *testing.T) {
	repo := &fakeMenuRepo{}
	uc := usecase.NewMenuUseCase(repo)
	for _, it := range []dto.CriarItemMenuRequest{
		{Nome: "Suco de laranja", Categoria: "Bebidas"},
		{Nome: "Água com gás", Categoria: "Bebidas"},
		{Nome: "Pudim", Categoria: "Sobremesas"},
	} {
		_, err := uc.Criar(context.Background(), it)
		require.NoError(t, err)
	}

	// Sem filtro: tudo.
	all, err := uc.Listar(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// O filtro ignora caixa e acentos.
	for _, filtro := range []string{"bebidas", "BEBIDAS", "Bebidas", "bébidas", "  bebidas "} {
		got, err := uc.Listar(context.Background(), filtro)
		require.NoError(t, err)
		assert.Len(t, got, 2, "filtro %q", filtro)
		for _, it := range got {
			assert.Equal(t, "Bebidas", it.Categoria)
		}
	}

	// Categoria inexistente: lista vazia, sem erro.
	vazio, err := uc.Listar(context.Background(), "massas")
	require.NoError(t, err)
	assert.Empty(t, vazio)
}

func TestMenuExcluir(t *testing.T) {
	repo := &fakeMenuRepo{}
	uc := usecase.NewMenuUseCase(repo)
	out, err := uc.Criar(context.Background(), dto.CriarItemMenuRequest{Nome: "Pudim"})
	require.NoError(t, err)

	require.NoError(t, uc.Excluir(context.Background(), out.ID))
	assert.ErrorIs(t, uc.Excluir(context.Background(), out.ID), domain.ErrNotFound)
}
