package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardapio-digital/cardapio-api/internal/application/dto"
	"github.com/cardapio-digital/cardapio-api/internal/application/usecase"
	"github.com/cardapio-digital/cardapio-api/internal/domain"
	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
)

type fakePedidoRepo struct {
	pedidos []entity.Pedido
}

func (f *fakePedidoRepo) Criar(_ context.Context, p *entity.Pedido) error {
	f.pedidos = append(f.pedidos, *p)
	return nil
}

func (f *fakePedidoRepo) Listar(_ context.Context) ([]*entity.Pedido, error) {
	list := make([]*entity.Pedido, 0, len(f.pedidos))
	for i := range f.pedidos {
		p := f.pedidos[i]
		list = append(list, &p)
	}
	return list, nil
}

func (f *fakePedidoRepo) BuscarPorID(_ context.Context, id string) (*entity.Pedido, error) {
	for i := range f.pedidos {
		if f.pedidos[i].ID == id {
			p := f.pedidos[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePedidoRepo) AtualizarStatus(_ context.Context, id, status string) error {
	for i := range f.pedidos {
		if f.pedidos[i].ID == id {
			f.pedidos[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

type stubComprovante struct {
	ultimo *entity.Pedido
}

func (s *stubComprovante) GerarComprovante(_ context.Context, p *entity.Pedido) ([]byte, error) {
	s.ultimo = p
	return []byte("%PDF-1.4"), nil
}

func newPedidoTeste() (*usecase.PedidoUseCase, *fakePedidoRepo, *stubComprovante) {
	repo := &fakePedidoRepo{}
	gen := &stubComprovante{}
	return usecase.NewPedidoUseCase(repo, gen), repo, gen
}

func TestPedidoCriar_Padroes(t *testing.T) {
	uc, repo, _ := newPedidoTeste()

	out, err := uc.Criar(context.Background(), dto.CriarPedidoRequest{
		Cliente:  "Ana",
		Telefone: "11 99999-0000",
		Endereco: "Rua A, 10",
		Itens: []entity.ItemPedido{
			{Nome: "Feijoada", Preco: decimal.RequireFromString("42.90"), Quantidade: 2},
		},
		Total: decimal.RequireFromString("85.80"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.StatusPendente, out.Status, "status ausente recebe o padrão")
	assert.False(t, out.Timestamp.IsZero(), "timestamp ausente recebe o padrão")
	assert.Len(t, repo.pedidos, 1)
}

func TestPedidoCriar_PreservaStatusETimestamp(t *testing.T) {
	uc, _, _ := newPedidoTeste()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	out, err := uc.Criar(context.Background(), dto.CriarPedidoRequest{
		Cliente:   "Bia",
		Telefone:  "11 98888-0000",
		Endereco:  "Rua B, 20",
		Status:    entity.StatusAceito,
		Timestamp: ts,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAceito, out.Status)
	assert.True(t, out.Timestamp.Equal(ts))
}

func TestPedidoAceitarRejeitar(t *testing.T) {
	uc, repo, _ := newPedidoTeste()
	out, err := uc.Criar(context.Background(), dto.CriarPedidoRequest{
		Cliente: "Ana", Telefone: "11 99999-0000", Endereco: "Rua A, 10",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Aceitar(context.Background(), out.ID))
	assert.Equal(t, entity.StatusAceito, repo.pedidos[0].Status)

	require.NoError(t, uc.Rejeitar(context.Background(), out.ID))
	assert.Equal(t, entity.StatusRejeitado, repo.pedidos[0].Status)

	assert.ErrorIs(t, uc.Aceitar(context.Background(), "nao-existe"), domain.ErrNotFound)
}

func TestPedidoComprovante(t *testing.T) {
	uc, _, gen := newPedidoTeste()
	out, err := uc.Criar(context.Background(), dto.CriarPedidoRequest{
		Cliente: "Ana", Telefone: "11 99999-0000", Endereco: "Rua A, 10",
	})
	require.NoError(t, err)

	pdf, err := uc.Comprovante(context.Background(), out.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	require.NotNil(t, gen.ultimo)
	assert.Equal(t, out.ID, gen.ultimo.ID)

	_, err = uc.Comprovante(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
