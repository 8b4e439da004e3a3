package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cardapio-digital/cardapio-api/internal/application/dto"
	"github.com/cardapio-digital/cardapio-api/internal/domain"
	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
	"github.com/cardapio-digital/cardapio-api/internal/domain/repository"
)

// ComprovanteGenerator gera o comprovante de um pedido em PDF.
// Implementado em internal/infrastructure/pdf.
type ComprovanteGenerator interface {
	GerarComprovante(ctx context.Context, p *entity.Pedido) ([]byte, error)
}

// PedidoUseCase casos de uso de pedidos.
type PedidoUseCase struct {
	repo        repository.PedidoRepository
	comprovante ComprovanteGenerator
}

// NewPedidoUseCase constrói o caso de uso.
func NewPedidoUseCase(repo repository.PedidoRepository, comprovante ComprovanteGenerator) *PedidoUseCase {
	return &PedidoUseCase{repo: repo, comprovante: comprovante}
}

// Criar registra um pedido. Status e timestamp recebem padrão quando ausentes.
func (uc *PedidoUseCase) Criar(ctx context.Context, in dto.CriarPedidoRequest) (*dto.PedidoResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusPendente
	}
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	p := &entity.Pedido{
		ID:          uuid.New().String(),
		Cliente:     in.Cliente,
		Telefone:    in.Telefone,
		Endereco:    in.Endereco,
		Itens:       in.Itens,
		Total:       in.Total,
		Status:      status,
		Timestamp:   ts,
		Comentarios: in.Comentarios,
	}
	if err := uc.repo.Criar(ctx, p); err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// Listar lista os pedidos, mais recentes primeiro.
func (uc *PedidoUseCase) Listar(ctx context.Context) ([]dto.PedidoResponse, error) {
	list, err := uc.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPedidoResponse(p))
	}
	return items, nil
}

// Aceitar muda o status para "aceito". Devolve domain.ErrNotFound se não existir.
func (uc *PedidoUseCase) Aceitar(ctx context.Context, id string) error {
	return uc.repo.AtualizarStatus(ctx, id, entity.StatusAceito)
}

// Rejeitar muda o status para "rejeitado". Devolve domain.ErrNotFound se não existir.
func (uc *PedidoUseCase) Rejeitar(ctx context.Context, id string) error {
	return uc.repo.AtualizarStatus(ctx, id, entity.StatusRejeitado)
}

// Comprovante gera o PDF do comprovante do pedido.
func (uc *PedidoUseCase) Comprovante(ctx context.Context, id string) ([]byte, error) {
	p, err := uc.repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return uc.comprovante.GerarComprovante(ctx, p)
}

func toPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	if p == nil {
		return nil
	}
	itens := p.Itens
	if itens == nil {
		itens = []entity.ItemPedido{}
	}
	return &dto.PedidoResponse{
		ID:          p.ID,
		Cliente:     p.Cliente,
		Telefone:    p.Telefone,
		Endereco:    p.Endereco,
		Itens:       itens,
		Total:       p.Total,
		Status:      p.Status,
		Timestamp:   p.Timestamp,
		Comentarios: p.Comentarios,
	}
}
