package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
)

// CriarPedidoRequest entrada para criar um pedido. Cliente, telefone e
// endereço são obrigatórios; status e timestamp recebem padrão no use case.
type CriarPedidoRequest struct {
	Cliente     string              `json:"cliente" validate:"required"`
	Telefone    string              `json:"telefone" validate:"required"`
	Endereco    string              `json:"endereco" validate:"required"`
	Itens       []entity.ItemPedido `json:"itens"`
	Total       decimal.Decimal     `json:"total"`
	Status      string              `json:"status"`
	Timestamp   time.Time           `json:"timestamp"`
	Comentarios string              `json:"comentarios"`
}

// PedidoResponse saída de um pedido.
type PedidoResponse struct {
	ID          string              `json:"id"`
	Cliente     string              `json:"cliente"`
	Telefone    string              `json:"telefone"`
	Endereco    string              `json:"endereco"`
	Itens       []entity.ItemPedido `json:"itens"`
	Total       decimal.Decimal     `json:"total"`
	Status      string              `json:"status"`
	Timestamp   time.Time           `json:"timestamp"`
	Comentarios string              `json:"comentarios"`
}
