package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status válidos de um Pedido.
const (
	StatusPendente  = "pendente"
	StatusAceito    = "aceito"
	StatusRejeitado = "rejeitado"
)

// ItemPedido um item dentro de um pedido (snapshot do cardápio no momento da compra).
type ItemPedido struct {
	Nome       string          `json:"nome"`
	Preco      decimal.Decimal `json:"preco"`
	Quantidade int             `json:"quantidade"`
}

// Pedido representa um pedido de entrega feito por um cliente.
// Itens é persistido como JSONB.
type Pedido struct {
	ID          string
	Cliente     string
	Telefone    string
	Endereco    string
	Itens       []ItemPedido
	Total       decimal.Decimal
	Status      string // pendente, aceito, rejeitado
	Timestamp   time.Time
	Comentarios string
}
