package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarItemMenuRequest entrada para criar um item do cardápio. Apenas nome é obrigatório.
type CriarItemMenuRequest struct {
	Nome       string          `json:"nome" validate:"required"`
	Descricao  string          `json:"descricao"`
	Preco      decimal.Decimal `json:"preco"`
	Categoria  string          `json:"categoria"`
	Disponivel bool            `json:"disponivel"`
}

// ItemMenuResponse saída de um item do cardápio.
type ItemMenuResponse struct {
	ID         string          `json:"id"`
	Nome       string          `json:"nome"`
	Descricao  string          `json:"descricao"`
	Preco      decimal.Decimal `json:"preco"`
	Categoria  string          `json:"categoria"`
	Disponivel bool            `json:"disponivel"`
	CreatedAt  time.Time       `json:"created_at"`
}
