package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemMenu representa um item do cardápio.
type ItemMenu struct {
	ID         string
	Nome       string
	Descricao  string
	Preco      decimal.Decimal
	Categoria  string
	Disponivel bool
	CreatedAt  time.Time
}
