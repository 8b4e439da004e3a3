// Package pdf implementa a geração do comprovante de pedido em PDF.
//
// Layout A4:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: nome do restaurante │ nº + data     │
//	│  ──────────────────────────────────────────  │
//	│  CLIENTE: nome / telefone / endereço         │
//	│  ──────────────────────────────────────────  │
//	│  TABELA: Qtd | Item | Preço | Subtotal       │
//	│  ──────────────────────────────────────────  │
//	│  TOTAL + status + comentários                │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appusecase "github.com/cardapio-digital/cardapio-api/internal/application/usecase"
	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
)

var (
	corPrimaria = &props.Color{Red: 153, Green: 51, Blue: 0}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appusecase.ComprovanteGenerator = (*MarotoComprovanteGenerator)(nil)

// MarotoComprovanteGenerator implementa usecase.ComprovanteGenerator usando Maroto v2.
type MarotoComprovanteGenerator struct {
	restaurante string
}

// NewMarotoComprovanteGenerator constrói o gerador com o nome do restaurante no cabeçalho.
func NewMarotoComprovanteGenerator(restaurante string) *MarotoComprovanteGenerator {
	return &MarotoComprovanteGenerator{restaurante: restaurante}
}

// GerarComprovante gera o PDF e devolve os bytes.
func (g *MarotoComprovanteGenerator) GerarComprovante(_ context.Context, p *entity.Pedido) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprovante de Pedido", true).
		WithAuthor(g.restaurante, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(clienteRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))

	m.AddRows(tabelaHeaderRow())
	for _, r := range tabelaItensRows(p.Itens) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))
	m.AddRows(totalRow(p))
	if p.Comentarios != "" {
		m.AddRows(comentariosRow(p))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar comprovante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: restaurante (esq) e nº do pedido + data (dir).
func (g *MarotoComprovanteGenerator) headerRow(p *entity.Pedido) core.Row {
	data := p.Timestamp.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.restaurante, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1,
			}),
			text.New("COMPROVANTE DE PEDIDO", props.Text{
				Size: 8, Top: 9, Color: corCinza,
			}),
		),
		col.New(5).Add(
			text.New("Pedido "+p.ID, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 4,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: corCinza,
			}),
		),
	)
}

// clienteRow: dados de entrega.
func clienteRow(p *entity.Pedido) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Cliente: "+p.Cliente, props.Text{Size: 9, Top: 1}),
			text.New("Telefone: "+p.Telefone, props.Text{Size: 8, Top: 6, Color: corCinza}),
			text.New("Endereço: "+p.Endereco, props.Text{Size: 8, Top: 10, Color: corCinza}),
		),
	)
}

func tabelaHeaderRow() core.Row {
	estilo := props.Text{Style: fontstyle.Bold, Size: 8, Color: corPrimaria}
	return row.New(6).Add(
		col.New(2).Add(text.New("Qtd", estilo)),
		col.New(5).Add(text.New("Item", estilo)),
		col.New(2).Add(text.New("Preço", alinhaDireita(estilo))),
		col.New(3).Add(text.New("Subtotal", alinhaDireita(estilo))),
	)
}

func tabelaItensRows(itens []entity.ItemPedido) []core.Row {
	rows := make([]core.Row, 0, len(itens))
	for _, it := range itens {
		subtotal := it.Preco.Mul(decimal.NewFromInt(int64(it.Quantidade)))
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantidade), props.Text{Size: 8})),
			col.New(5).Add(text.New(it.Nome, props.Text{Size: 8})),
			col.New(2).Add(text.New("R$ "+it.Preco.StringFixed(2), alinhaDireita(props.Text{Size: 8}))),
			col.New(3).Add(text.New("R$ "+subtotal.StringFixed(2), alinhaDireita(props.Text{Size: 8}))),
		))
	}
	return rows
}

func totalRow(p *entity.Pedido) core.Row {
	return row.New(10).Add(
		col.New(7).Add(
			text.New("Status: "+p.Status, props.Text{Size: 9, Top: 2, Color: corCinza}),
		),
		col.New(5).Add(
			text.New("TOTAL: R$ "+p.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1, Color: corPrimaria,
			}),
		),
	)
}

func comentariosRow(p *entity.Pedido) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Comentários: "+p.Comentarios, props.Text{Size: 8, Top: 1, Color: corCinza}),
		),
	)
}

func alinhaDireita(t props.Text) props.Text {
	t.Align = align.Right
	return t
}
