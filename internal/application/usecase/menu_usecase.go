package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cardapio-digital/cardapio-api/internal/application/dto"
	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
	"github.com/cardapio-digital/cardapio-api/internal/domain/repository"
)

// MenuUseCase casos de uso do cardápio.
type MenuUseCase struct {
	repo repository.MenuRepository
}

// NewMenuUseCase constrói o caso de uso.
func NewMenuUseCase(repo repository.MenuRepository) *MenuUseCase {
	return &MenuUseCase{repo: repo}
}

// Criar cria um item do cardápio.
func (uc *MenuUseCase) Criar(ctx context.Context, in dto.CriarItemMenuRequest) (*dto.ItemMenuResponse, error) {
	item := &entity.ItemMenu{
		ID:         uuid.New().String(),
		Nome:       in.Nome,
		Descricao:  in.Descricao,
		Preco:      in.Preco,
		Categoria:  in.Categoria,
		Disponivel: in.Disponivel,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Criar(ctx, item); err != nil {
		return nil, err
	}
	return toItemMenuResponse(item), nil
}

// Listar lista o cardápio, mais recentes primeiro. Se categoria não for vazia,
// filtra sem diferenciar maiúsculas nem acentos ("bebidas" casa "Bébidas").
func (uc *MenuUseCase) Listar(ctx context.Context, categoria string) ([]dto.ItemMenuResponse, error) {
	list, err := uc.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	filtro := normalizar(categoria)
	items := make([]dto.ItemMenuResponse, 0, len(list))
	for _, it := range list {
		if filtro != "" && normalizar(it.Categoria) != filtro {
			continue
		}
		items = append(items, *toItemMenuResponse(it))
	}
	return items, nil
}

// Excluir remove um item do cardápio. Devolve domain.ErrNotFound se não existir.
func (uc *MenuUseCase) Excluir(ctx context.Context, id string) error {
	return uc.repo.Excluir(ctx, id)
}

func toItemMenuResponse(it *entity.ItemMenu) *dto.ItemMenuResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemMenuResponse{
		ID:         it.ID,
		Nome:       it.Nome,
		Descricao:  it.Descricao,
		Preco:      it.Preco,
		Categoria:  it.Categoria,
		Disponivel: it.Disponivel,
		CreatedAt:  it.CreatedAt,
	}
}

// removeAcentos decompõe (NFD), descarta as marcas combinantes e recompõe (NFC).
var removeAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizar prepara categorias para comparação: sem acentos, minúsculas, sem
// espaços nas pontas.
func normalizar(s string) string {
	out, _, err := transform.String(removeAcentos, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
