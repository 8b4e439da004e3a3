// Package auth implementa o subsistema de autenticação: registro, login com
// emissão de sessão, verificação do bearer token a cada requisição protegida,
// logout e a checagem de papel exigido pelas rotas administrativas.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cardapio-digital/cardapio-api/internal/application/dto"
	"github.com/cardapio-digital/cardapio-api/internal/domain"
	"github.com/cardapio-digital/cardapio-api/internal/domain/entity"
	"github.com/cardapio-digital/cardapio-api/internal/domain/repository"
	"github.com/cardapio-digital/cardapio-api/pkg/logger"
	"github.com/cardapio-digital/cardapio-api/pkg/password"
	"github.com/cardapio-digital/cardapio-api/pkg/token"
)

// TTLPadrao validade padrão das sessões (2 horas).
const TTLPadrao = 2 * time.Hour

// UseCase casos de uso de autenticação.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	sessaoRepo  repository.SessaoRepository
	hasher      password.Hasher
	ttl         time.Duration
	log         *logger.Logger
}

// NewUseCase constrói o caso de uso de auth. TTL <= 0 usa TTLPadrao.
func NewUseCase(usuarioRepo repository.UsuarioRepository, sessaoRepo repository.SessaoRepository, hasher password.Hasher, ttl time.Duration, log *logger.Logger) *UseCase {
	if ttl <= 0 {
		ttl = TTLPadrao
	}
	return &UseCase{usuarioRepo: usuarioRepo, sessaoRepo: sessaoRepo, hasher: hasher, ttl: ttl, log: log}
}

// Autenticado resultado da autenticação de uma requisição: o usuário dono da
// sessão, o token apresentado e a validade restante.
type Autenticado struct {
	Usuario   entity.Usuario
	Token     string
	ExpiresAt int64 // epoch millis
}

// Registrar cria um usuário: hasheia a senha com bcrypt e persiste.
// Devolve domain.ErrDuplicate se o nome já existir.
func (uc *UseCase) Registrar(ctx context.Context, in dto.RegistroRequest) (*entity.Usuario, error) {
	existente, err := uc.usuarioRepo.BuscarPorNome(ctx, in.Nome)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := uc.hasher.Hash(in.Senha)
	if err != nil {
		return nil, err
	}
	u := &entity.Usuario{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Senha:     hash,
		Tipo:      in.Tipo,
		CreatedAt: time.Now(),
	}
	if err := uc.usuarioRepo.Criar(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifica nome/senha e emite uma nova sessão. Usuário inexistente e
// senha errada devolvem o mesmo domain.ErrCredenciaisInvalidas, para não
// revelar se o nome existe. O login só é reportado como sucesso depois da
// sessão persistida: um token emitido mas não gravado seria inverificável.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.BuscarPorNome(ctx, in.Nome)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	if !password.Verify(in.Senha, u.Senha) {
		return nil, domain.ErrCredenciaisInvalidas
	}
	sessao, err := uc.emitirSessao(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Nome:      u.Nome,
		Tipo:      u.Tipo,
		Token:     sessao.Token,
		ExpiresAt: sessao.ExpiresAt,
	}, nil
}

// emitirSessao gera um token aleatório, calcula a expiração (agora + TTL) e
// persiste a linha no Session Store.
func (uc *UseCase) emitirSessao(ctx context.Context, usuarioID string) (*entity.Sessao, error) {
	t, err := token.Nova()
	if err != nil {
		return nil, err
	}
	s := &entity.Sessao{
		Token:     t,
		UsuarioID: usuarioID,
		ExpiresAt: time.Now().Add(uc.ttl).UnixMilli(),
	}
	if err := uc.sessaoRepo.Criar(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Autenticar valida o valor bruto do header Authorization contra o Session
// Store e resolve o usuário dono. Leitura fresca a cada chamada, sem cache:
// logout e expiração valem já na requisição seguinte.
//
//   - Header fora do padrão "Bearer <token>": domain.ErrTokenAusente.
//   - Token sem linha no store: domain.ErrSessaoInvalida.
//   - Sessão vencida: remove a linha (best-effort) e devolve
//     domain.ErrSessaoExpirada; a próxima tentativa com o mesmo token cai em
//     ErrSessaoInvalida.
func (uc *UseCase) Autenticar(ctx context.Context, authHeader string) (*Autenticado, error) {
	t, ok := extrairBearer(authHeader)
	if !ok {
		return nil, domain.ErrTokenAusente
	}
	sc, err := uc.sessaoRepo.BuscarComUsuario(ctx, t)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, domain.ErrSessaoInvalida
	}
	if sc.Sessao.Expirada(time.Now()) {
		// Remoção preguiçosa: falha na limpeza não muda o resultado, que já é
		// rejeição do token.
		if err := uc.sessaoRepo.Excluir(ctx, t); err != nil {
			uc.log.Warn().Err(err).Msg("falha ao remover sessão expirada")
		}
		return nil, domain.ErrSessaoExpirada
	}
	return &Autenticado{
		Usuario:   sc.Usuario,
		Token:     sc.Sessao.Token,
		ExpiresAt: sc.Sessao.ExpiresAt,
	}, nil
}

// Logout remove a sessão do token apresentado. Sempre bem-sucedido: token
// ausente, malformado ou já removido não é erro (idempotente).
func (uc *UseCase) Logout(ctx context.Context, authHeader string) {
	t, ok := extrairBearer(authHeader)
	if !ok {
		return
	}
	if err := uc.sessaoRepo.Excluir(ctx, t); err != nil {
		uc.log.Warn().Err(err).Msg("falha ao remover sessão no logout")
	}
}

// ExigirTipo verifica se o usuário autenticado tem o tipo exigido. Função pura
// sobre o principal já resolvido: falha é domain.ErrAcessoNegado (o chamador é
// conhecido, mas não tem permissão — distinto de falha de autenticação).
func ExigirTipo(u *entity.Usuario, tipo string) error {
	if u == nil || u.Tipo != tipo {
		return domain.ErrAcessoNegado
	}
	return nil
}

// extrairBearer extrai o token do header "Authorization: Bearer <token>".
func extrairBearer(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	t := strings.TrimSpace(parts[1])
	if t == "" {
		return "", false
	}
	return t, true
}
