package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrTokenAusente         = errors.New("token ausente")
	ErrSessaoInvalida       = errors.New("sessão inválida")
	ErrSessaoExpirada       = errors.New("sessão expirada")
	ErrCredenciaisInvalidas = errors.New("usuário ou senha inválidos")
	ErrAcessoNegado         = errors.New("acesso negado")
)
