package dto

// RegistroRequest entrada de registro: nome, senha e tipo (cliente|admin).
type RegistroRequest struct {
	Nome  string `json:"nome" validate:"required"`
	Senha string `json:"senha" validate:"required"`
	Tipo  string `json:"tipo" validate:"required,oneof=cliente admin"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Nome  string `json:"nome" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

// LoginResponse saída do login: o bearer token recém-emitido e sua validade
// absoluta em milissegundos epoch.
type LoginResponse struct {
	Nome      string `json:"nome"`
	Tipo      string `json:"tipo"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// SessaoResponse saída de GET /api/session/verify.
type SessaoResponse struct {
	Nome      string `json:"nome"`
	Tipo      string `json:"tipo"`
	ExpiresAt int64  `json:"expiresAt"`
}
