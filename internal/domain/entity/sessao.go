package entity

import "time"

// Sessao representa uma sessão emitida no login. O token opaco é a chave
// primária; ExpiresAt é absoluto, em milissegundos epoch. Um token é válido
// se e somente se a linha existe E o instante atual é anterior a ExpiresAt.
type Sessao struct {
	Token     string
	UsuarioID string
	ExpiresAt int64 // epoch millis
}

// Expirada indica se a sessão já passou do prazo no instante dado.
func (s Sessao) Expirada(agora time.Time) bool {
	return s.ExpiresAt <= agora.UnixMilli()
}

// SessaoComUsuario resultado do join sessão + usuário dono, usado na
// autenticação de cada requisição protegida.
type SessaoComUsuario struct {
	Sessao  Sessao
	Usuario Usuario
}
