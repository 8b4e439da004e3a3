package entity

import "time"

// Tipos válidos para Usuario.
const (
	TipoCliente = "cliente"
	TipoAdmin   = "admin"
)

// TipoValido indica se o tipo pertence ao conjunto fechado {cliente, admin}.
func TipoValido(tipo string) bool {
	return tipo == TipoCliente || tipo == TipoAdmin
}

// Usuario representa um usuário do sistema.
// Nome é único (case-sensitive); Senha guarda sempre o hash bcrypt, nunca o
// texto plano depois de persistido.
type Usuario struct {
	ID        string
	Nome      string
	Senha     string // hash bcrypt
	Tipo      string // cliente, admin
	CreatedAt time.Time
}
