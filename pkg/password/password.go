// Package password encapsula o hash de senhas com bcrypt: geração com salt
// aleatório por chamada, verificação em tempo constante e detecção de valores
// já em formato hash (para a migração de senhas legadas ser idempotente).
package password

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CustoPadrao fator de custo padrão do bcrypt (10 rounds).
const CustoPadrao = bcrypt.DefaultCost

// prefixoBcrypt marcador de versão dos hashes bcrypt ($2a$, $2b$, $2y$...).
const prefixoBcrypt = "$2"

// Hasher gera hashes bcrypt com um fator de custo configurável.
type Hasher struct {
	custo int
}

// NewHasher constrói o hasher. Custo <= 0 usa CustoPadrao.
func NewHasher(custo int) Hasher {
	if custo <= 0 {
		custo = CustoPadrao
	}
	return Hasher{custo: custo}
}

// Hash gera o hash bcrypt da senha com salt aleatório embutido.
// Só falha em erro interno do bcrypt (custo fora da faixa, entropia indisponível).
func (h Hasher) Hash(senha string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(senha), h.custo)
	if err != nil {
		return "", fmt.Errorf("password: gerar hash: %w", err)
	}
	return string(out), nil
}

// Verify compara a senha com o hash armazenado. Devolve false em qualquer
// divergência, inclusive formato desconhecido — sem distinguir os casos.
func Verify(senha, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

// LooksHashed indica se o valor já está em formato bcrypt (prefixo "$2").
// Comportamento herdado e aceito: uma senha em texto plano que por coincidência
// comece com "$2" também é tratada como hash e pulada na migração.
func LooksHashed(v string) bool {
	return strings.HasPrefix(v, prefixoBcrypt)
}
