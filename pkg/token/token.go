// Package token gera os bearer tokens opacos usados como chave de sessão.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tamanhoBytes 32 bytes = 256 bits de entropia.
const tamanhoBytes = 32

// Nova gera um token aleatório criptograficamente seguro, codificado em hex.
func Nova() (string, error) {
	b := make([]byte, tamanhoBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("token: gerar aleatório: %w", err)
	}
	return hex.EncodeToString(b), nil
}
