// Package token decodifica o payload de um JWT emitido pelo serviço de usuários
// SEM validar a assinatura. O gateway não é o emissor nem o verificador do token;
// quem rejeita tokens inválidos é o próprio serviço. Aqui os claims servem apenas
// para exibição e roteamento (id, nome, papel do usuário).
package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims campos de interesse extraídos do payload do token.
type Claims struct {
	UsuarioID string
	Nome      string
	Email     string
	Papel     string
}

// DecodePayload decodifica o segmento de payload do token sem verificar a
// assinatura. Os serviços do Night Out não são consistentes nos nomes dos
// claims, então cada campo é procurado em mais de uma chave.
func DecodePayload(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("token: payload ilegível: %w", err)
	}

	return &Claims{
		UsuarioID: primeiraString(claims, "sub", "id", "userId", "user_id", "usuarioId"),
		Nome:      primeiraString(claims, "name", "nome"),
		Email:     primeiraString(claims, "email"),
		Papel:     primeiraString(claims, "role", "tipo", "papel", "tipoUsuario"),
	}, nil
}

// primeiraString devolve o primeiro claim presente e não vazio entre as chaves dadas.
func primeiraString(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v, ok := claims[k]; ok {
			switch s := v.(type) {
			case string:
				if s != "" {
					return s
				}
			case float64:
				// ids numéricos viram string para uso uniforme
				return fmt.Sprintf("%.0f", s)
			}
		}
	}
	return ""
}
