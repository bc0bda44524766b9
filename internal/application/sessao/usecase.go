// Package sessao gerencia a identidade assinada do gateway: login contra o
// serviço de usuários, leitura do usuário corrente e encerramento da sessão.
package sessao

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/entity"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/papel"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/infrastructure/upstream"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/pkg/logger"
	pkgtoken "github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/pkg/token"
)

// camposToken nomes possíveis do campo de token no corpo de login; os
// serviços não são consistentes entre versões.
var camposToken = []string{"token", "accessToken", "access_token", "jwt"}

// Servico caso de uso de sessão.
type Servico struct {
	http    ClienteHTTP
	armazem Armazem
	log     *logger.Logger
}

// NovoServico constrói o caso de uso.
func NovoServico(http ClienteHTTP, armazem Armazem, log *logger.Logger) *Servico {
	return &Servico{http: http, armazem: armazem, log: log}
}

// Login autentica {email, senha} no serviço de usuários e persiste a sessão.
//
//   - resposta não 2xx vira ErrCredenciaisInvalidas com a mensagem do servidor
//     (ou o fallback genérico do cliente upstream);
//   - resposta 2xx sem token em nenhum dos campos conhecidos é
//     ErrRespostaMalformada;
//   - se o corpo não traz o id do usuário, os dados vêm do payload do próprio
//     token (decodificado sem verificação de assinatura; uso só de exibição
//     e roteamento).
func (s *Servico) Login(ctx context.Context, email, senha string) (entity.Sessao, error) {
	if email == "" || senha == "" {
		return entity.Sessao{}, domain.ErrEntradaInvalida
	}

	corpo := map[string]string{"email": email, "senha": senha}
	var resposta map[string]interface{}
	if err := s.http.Fazer(ctx, http.MethodPost, "/auth/login", corpo, &resposta); err != nil {
		var upErr *upstream.Erro
		if errors.As(err, &upErr) {
			return entity.Sessao{}, fmt.Errorf("%w: %s", domain.ErrCredenciaisInvalidas, upErr.Mensagem)
		}
		return entity.Sessao{}, err
	}

	tok := extrairToken(resposta)
	if tok == "" {
		return entity.Sessao{}, domain.ErrRespostaMalformada
	}

	usuario := usuarioDoCorpo(resposta)
	if usuario.ID == "" {
		// corpo incompleto: reconstrói do payload do token
		if claims, err := pkgtoken.DecodePayload(tok); err == nil {
			if usuario.ID == "" {
				usuario.ID = claims.UsuarioID
			}
			if usuario.Nome == "" {
				usuario.Nome = claims.Nome
			}
			if usuario.Email == "" {
				usuario.Email = claims.Email
			}
			if usuario.Papel == "" {
				usuario.Papel = papel.Normalizar(claims.Papel)
			}
		}
	}
	if usuario.Email == "" {
		usuario.Email = email
	}
	if usuario.Papel == "" {
		usuario.Papel = papel.Cliente
	}

	sess := entity.Sessao{Token: tok, Usuario: usuario}
	if err := s.armazem.Salvar(sess); err != nil {
		return entity.Sessao{}, fmt.Errorf("sessao: persistir: %w", err)
	}

	s.log.Info().Str("usuario", usuario.ID).Str("papel", string(usuario.Papel)).Msg("sessão aberta")
	return sess, nil
}

// UsuarioAtual devolve o usuário persistido, ou registro vazio se ausente ou
// ilegível. Nunca erra.
func (s *Servico) UsuarioAtual() entity.Usuario {
	sess, err := s.armazem.Carregar()
	if err != nil {
		return entity.Usuario{}
	}
	return sess.Usuario
}

// Sessao devolve a sessão persistida (zero quando não há).
func (s *Servico) Sessao() entity.Sessao {
	sess, err := s.armazem.Carregar()
	if err != nil {
		return entity.Sessao{}
	}
	return sess
}

// Token devolve o token persistido, vazio quando não há sessão.
func (s *Servico) Token() string {
	return s.Sessao().Token
}

// AtualizarUsuario regrava os campos de exibição do usuário da sessão depois
// de uma edição de perfil aceita pelo serviço de usuários. Sem sessão aberta é
// ErrSemSessao; campos vazios mantêm o valor corrente.
func (s *Servico) AtualizarUsuario(nome, email string) (entity.Usuario, error) {
	sess, err := s.armazem.Carregar()
	if err != nil {
		return entity.Usuario{}, err
	}
	if !sess.Autenticada() {
		return entity.Usuario{}, domain.ErrSemSessao
	}
	if nome != "" {
		sess.Usuario.Nome = nome
	}
	if email != "" {
		sess.Usuario.Email = email
	}
	if err := s.armazem.Salvar(sess); err != nil {
		return entity.Usuario{}, fmt.Errorf("sessao: persistir: %w", err)
	}
	return sess.Usuario, nil
}

// Logout limpa o estado persistido. A sessão que havia não é consultada.
func (s *Servico) Logout() error {
	return s.armazem.Limpar()
}

// extrairToken varre os nomes de campo conhecidos na ordem declarada.
func extrairToken(corpo map[string]interface{}) string {
	for _, campo := range camposToken {
		if v, ok := corpo[campo].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// usuarioDoCorpo monta o usuário com o que o corpo de login oferecer.
func usuarioDoCorpo(corpo map[string]interface{}) entity.Usuario {
	u := entity.Usuario{}
	if v, ok := corpo["id"].(string); ok {
		u.ID = v
	} else if v, ok := corpo["id"].(float64); ok {
		u.ID = fmt.Sprintf("%.0f", v)
	}
	if v, ok := corpo["nome"].(string); ok {
		u.Nome = v
	} else if v, ok := corpo["name"].(string); ok {
		u.Nome = v
	}
	if v, ok := corpo["email"].(string); ok {
		u.Email = v
	}
	for _, campo := range []string{"tipo", "role", "papel", "tipoUsuario"} {
		if v, ok := corpo[campo].(string); ok && v != "" {
			u.Papel = papel.Normalizar(v)
			break
		}
	}
	return u
}
