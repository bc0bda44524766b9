package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/rotas"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/sessao"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/entity"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain/papel"
)

// Locals keys preenchidas pela guarda em Fiber.
const (
	LocalUsuario   = "usuario"
	LocalPapel     = "papel"
	LocalRequestID = "request_id"
)

// RequestID garante um id de correlação por requisição, gerando um quando o
// chamador não manda X-Request-ID.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}

// GuardaMiddleware reavalia a política de navegação a cada requisição: sem
// sessão só passam os caminhos públicos; com sessão, caminhos públicos e fora
// do conjunto do papel redirecionam para o caminho inicial. Quando a guarda
// permite, o usuário e o papel da sessão ficam em c.Locals.
func GuardaMiddleware(guarda *rotas.Guarda, sess *sessao.Servico) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := sess.Sessao()
		p := papel.Normalizar(string(s.Usuario.Papel))
		d := guarda.Avaliar(s.Autenticada(), p, c.Path())
		if !d.Permitir {
			return c.Redirect(d.RedirecionarPara, fiber.StatusFound)
		}
		c.Locals(LocalUsuario, s.Usuario)
		c.Locals(LocalPapel, p)
		return c.Next()
	}
}

// GetUsuario devolve o usuário da sessão posto pela guarda.
func GetUsuario(c *fiber.Ctx) entity.Usuario {
	v := c.Locals(LocalUsuario)
	if v == nil {
		return entity.Usuario{}
	}
	u, _ := v.(entity.Usuario)
	return u
}

// GetPapel devolve o papel canônico posto pela guarda.
func GetPapel(c *fiber.Ctx) papel.Papel {
	v := c.Locals(LocalPapel)
	if v == nil {
		return papel.Cliente
	}
	p, _ := v.(papel.Papel)
	return p
}
