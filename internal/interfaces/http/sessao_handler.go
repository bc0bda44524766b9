package http

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/dto"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/sessao"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain"
)

// SessaoHandler maneja login, logout e a identidade corrente.
type SessaoHandler struct {
	uc       *sessao.Servico
	registro sessao.ClienteHTTP
}

// NewSessaoHandler constrói o handler. O cliente upstream é usado direto no
// registro, que é um repasse sem estado local.
func NewSessaoHandler(uc *sessao.Servico, registro sessao.ClienteHTTP) *SessaoHandler {
	return &SessaoHandler{uc: uc, registro: registro}
}

// Login godoc
// @Summary      Abrir sessão
// @Tags         sessao
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciais"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *SessaoHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	sess, err := h.uc.Login(c.UserContext(), in.Email, in.Senha)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrCredenciaisInvalidas):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: err.Error()})
		case errors.Is(err, domain.ErrRespostaMalformada):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM_MALFORMED", Message: err.Error()})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: err.Error()})
		}
	}
	return c.JSON(dto.LoginResponse{Token: sess.Token, Usuario: dto.ToUsuarioResponse(sess.Usuario)})
}

// Registro godoc
// @Summary      Cadastrar usuário
// @Tags         sessao
// @Accept       json
// @Produce      json
// @Param        body  body  map[string]interface{}  true  "Dados do cadastro, com tipoUsuario"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /register [post]
func (h *SessaoHandler) Registro(c *fiber.Ctx) error {
	var in map[string]interface{}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	var criado map[string]interface{}
	if err := h.registro.Fazer(c.UserContext(), http.MethodPost, "/auth/register", in, &criado); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(criado)
}

// Logout godoc
// @Summary      Encerrar sessão
// @Tags         sessao
// @Success      204
// @Router       /logout [post]
func (h *SessaoHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Identidade da sessão corrente
// @Tags         sessao
// @Produce      json
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /me [get]
func (h *SessaoHandler) Me(c *fiber.Ctx) error {
	sess := h.uc.Sessao()
	if !sess.Autenticada() {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "nenhuma sessão aberta"})
	}
	return c.JSON(dto.ToUsuarioResponse(sess.Usuario))
}

// PaginaLogin página pública de login; existe para a guarda ter o que servir
// e redirecionar.
func (h *SessaoHandler) PaginaLogin(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"pagina": "login"})
}

// PaginaRegistro página pública de cadastro.
func (h *SessaoHandler) PaginaRegistro(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"pagina": "register", "papeis": []string{"CLIENTE", "ARTISTA", "CASASHOW"}})
}
