package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/application/dto"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/domain"
	"github.com/Desenvolvimento-Web-UNIFOR/night-out-bff/internal/infrastructure/upstream"
)

// respostaUpstream traduz erros vindos dos serviços para o status do gateway:
// 404 do upstream e ErrNaoEncontrado preservam 404, validação vira 400 e o
// resto vira 502 (o gateway não inventa 500 para falha alheia).
func respostaUpstream(c *fiber.Ctx, err error, msg404 string) error {
	var ue *upstream.Erro
	if errors.As(err, &ue) {
		if ue.Status == fiber.StatusNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg404})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: ue.Mensagem})
	}
	switch {
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg404})
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: err.Error()})
	}
}
