package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// Códigos de error de la API.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION"
	CodeInvalidBody  = "INVALID_BODY"
	CodeDuplicate    = "DUPLICATE"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeMissingToken = "MISSING_TOKEN"
	CodeInvalidToken = "INVALID_TOKEN"
	CodeInternal     = "INTERNAL"
)

// fail responde con status y el cuerpo de error estándar.
func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.NewError(code, message))
}

// respondError traduce errores de dominio a HTTP. Lo no reconocido es 500 y se registra.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, domain.ErrMissingSimulationInput), errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, CodeDuplicate, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, CodeForbidden, err.Error())
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return fail(c, fiber.StatusInternalServerError, CodeInternal, "error interno del servidor")
}

// ErrorHandler manejador global de Fiber: errores de Fiber conservan su status, el resto pasa por respondError.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := CodeInternal
		switch fe.Code {
		case fiber.StatusNotFound:
			code = CodeNotFound
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			code = CodeValidation
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		}
		return fail(c, fe.Code, code, fe.Message)
	}
	return respondError(c, err)
}
