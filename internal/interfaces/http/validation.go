package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/domain"
)

var validate = newValidator()

// newValidator usa el nombre del tag json (o query) en los mensajes de error.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// validationError resume los errores del validador en un solo ErrInvalidInput.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

// bindBody parsea el JSON del cuerpo y lo valida.
func bindBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: cuerpo inválido", domain.ErrInvalidInput)
	}
	if err := validate.Struct(out); err != nil {
		return validationError(err)
	}
	return nil
}

// bindQuery parsea los query params y los valida. Números mal formados son ErrInvalidInput.
func bindQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		return fmt.Errorf("%w: parámetros inválidos: %v", domain.ErrInvalidInput, err)
	}
	if err := validate.Struct(out); err != nil {
		return validationError(err)
	}
	return nil
}
