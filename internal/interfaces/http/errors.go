package http

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/domain"
)

// StatusClientClosedRequest no existe en net/http; es la convención de nginx.
const StatusClientClosedRequest = 499

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// decimal.Decimal se valida como número (gte=0, gt=0).
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	// Los errores por campo usan el nombre JSON.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// fieldsError lleva los campos que fallaron la validación.
type fieldsError struct {
	fields map[string]string
}

func (e *fieldsError) Error() string { return "validación fallida" }

// bindAndValidate decodifica el JSON del cuerpo y aplica las etiquetas validate.
func bindAndValidate(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return domain.Validation("cuerpo inválido: %s", err.Error())
	}
	return validateStruct(req)
}

// bindQuery decodifica y valida parámetros de consulta.
func bindQuery(c *fiber.Ctx, req any) error {
	if err := c.QueryParser(req); err != nil {
		return domain.Validation("parámetros de consulta inválidos")
	}
	return validateStruct(req)
}

func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := strings.TrimPrefix(fe.Namespace(), reflect.TypeOf(req).Elem().Name()+".")
		fields[key] = fe.Tag()
	}
	return &fieldsError{fields: fields}
}

// respondError traduce errores de la aplicación a HTTP. Los mensajes indican
// si el problema fue de captura de datos o del backend.
func respondError(c *fiber.Ctx, err error) error {
	status, body := errorResponse(err)
	return c.Status(status).JSON(body)
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	var fe *fieldsError
	if errors.As(err, &fe) {
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{
			Code: "VALIDATION", Message: "revise los datos ingresados", Fields: fe.fields,
		}
	}
	switch {
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, dto.ErrorResponse{Code: "CANCELLED", Message: "la solicitud fue cancelada por el cliente"}
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, dto.ErrorResponse{Code: "TIMEOUT", Message: "el servidor tardó demasiado en responder; intente de nuevo"}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Message: domain.MessageOf(err)}
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: domain.MessageOf(err)}
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: domain.MessageOf(err)}
	}

	var de *domain.Error
	if !errors.As(err, &de) {
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"}
	}
	switch de.Kind {
	case domain.KindValidation:
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: de.Message}
	case domain.KindNotFound:
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: de.Message}
	case domain.KindConflict:
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: de.Message}
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"}
	case domain.KindForbidden:
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: de.Message}
	case domain.KindExternal:
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "EXTERNAL_SERVICE", Message: de.Message}
	default:
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{
			Code: "PERSISTENCE", Message: de.Message + "; el problema es del servidor, intente más tarde",
		}
	}
}

// ErrorHandler es el fiber.ErrorHandler de la aplicación.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "HTTP_ERROR"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		case fiber.StatusBadRequest:
			code = "BAD_REQUEST"
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return respondError(c, err)
}
