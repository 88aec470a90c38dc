package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica un error de dominio para que la capa HTTP distinga
// errores de captura (validación) de fallas del backend.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindPersistence  Kind = "persistence"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindExternal     Kind = "external"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = &Error{Kind: KindNotFound, Message: "recurso no encontrado"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "usuario no encontrado"}
	ErrEmailAlreadyExists = &Error{Kind: KindConflict, Message: "el email ya está registrado"}
	ErrInvalidInput       = &Error{Kind: KindValidation, Message: "entrada inválida"}
	ErrDuplicate          = &Error{Kind: KindValidation, Message: "recurso duplicado"}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized, Message: "no autorizado"}
	ErrForbidden          = &Error{Kind: KindForbidden, Message: "acceso denegado"}
	ErrConflict           = &Error{Kind: KindConflict, Message: "conflicto con el estado actual"}
	ErrInsufficientStock  = &Error{Kind: KindConflict, Message: "stock insuficiente"}
	ErrPersistence        = &Error{Kind: KindPersistence, Message: "falla del almacenamiento"}
	ErrExternalService    = &Error{Kind: KindExternal, Message: "servicio externo no disponible"}
)

// Error es el error tipado que cruza las capas de aplicación.
// Message es legible para el usuario; Err conserva la causa original.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is compara contra los sentinelas del paquete: dos *Error coinciden si
// comparten Kind y el destino no especifica mensaje distinto.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t == e {
		return true
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

// Validation construye un error de validación con mensaje propio.
// Sigue respondiendo a errors.Is(err, ErrInvalidInput).
func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...), Err: ErrInvalidInput}
}

// DuplicateSKU reporta un SKU ya registrado.
func DuplicateSKU(sku string) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf("el código SKU %q ya existe", sku), Err: ErrDuplicate}
}

// NotFound construye un error de recurso inexistente (ej. producto de una línea de compra).
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...), Err: ErrNotFound}
}

// InsufficientStock reporta una línea de venta sin existencias suficientes.
func InsufficientStock(productName string, available, requested int) error {
	return &Error{
		Kind:    KindConflict,
		Message: fmt.Sprintf("stock insuficiente para %s: disponible %d, solicitado %d", productName, available, requested),
		Err:     ErrInsufficientStock,
	}
}

// Persistence envuelve una falla del almacenamiento indicando la operación.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return &Error{Kind: KindPersistence, Message: "falla del almacenamiento en " + op, Err: errors.Join(ErrPersistence, err)}
}

// External envuelve la falla de un servicio externo (proveedor de IA).
func External(service string, err error) error {
	return &Error{Kind: KindExternal, Message: "el servicio " + service + " no respondió correctamente", Err: errors.Join(ErrExternalService, err)}
}

// KindOf devuelve el Kind del primer *Error en la cadena, o KindPersistence
// para errores desconocidos.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindPersistence
}

// MessageOf devuelve el mensaje legible del primer *Error en la cadena.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
