package commerce

import (
	"errors"
	"fmt"
)

// Codes d'erreur métier, traduits en statuts HTTP par les handlers.
const (
	ECONFLICT     = "conflict"
	EFORBIDDEN    = "forbidden"
	EINTERNAL     = "internal"
	EINVALID      = "invalid"
	ENOTFOUND     = "not_found"
	EUNAUTHORIZED = "unauthorized"
)

// Error porte un code métier et un message destiné au client.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf construit une erreur métier avec un message formaté
func Errorf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Internal enveloppe une erreur d'infrastructure en conservant le détail
// pour le diagnostic (frontière interne, pas une API publique durcie).
func Internal(msg string, err error) *Error {
	return &Error{Code: EINTERNAL, Message: msg, Err: err}
}

// ErrorCode retourne le code métier d'une erreur, EINTERNAL par défaut.
func ErrorCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage retourne le message client d'une erreur
func ErrorMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "une erreur est survenue"
}

var (
	ErrUnauthorized = &Error{Code: EUNAUTHORIZED, Message: "vous devez être connecté"}
	ErrForbidden    = &Error{Code: EFORBIDDEN, Message: "non autorisé"}
)
