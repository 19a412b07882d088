package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies business-rule failures so boundary layers can map them to
// status codes without string matching.
type Kind string

const (
	KindNotFound           Kind = "not_found"
	KindInvalidAssociation Kind = "invalid_association"
	KindConflict           Kind = "conflict"
	KindInvalidState       Kind = "invalid_state"
	KindValidation         Kind = "validation"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func NotFoundErr(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func AssociationErr(code, message string) error {
	return BusinessError{Kind: KindInvalidAssociation, Code: code, Message: message}
}

func ConflictErr(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func InvalidStateErr(code, message string) error {
	return BusinessError{Kind: KindInvalidState, Code: code, Message: message}
}

func ValidationErr(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

func IsBusiness(err error, code string) bool {
	be, ok := AsBusiness(err)
	return ok && be.Code == code
}

func IsKind(err error, kind Kind) bool {
	be, ok := AsBusiness(err)
	return ok && be.Kind == kind
}

// IsExclusionConflict reports whether err is a Postgres exclusion constraint
// violation (SQLSTATE 23P01), raised by the no-overlap constraint on
// appointments when two inserts race past the row-lock check.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
