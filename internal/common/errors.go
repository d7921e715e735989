package common

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrBadRequest     = errors.New("bad request")
	ErrConflict       = errors.New("resource conflict") // e.g., username already exists
	ErrValidation     = errors.New("validation failed")
	ErrInternalServer = errors.New("internal server error")
)

// apiError carries a user-facing message while remaining matchable against
// the sentinel taxonomy via errors.Is.
type apiError struct {
	sentinel error
	message  string
}

func (e *apiError) Error() string { return e.message }
func (e *apiError) Unwrap() error { return e.sentinel }

func ValidationError(message string) error   { return &apiError{ErrValidation, message} }
func NotFoundError(message string) error     { return &apiError{ErrNotFound, message} }
func UnauthorizedError(message string) error { return &apiError{ErrUnauthorized, message} }
func ConflictError(message string) error     { return &apiError{ErrConflict, message} }

// HTTPStatusFromError maps domain errors to HTTP status codes.
//
// Duplicate-key conflicts map to 400, not 409: the API documents duplicate
// username/email as a client error with an "already exists" message.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrValidation) || errors.Is(err, ErrConflict) {
		return http.StatusBadRequest
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // unique violation
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}
