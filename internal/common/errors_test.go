package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"validation", ErrValidation, http.StatusBadRequest},
		{"bad request", ErrBadRequest, http.StatusBadRequest},
		{"conflict maps to 400", ErrConflict, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("context: %w", ErrNotFound), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusFromError(tt.err); got != tt.want {
				t.Errorf("HTTPStatusFromError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAPIErrorCarriesMessageAndSentinel(t *testing.T) {
	err := NotFoundError("Membro não encontrado.")
	if err.Error() != "Membro não encontrado." {
		t.Errorf("message = %q", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("should match ErrNotFound")
	}
	if HTTPStatusFromError(err) != http.StatusNotFound {
		t.Error("should map to 404")
	}
}
