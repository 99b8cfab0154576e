package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAppError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "validation error keeps field details",
			err:         NewFieldError("amount", "must be greater than zero"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Validation failed",
		},
		{
			name:        "wrapped not found",
			err:         fmt.Errorf("lookup: %w", NewNotFoundError("Loan")),
			wantCode:    http.StatusNotFound,
			wantMessage: "Loan not found",
		},
		{
			name:        "integrity error hides detail",
			err:         NewIntegrityError("negative sales aggregate -10"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
		{
			name:        "plain error is masked",
			err:         errors.New("pq: relation does not exist"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetAppError(tt.err)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestIntegrityErrorKeepsDetailInErrorString(t *testing.T) {
	err := NewIntegrityError("net amount mismatch")

	assert.Contains(t, err.Error(), "net amount mismatch")
	assert.Equal(t, "Internal server error", err.Message)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("Transaction")))
	assert.False(t, IsNotFound(ErrForbidden))
	assert.False(t, IsNotFound(errors.New("boom")))
}

func TestIsAppErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("load rule: %w", NewFieldError("rate", "Rate must not be negative"))

	assert.True(t, IsAppError(wrapped))
	assert.False(t, IsAppError(errors.New("boom")))
}
