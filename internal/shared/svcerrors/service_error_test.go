package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceError_Constructors(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying")

	tests := []struct {
		name         string
		err          *ServiceError
		wantCategory string
		wantCode     string
		wantStatus   int
		wantInternal bool
	}{
		{
			name:         "invalid argument",
			err:          NewInvalidArgumentError("T_1400", "bad input", cause),
			wantCategory: "invalid_argument",
			wantCode:     "T_1400",
			wantStatus:   400,
		},
		{
			name:         "not found",
			err:          NewNotFoundError("T_1404", "missing", cause),
			wantCategory: "not_found",
			wantCode:     "T_1404",
			wantStatus:   404,
		},
		{
			name:         "failed precondition",
			err:          NewFailedPreconditionError("T_1422", "cannot derive", nil),
			wantCategory: "failed_precondition",
			wantCode:     "T_1422",
			wantStatus:   422,
		},
		{
			name:         "internal",
			err:          NewInternalError("T_9000", cause),
			wantCategory: "internal",
			wantCode:     "T_9000",
			wantStatus:   500,
			wantInternal: true,
		},
		{
			name:         "internal undefined",
			err:          NewInternalErrorUndefined(cause),
			wantCategory: "internal",
			wantCode:     "SYS_9001",
			wantStatus:   500,
			wantInternal: true,
		},
		{
			name:         "internal panic",
			err:          NewInternalErrorPanic(cause),
			wantCategory: "internal",
			wantCode:     "SYS_9000",
			wantStatus:   500,
			wantInternal: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCategory, tt.err.Category)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HttpStatusCode)
			assert.Equal(t, tt.wantInternal, tt.err.IsInternalError())
		})
	}
}

func TestServiceError_ErrorString(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("T_1404", "input file does not exist", nil)
	assert.Equal(t, "T_1404: input file does not exist", err.Error())
}

func TestServiceError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	err := NewInternalError("T_9000", cause)

	assert.ErrorIs(t, err, cause)
}

func TestAsServiceError(t *testing.T) {
	t.Parallel()

	t.Run("direct service error", func(t *testing.T) {
		t.Parallel()
		original := NewInvalidArgumentError("T_1400", "bad", nil)
		svcErr, ok := AsServiceError(original)
		require.True(t, ok)
		assert.Same(t, original, svcErr)
	})

	t.Run("wrapped service error", func(t *testing.T) {
		t.Parallel()
		original := NewNotFoundError("T_1404", "missing", nil)
		wrapped := fmt.Errorf("run failed: %w", original)
		svcErr, ok := AsServiceError(wrapped)
		require.True(t, ok)
		assert.Same(t, original, svcErr)
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()
		svcErr, ok := AsServiceError(errors.New("plain"))
		assert.False(t, ok)
		assert.Nil(t, svcErr)
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		svcErr, ok := AsServiceError(nil)
		assert.False(t, ok)
		assert.Nil(t, svcErr)
	})
}
