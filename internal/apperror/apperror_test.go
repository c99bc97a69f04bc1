package apperror

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
		msg  string
	}{
		{"not found", NotFound("product", "p-1"), ErrNotFound, "product p-1: not found"},
		{"stock", InsufficientStock("p-1", 10, 5), ErrInsufficientStock, "product p-1: requested 10, available 5: insufficient stock"},
		{"validation", Validation("quantity must be positive, got %d", 0), ErrValidation, "quantity must be positive, got 0: validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.EqualError(t, tt.err, tt.msg)
			assert.True(t, IsKnown(tt.err))
		})
	}
}

func TestStorageKeepsCause(t *testing.T) {
	err := Storage("insert sale", sql.ErrConnDone)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestStoragePassesThroughKnownKinds(t *testing.T) {
	nf := NotFound("customer", "c-9")
	assert.Same(t, nf, Storage("load customer", nf))
	assert.NoError(t, Storage("noop", nil))
}
