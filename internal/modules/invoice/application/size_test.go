package application_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invopipe/invoice-ingest/internal/modules/invoice/application"
	"github.com/invopipe/invoice-ingest/internal/modules/invoice/domain"
)

func TestSizeValidator_ExactLimitPasses(t *testing.T) {
	v := application.NewSizeValidator(application.DefaultMaxUploadBytes)
	content := bytes.Repeat([]byte{0x20}, application.DefaultMaxUploadBytes)
	assert.NoError(t, v.Validate(content))
}

func TestSizeValidator_OneByteOverFails(t *testing.T) {
	v := application.NewSizeValidator(application.DefaultMaxUploadBytes)
	content := bytes.Repeat([]byte{0x20}, application.DefaultMaxUploadBytes+1)
	assert.ErrorIs(t, v.Validate(content), domain.ErrFileTooLarge)
}

func TestSizeValidator_SmallLimit(t *testing.T) {
	v := application.NewSizeValidator(4)
	assert.NoError(t, v.Validate([]byte("abcd")))
	assert.ErrorIs(t, v.Validate([]byte("abcde")), domain.ErrFileTooLarge)
}

func TestSizeValidator_DefaultsWhenNonPositive(t *testing.T) {
	v := application.NewSizeValidator(0)
	assert.Equal(t, int64(application.DefaultMaxUploadBytes), v.MaxBytes())

	v = application.NewSizeValidator(-1)
	assert.Equal(t, int64(application.DefaultMaxUploadBytes), v.MaxBytes())
}
