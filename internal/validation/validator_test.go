package validation

import (
	"strings"
	"testing"

	"github.com/grachmannico95/verbs-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidInput(t *testing.T) {
	v := New()
	err := v.Validate(&domain.VerbInput{Name: "run", Translation: "бягам"})
	assert.NoError(t, err)
}

func TestValidate_MissingName(t *testing.T) {
	v := New()

	err := v.Validate(&domain.VerbInput{Translation: "бягам"})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)
	assert.Equal(t, "required", validationErr.Tag)
	assert.Equal(t, 0, validationErr.Row)
}

func TestRow_ReportsRowNumber(t *testing.T) {
	v := New()

	err := v.Row(domain.VerbInput{Name: "run", Translation: strings.Repeat("x", 256)}, 7)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 7, validationErr.Row)
	assert.Equal(t, "translation", validationErr.Field)
	assert.Equal(t, "max", validationErr.Tag)
	assert.Contains(t, err.Error(), "row 7")
}
