package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("a1"))
	assert.NoError(t, ValidateUsername("alice.smith-2"))
	assert.Error(t, ValidateUsername(""))
	assert.Error(t, ValidateUsername("has spaces"))
	assert.Error(t, ValidateUsername(strings.Repeat("x", 51)))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("A"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName(strings.Repeat("x", 51)))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("p"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 73)))
}
