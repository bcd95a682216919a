package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDuration(t *testing.T) {
	for _, d := range []int{15, 30, 45, 60, 90, 120} {
		assert.NoError(t, ValidateDuration(d), "duration %d", d)
	}

	for _, d := range []int{0, -15, -30, 10, 17, 31, 100} {
		assert.ErrorIs(t, ValidateDuration(d), ErrInvalidDuration, "duration %d", d)
	}
}

func TestValidateIdentifiers(t *testing.T) {
	t.Run("within limits", func(t *testing.T) {
		assert.NoError(t, ValidateIdentifiers("client-1", "consultation"))
		assert.NoError(t, ValidateIdentifiers(strings.Repeat("a", MaxClientIDLength), strings.Repeat("b", MaxServiceNameLength)))
		assert.NoError(t, ValidateIdentifiers("", ""))
	})

	t.Run("client id too long", func(t *testing.T) {
		err := ValidateIdentifiers(strings.Repeat("a", MaxClientIDLength+1), "consultation")
		assert.ErrorIs(t, err, ErrFieldTooLong)
	})

	t.Run("service name too long", func(t *testing.T) {
		err := ValidateIdentifiers("client-1", strings.Repeat("b", MaxServiceNameLength+1))
		assert.ErrorIs(t, err, ErrFieldTooLong)
	})
}
