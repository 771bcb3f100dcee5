package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create performer: %w", DomainRule("performerType", "DJ only"))

	assert.True(t, Is(err, KindDomainRule))
	assert.False(t, Is(err, KindValidation))

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, "performerType", appErr.Field)
	assert.Equal(t, CodeDomainRule, appErr.Code)
}

func TestPersistenceKeepsCause(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := Persistence(cause.Error(), cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "duplicate key value")
}

func TestMissingRequiredFieldMessage(t *testing.T) {
	err := MissingRequiredField("profileImageUrl")
	assert.Equal(t, "profileImageUrl is required", err.Error())
	assert.Equal(t, KindValidation, err.Kind)
}
