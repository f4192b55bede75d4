package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Jackpot_Go/internal/domain"
)

type TestStruct struct {
	Account domain.Identity `validate:"required,identity"`
	Amount  uint64          `validate:"gt=0"`
}

func TestValidator_IdentityValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		account string
		wantErr bool
	}{
		{"plain", "alice", false},
		{"pubkey style", "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", false},
		{"max length", strings.Repeat("a", MaxIdentityLength), false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxIdentityLength+1), true},
		{"space", "al ice", true},
		{"newline", "alice\n", true},
		{"null byte", "al\x00ice", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(TestStruct{Account: domain.Identity(tt.account), Amount: 1})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_AmountValidation(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(TestStruct{Account: "alice", Amount: 1}))
	assert.Error(t, v.ValidateStruct(TestStruct{Account: "alice", Amount: 0}))
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(TestStruct{Account: "", Amount: 0})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["account"])
	assert.Equal(t, "Must be greater than 0", fields["amount"])

	t.Run("non validator error", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)
		assert.Equal(t, "Invalid request format", fields["error"])
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}

func TestValidator_ConfigInput(t *testing.T) {
	v := GetValidator()

	valid := domain.ConfigInput{Admin: "admin", PlatformFee: 500, TeamWallet: "treasury"}
	assert.NoError(t, v.ValidateStruct(valid))

	tooHigh := valid
	tooHigh.PlatformFee = 10001
	err := v.ValidateStruct(tooHigh)
	require.Error(t, err)
	assert.Equal(t, "Must be at most 10000", FormatValidationError(err)["platformfee"])
}
