package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator_Bootstrap(t *testing.T) {
	validator := NewSchemaValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid document",
			data: `{"admin": "ops", "team_wallet": "treasury", "platform_fee": 500,
				"create_first_round": true, "credit": [{"account": "alice", "amount": 10}]}`,
		},
		{
			name: "minimal document",
			data: `{"admin": "ops", "team_wallet": "treasury"}`,
		},
		{
			name:      "missing required field",
			data:      `{"admin": "ops"}`,
			wantError: true,
			errorMsg:  "team_wallet",
		},
		{
			name:      "wrong type",
			data:      `{"admin": "ops", "team_wallet": "t", "platform_fee": "five"}`,
			wantError: true,
			errorMsg:  "/platform_fee",
		},
		{
			name:      "unknown key",
			data:      `{"admin": "ops", "team_wallet": "t", "platfrom_fee": 5}`,
			wantError: true,
			errorMsg:  "platfrom_fee",
		},
		{
			name:      "zero credit",
			data:      `{"admin": "ops", "team_wallet": "t", "credit": [{"account": "a", "amount": 0}]}`,
			wantError: true,
			errorMsg:  "/credit/0/amount",
		},
		{
			name:      "invalid JSON",
			data:      `{"admin": `,
			wantError: true,
			errorMsg:  "failed to parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), SchemaBootstrap)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateValue(t *testing.T) {
	validator := NewSchemaValidator()

	// TOML decodes integers as int64
	doc := map[string]interface{}{
		"admin":        "ops",
		"team_wallet":  "treasury",
		"platform_fee": int64(250),
		"credit":       []map[string]interface{}{{"account": "bob", "amount": int64(5)}},
	}
	assert.NoError(t, validator.ValidateValue(doc, SchemaBootstrap))

	doc["credit"] = []map[string]interface{}{{"account": "", "amount": int64(5)}}
	assert.Error(t, validator.ValidateValue(doc, SchemaBootstrap))
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "missing.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}
