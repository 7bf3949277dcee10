package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type regionQuery struct {
	Region string `validate:"region"`
}

func TestValidator_RegionValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		region  string
		wantErr bool
	}{
		{"inventory", "inventory", false},
		{"misc equip", "misc_equip", false},
		{"forge", "forge", false},
		{"empty allowed", "", false},
		{"case sensitive", "Armor", true},
		{"unknown", "bank", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(regionQuery{Region: tt.region})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Unknown region", FormatValidationError(err)["region"])
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_FormatItemRequest(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		req     FormatItemRequest
		field   string
		wantMsg string
	}{
		{"valid", FormatItemRequest{NetID: 4956, Stack: 1, Prefix: 81}, "", ""},
		{"negative net id allowed", FormatItemRequest{NetID: -23, Stack: 1}, "", ""},
		{"max prefix", FormatItemRequest{NetID: 1, Prefix: 255}, "", ""},
		{"prefix too large", FormatItemRequest{NetID: 1, Prefix: 256}, "prefix", "Must be at most 255"},
		{"negative stack", FormatItemRequest{NetID: 1, Stack: -1}, "stack", "Must be at least 0"},
		{"negative prefix", FormatItemRequest{NetID: 1, Prefix: -1}, "prefix", "Must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, FormatValidationError(err)[tt.field])
		})
	}
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}
