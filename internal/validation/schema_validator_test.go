package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"net_id": {"type": "integer"},
		"max_stack": {"type": "integer", "minimum": 0}
	},
	"required": ["net_id"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator(map[string][]byte{"item.schema.json": []byte(testSchema)})

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid", data: `{"net_id": 1, "max_stack": 9999}`},
		{name: "optional field omitted", data: `{"net_id": 1}`},
		{name: "missing required", data: `{"max_stack": 1}`, errorMsg: "required"},
		{name: "wrong type", data: `{"net_id": "one"}`, errorMsg: "/net_id"},
		{name: "below minimum", data: `{"net_id": 1, "max_stack": -1}`, errorMsg: "minimum"},
		{name: "invalid json", data: `{"net_id": `, errorMsg: "failed to parse JSON data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "item.schema.json")
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := NewSchemaValidator(nil)

	err := v.ValidateBytes([]byte(`{}`), "missing.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}
