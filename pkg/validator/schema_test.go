package validator

import "testing"

func TestValidateConfigWithSchema(t *testing.T) {
	tests := []struct {
		name    string
		config  map[string]any
		wantErr bool
	}{
		{
			name: "minimal valid config",
			config: map[string]any{
				"port":       7890,
				"socks-port": 7891,
				"mode":       "rule",
				"rules":      []any{"MATCH,DIRECT"},
			},
		},
		{
			name:   "empty config is valid",
			config: map[string]any{},
		},
		{
			name:   "nil config validates as empty object",
			config: nil,
		},
		{
			name: "port must be an integer",
			config: map[string]any{
				"port": "seven-thousand",
			},
			wantErr: true,
		},
		{
			name: "port must be in range",
			config: map[string]any{
				"port": 70000,
			},
			wantErr: true,
		},
		{
			name: "mode must be a known value",
			config: map[string]any{
				"mode": "turbo",
			},
			wantErr: true,
		},
		{
			name: "proxies require name and type",
			config: map[string]any{
				"proxies": []any{
					map[string]any{"server": "example.com"},
				},
			},
			wantErr: true,
		},
		{
			name: "rules must be strings",
			config: map[string]any{
				"rules": []any{42},
			},
			wantErr: true,
		},
		{
			name: "unknown top-level keys are allowed",
			config: map[string]any{
				"profile": map[string]any{"store-selected": true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfigWithSchema(tt.config)

			if tt.wantErr && err == nil {
				t.Error("ValidateConfigWithSchema() error = nil, want schema violation")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateConfigWithSchema() error = %v", err)
			}
		})
	}
}

func TestValidateStrict(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		result := ValidateStrict("port: 7890\nmode: rule\n")
		if !result.Valid {
			t.Errorf("ValidateStrict() = %+v, want valid", result)
		}
	})

	t.Run("schema violation fails", func(t *testing.T) {
		result := ValidateStrict("mode: turbo\n")
		if result.Valid {
			t.Error("ValidateStrict() accepted an unknown mode")
		}
		if result.Message == "" {
			t.Error("ValidateStrict() has no diagnostic for a schema violation")
		}
	})

	t.Run("syntax error short-circuits", func(t *testing.T) {
		result := ValidateStrict("a: [")
		if result.Valid {
			t.Error("ValidateStrict() accepted malformed YAML")
		}
	})
}
