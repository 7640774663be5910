package validator

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/clash_config_schema.json
var clashConfigSchema string

// ValidateConfigWithSchema validates a parsed configuration against
// the embedded Clash configuration schema. Unlike the shape checks,
// schema violations are hard failures.
func ValidateConfigWithSchema(config map[string]any) error {
	return validateWithSchema(config, clashConfigSchema, "Clash configuration")
}

// ValidateStrict parses text and validates it against the embedded
// schema, surfacing any violation as an invalid Result.
func ValidateStrict(text string) Result {
	result := Validate(text)
	if !result.Valid {
		return result
	}

	var config map[string]any
	if err := yaml.Unmarshal([]byte(text), &config); err != nil {
		return Result{Message: "cannot parse configuration"}
	}

	if err := ValidateConfigWithSchema(config); err != nil {
		return Result{Message: fmt.Sprintf("schema violation: %v", err)}
	}

	return Result{Valid: true}
}

// validateWithSchema validates a configuration map against a JSON
// schema document.
func validateWithSchema(config map[string]any, schemaJSON, context string) error {
	// Create a new compiler
	compiler := jsonschema.NewCompiler()

	// Parse the schema JSON first
	var schemaDoc any
	if err := json.Unmarshal([]byte(schemaJSON), &schemaDoc); err != nil {
		return fmt.Errorf("schema validation error for %s: failed to parse schema JSON: %w", context, err)
	}

	// Add the schema as a resource with a temporary URL
	schemaURL := "http://clashkit.dev/schema.json"
	if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
		return fmt.Errorf("schema validation error for %s: failed to add schema resource: %w", context, err)
	}

	// Compile the schema
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("schema validation error for %s: %w", context, err)
	}

	// Round-trip through JSON to normalize YAML-decoded types for
	// validation; nil configs validate as an empty object.
	configToValidate := config
	if configToValidate == nil {
		configToValidate = make(map[string]any)
	}

	configJSON, err := json.Marshal(configToValidate)
	if err != nil {
		return fmt.Errorf("schema validation error for %s: failed to marshal configuration: %w", context, err)
	}

	var normalized any
	if err := json.Unmarshal(configJSON, &normalized); err != nil {
		return fmt.Errorf("schema validation error for %s: failed to unmarshal configuration: %w", context, err)
	}

	return schema.Validate(normalized)
}
