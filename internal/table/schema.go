package table

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// GetSchemaJSON returns the JSON Schema for cloudsh command tables
func GetSchemaJSON() string {
	return schemaJSON
}

// ValidateWithSchema validates a command table file against the JSON
// Schema. TOML tables go through the loader first because gojsonschema
// only consumes JSON-compatible structures.
func ValidateWithSchema(path string, content []byte) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationIssue{},
	}

	var data interface{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationIssue{
				Field:   "syntax",
				Message: fmt.Sprintf("Invalid YAML syntax: %v", err),
			})
			return result, nil
		}
	case ".json":
		if err := json.Unmarshal(content, &data); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationIssue{
				Field:   "syntax",
				Message: fmt.Sprintf("Invalid JSON syntax: %v", err),
			})
			return result, nil
		}
	case ".toml":
		tbl, err := New().LoadBytes(content, "toml")
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationIssue{
				Field:   "syntax",
				Message: fmt.Sprintf("Invalid TOML syntax: %v", err),
			})
			return result, nil
		}
		data = map[string]interface{}{
			"commands":       tableCommandsToMap(tbl),
			"globals":        parametersToMaps(tbl.Globals),
			"output_options": tbl.OutputOptions,
			"output_choices": tbl.OutputChoices,
		}
	default:
		return nil, fmt.Errorf("unsupported file format")
	}

	schemaLoader := gojsonschema.NewStringLoader(GetSchemaJSON())
	documentLoader := gojsonschema.NewGoLoader(data)

	validationResult, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	if !validationResult.Valid() {
		result.Valid = false
		for _, desc := range validationResult.Errors() {
			result.Errors = append(result.Errors, ValidationIssue{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
	}

	return result, nil
}

func tableCommandsToMap(tbl *Table) map[string]interface{} {
	commands := make(map[string]interface{}, len(tbl.Commands))
	for name, cmd := range tbl.Commands {
		entry := map[string]interface{}{}
		if cmd.Description != "" {
			entry["description"] = cmd.Description
		}
		if len(cmd.Parameters) > 0 {
			entry["parameters"] = parametersToMaps(cmd.Parameters)
		}
		if len(cmd.Examples) > 0 {
			entry["examples"] = cmd.Examples
		}
		commands[name] = entry
	}
	return commands
}

func parametersToMaps(params []Parameter) []interface{} {
	out := make([]interface{}, 0, len(params))
	for _, p := range params {
		entry := map[string]interface{}{"name": p.Name}
		if len(p.Aliases) > 0 {
			entry["aliases"] = p.Aliases
		}
		if p.Description != "" {
			entry["description"] = p.Description
		}
		if p.Required {
			entry["required"] = p.Required
		}
		if len(p.Choices) > 0 {
			entry["choices"] = p.Choices
		}
		if p.Provider != "" {
			entry["provider"] = p.Provider
		}
		if p.Command != "" {
			entry["command"] = p.Command
		}
		out = append(out, entry)
	}
	return out
}
