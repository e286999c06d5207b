package table

import (
	"fmt"
	"os"
	"strings"
)

// ValidationIssue represents a validation error with details
type ValidationIssue struct {
	Field   string
	Message string
}

// ValidationResult contains the results of table validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationIssue
}

// Validate validates a command table file: parse, then semantic checks
// the schema cannot express.
func Validate(path string) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationIssue{},
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("table file not found: %s", path)
	}

	loader := New()
	tbl, err := loader.Load(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationIssue{
			Field:   "syntax",
			Message: fmt.Sprintf("Failed to parse table: %v", err),
		})
		return result, nil
	}

	for command, meta := range tbl.Commands {
		field := "commands/" + command

		if strings.TrimSpace(command) == "" {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationIssue{
				Field:   "commands",
				Message: "Command name is empty",
			})
			continue
		}

		for _, token := range strings.Fields(command) {
			if strings.HasPrefix(token, "-") {
				result.Valid = false
				result.Errors = append(result.Errors, ValidationIssue{
					Field:   field,
					Message: fmt.Sprintf("Command token '%s' looks like a flag", token),
				})
			}
		}

		seen := make(map[string]bool)
		for _, param := range meta.Parameters {
			for _, name := range param.Names() {
				if seen[name] {
					result.Valid = false
					result.Errors = append(result.Errors, ValidationIssue{
						Field:   field + "/" + param.Name,
						Message: fmt.Sprintf("Flag '%s' is declared more than once", name),
					})
				}
				seen[name] = true
			}

			if param.Provider != "" && param.Command != "" {
				result.Valid = false
				result.Errors = append(result.Errors, ValidationIssue{
					Field:   field + "/" + param.Name,
					Message: "Parameter declares both a provider and a command value source",
				})
			}

			for _, choice := range param.Choices {
				if strings.TrimSpace(choice) == "" {
					result.Valid = false
					result.Errors = append(result.Errors, ValidationIssue{
						Field:   field + "/" + param.Name,
						Message: "Choice list contains an empty value",
					})
				}
			}
		}
	}

	for _, opt := range tbl.OutputOptions {
		if !strings.HasPrefix(opt, "-") {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationIssue{
				Field:   "output_options",
				Message: fmt.Sprintf("Output option '%s' must start with a dash", opt),
			})
		}
	}

	return result, nil
}
