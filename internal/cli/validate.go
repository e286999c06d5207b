package cli

import (
	"fmt"
	"os"

	"github.com/cloudsh/cloudsh/internal/table"
)

// Validate validates a command table file against the JSON schema and
// the semantic rules
func Validate(tablePath string) error {
	path, err := ResolveTablePath(tablePath)
	if err != nil {
		return err
	}

	fmt.Printf("Validating: %s\n\n", path)

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read command table: %w", err)
	}

	// schema first, semantic rules only on a well-formed document
	result, err := table.ValidateWithSchema(path, content)
	if err != nil {
		return err
	}

	if result.Valid {
		semanticResult, err := table.Validate(path)
		if err != nil {
			return err
		}
		if !semanticResult.Valid {
			result.Valid = false
			result.Errors = append(result.Errors, semanticResult.Errors...)
		}
	}

	if result.Valid {
		fmt.Println("✅ Command table is valid!")
		return nil
	}

	fmt.Println("❌ Command table has errors:")
	for i, issue := range result.Errors {
		fmt.Printf("%d. [%s] %s\n", i+1, issue.Field, issue.Message)
	}
	return fmt.Errorf("command table validation failed")
}
