package cli

import (
	"fmt"
	"os"

	"github.com/cloudsh/cloudsh/internal/table"
)

// Schema displays or exports the JSON Schema for command table files
func Schema(outputPath string) error {
	schemaJSON := table.GetSchemaJSON()

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(schemaJSON), 0644); err != nil {
			return fmt.Errorf("failed to write schema to %s: %w", outputPath, err)
		}
		fmt.Printf("JSON Schema written to: %s\n", outputPath)
		return nil
	}

	fmt.Println(schemaJSON)
	return nil
}
