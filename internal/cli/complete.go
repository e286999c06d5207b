package cli

import (
	"fmt"

	"github.com/cloudsh/cloudsh/internal/completion"
	"github.com/cloudsh/cloudsh/internal/logger"
	"github.com/cloudsh/cloudsh/internal/table"
)

// CompleteParams contains parameters for the Complete command
type CompleteParams struct {
	TablePath string
	CLI       string
	LogLevel  string
	// Line is the input text before the cursor
	Line string
}

// Complete prints candidates for one input line, one per line with a
// tab-separated description. Lets shell integrations and scripts query
// the engine without the interactive loop.
func Complete(params CompleteParams) error {
	path, err := ResolveTablePath(params.TablePath)
	if err != nil {
		return err
	}

	tbl, err := table.New().Load(path)
	if err != nil {
		return fmt.Errorf("failed to load command table: %w", err)
	}

	session := completion.NewSession(completion.SessionParams{
		Table:   tbl,
		Logger:  logger.New(params.LogLevel, nil),
		AppName: params.CLI,
	})

	for _, candidate := range session.Complete(params.Line) {
		if candidate.DisplayMeta != "" {
			fmt.Printf("%s\t%s\n", candidate.Text, candidate.DisplayMeta)
		} else {
			fmt.Println(candidate.Text)
		}
	}
	return nil
}
