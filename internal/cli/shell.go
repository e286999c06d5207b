package cli

import (
	"fmt"

	"github.com/cloudsh/cloudsh/internal/completion"
	"github.com/cloudsh/cloudsh/internal/history"
	"github.com/cloudsh/cloudsh/internal/logger"
	"github.com/cloudsh/cloudsh/internal/repl"
	"github.com/cloudsh/cloudsh/internal/table"
)

// ShellParams contains parameters for the Shell command
type ShellParams struct {
	TablePath   string
	CLI         string
	LogLevel    string
	HistoryPath string
	Version     string
}

// Shell starts the interactive shell for the wrapped CLI
func Shell(params ShellParams) error {
	log := logger.New(params.LogLevel, nil)

	path, err := ResolveTablePath(params.TablePath)
	if err != nil {
		return err
	}

	tbl, err := table.New().Load(path)
	if err != nil {
		return fmt.Errorf("failed to load command table: %w", err)
	}

	historyPath := params.HistoryPath
	if historyPath == "" {
		historyPath = DefaultHistoryPath()
	}
	hist, err := history.New(historyPath, 0)
	if err != nil {
		log.Warn().Str("path", historyPath).Err(err).Msg("History unavailable, continuing without it")
		hist = nil
	}

	session := completion.NewSession(completion.SessionParams{
		Table:     tbl,
		Providers: completion.NewRegistry(),
		Logger:    log,
		AppName:   params.CLI,
	})

	log.Debug().
		Str("table", path).
		Int("commands", len(tbl.Commands)).
		Msg("Starting interactive shell")

	r := repl.New(repl.Params{
		Session: session,
		History: hist,
		Logger:  log,
		CLI:     params.CLI,
		Version: params.Version,
	})
	r.Run()

	return nil
}
