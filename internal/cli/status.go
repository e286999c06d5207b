package cli

import (
	"fmt"

	"github.com/cloudsh/cloudsh/internal/history"
	"github.com/cloudsh/cloudsh/internal/status"
)

// StatusParams contains parameters for the Status command
type StatusParams struct {
	TablePath   string
	CLI         string
	HistoryPath string
	Version     string
}

// Status displays the current cloudsh configuration status
func Status(params StatusParams) error {
	// the report should still render when the table is missing
	path, err := ResolveTablePath(params.TablePath)
	if err != nil {
		path = params.TablePath
	}

	historyPath := params.HistoryPath
	if historyPath == "" {
		historyPath = DefaultHistoryPath()
	}
	hist, _ := history.New(historyPath, 0)

	collector := status.NewCollector(status.CollectorParams{
		Version:   params.Version,
		CLI:       params.CLI,
		TablePath: path,
		History:   hist,
	})

	fmt.Println(status.Render(collector.Collect()))
	return nil
}
