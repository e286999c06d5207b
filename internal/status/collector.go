// Package status collects and renders diagnostic information about a
// cloudsh installation: the command table, its contents, registered
// value providers and the shell history.
package status

import (
	"os"

	"github.com/cloudsh/cloudsh/internal/completion"
	"github.com/cloudsh/cloudsh/internal/history"
	"github.com/cloudsh/cloudsh/internal/table"
)

// Collector gathers status data
type Collector struct {
	version   string
	cli       string
	tablePath string
	loader    *table.Loader
	providers *completion.Registry
	hist      *history.History
}

// CollectorParams holds dependencies for NewCollector
type CollectorParams struct {
	Version   string
	CLI       string
	TablePath string
	Loader    *table.Loader
	Providers *completion.Registry
	History   *history.History
}

// NewCollector creates a status collector
func NewCollector(params CollectorParams) *Collector {
	c := &Collector{
		version:   params.Version,
		cli:       params.CLI,
		tablePath: params.TablePath,
		loader:    params.Loader,
		providers: params.Providers,
		hist:      params.History,
	}
	if c.loader == nil {
		c.loader = table.New()
	}
	return c
}

// Collect gathers all status information. Collection is best-effort:
// a missing or broken table still produces a report describing it.
func (c *Collector) Collect() *Data {
	data := &Data{
		Version:   c.version,
		CLI:       c.cli,
		TablePath: c.tablePath,
	}

	c.collectTable(data)
	c.collectProviders(data)
	c.collectHistory(data)

	return data
}

func (c *Collector) collectTable(data *Data) {
	info, err := os.Stat(c.tablePath)
	if err != nil {
		return
	}
	data.TableFound = true
	data.TableSize = info.Size()
	data.TableModified = info.ModTime()

	if hash, err := c.loader.Hash(c.tablePath); err == nil {
		data.TableHash = hash
	}

	result, err := table.Validate(c.tablePath)
	if err == nil {
		data.TableValid = result.Valid
		for _, issue := range result.Errors {
			data.TableIssues = append(data.TableIssues, issue.Field+": "+issue.Message)
		}
	}

	tbl, err := c.loader.Load(c.tablePath)
	if err != nil {
		return
	}

	data.Commands = len(tbl.Commands)
	data.GlobalSpellings = len(tbl.GlobalNames())
	for range tbl.BuildTree().DescendantLabels() {
		data.CommandWords++
	}
	for _, cmd := range tbl.Commands {
		data.Parameters += len(cmd.Parameters)
		for _, param := range cmd.Parameters {
			if len(param.Choices) > 0 {
				data.ChoiceSets++
			}
			if param.Provider != "" || param.Command != "" {
				data.DynamicParams++
			}
		}
	}
}

func (c *Collector) collectProviders(data *Data) {
	if c.providers == nil {
		return
	}
	data.Providers = c.providers.Names()
}

func (c *Collector) collectHistory(data *Data) {
	if c.hist == nil {
		return
	}
	data.HistoryPath = c.hist.Path()
	data.HistoryEntries = c.hist.Len()
	if last, ok := c.hist.Last(); ok {
		data.HistoryLast = last.Line
	}
}
