package status

import "time"

// Data contains all the information to display in status
type Data struct {
	// Header
	Version string
	CLI     string

	// Command table
	TablePath     string
	TableFound    bool
	TableValid    bool
	TableHash     string
	TableSize     int64
	TableModified time.Time
	TableIssues   []string

	// Table contents
	Commands        int
	CommandWords    int
	Parameters      int
	ChoiceSets      int
	DynamicParams   int
	GlobalSpellings int

	// Providers
	Providers []string

	// History
	HistoryPath    string
	HistoryEntries int
	HistoryLast    string
}
