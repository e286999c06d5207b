package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render renders the status data to a string
func Render(data *Data) string {
	var b strings.Builder

	b.WriteString(renderHeader(data))
	b.WriteString("\n")

	b.WriteString(renderTable(data))

	if len(data.Providers) > 0 {
		b.WriteString("\n")
		b.WriteString(renderProviders(data))
	}

	if data.HistoryPath != "" {
		b.WriteString("\n")
		b.WriteString(renderHistory(data))
	}

	return b.String()
}

func renderHeader(data *Data) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("cloudsh ") + valueStyle.Render(data.Version) + "\n")
	if data.CLI != "" {
		b.WriteString(keyStyle.Render("Wrapped CLI: ") + valueStyle.Render(data.CLI) + "\n")
	}
	return b.String()
}

func renderTable(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Command table:") + "\n")
	b.WriteString("   " + keyStyle.Render("Path: ") + subtleStyle.Render(data.TablePath) + "\n")

	if !data.TableFound {
		b.WriteString("   " + errorStyle.Render("✗ Not found") + "\n")
		return b.String()
	}

	if data.TableValid {
		b.WriteString("   " + keyStyle.Render("Valid: ") + successStyle.Render("✓") + "\n")
	} else {
		b.WriteString("   " + keyStyle.Render("Valid: ") + errorStyle.Render("✗") + "\n")
		for _, issue := range data.TableIssues {
			b.WriteString("      " + errorStyle.Render(issue) + "\n")
		}
	}

	b.WriteString("   " + keyStyle.Render("Size: ") + valueStyle.Render(formatSize(data.TableSize)) + "\n")
	if data.TableHash != "" {
		b.WriteString("   " + keyStyle.Render("Hash: ") + subtleStyle.Render(shortHash(data.TableHash)) + "\n")
	}
	b.WriteString("   " + keyStyle.Render("Commands: ") + valueStyle.Render(fmt.Sprintf("%d", data.Commands)) + "\n")
	b.WriteString("   " + keyStyle.Render("Command words: ") + valueStyle.Render(fmt.Sprintf("%d", data.CommandWords)) + "\n")
	b.WriteString("   " + keyStyle.Render("Parameters: ") + valueStyle.Render(fmt.Sprintf("%d", data.Parameters)) + "\n")
	b.WriteString("   " + keyStyle.Render("Choice sets: ") + valueStyle.Render(fmt.Sprintf("%d", data.ChoiceSets)) + "\n")
	b.WriteString("   " + keyStyle.Render("Dynamic parameters: ") + valueStyle.Render(fmt.Sprintf("%d", data.DynamicParams)) + "\n")
	b.WriteString("   " + keyStyle.Render("Global flags: ") + valueStyle.Render(fmt.Sprintf("%d", data.GlobalSpellings)) + "\n")

	return b.String()
}

func renderProviders(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Value providers:") + "\n")
	for _, name := range data.Providers {
		b.WriteString("   " + valueStyle.Render(name) + "\n")
	}
	return b.String()
}

func renderHistory(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("History:") + "\n")
	b.WriteString("   " + keyStyle.Render("Path: ") + subtleStyle.Render(data.HistoryPath) + "\n")
	b.WriteString("   " + keyStyle.Render("Entries: ") + valueStyle.Render(fmt.Sprintf("%d", data.HistoryEntries)) + "\n")
	if data.HistoryLast != "" {
		b.WriteString("   " + keyStyle.Render("Last: ") + valueStyle.Render(data.HistoryLast) + "\n")
	}
	return b.String()
}

func formatSize(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}
	return fmt.Sprintf("%.1f KB", float64(size)/1024)
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
