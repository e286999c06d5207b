// Package table handles loading and querying of cloudsh command tables.
// A command table is the static description of a hierarchical CLI: every
// full command string mapped to its description, parameters, choice sets
// and value providers, plus the CLI's global parameters.
package table

import (
	"strings"

	"github.com/cloudsh/cloudsh/internal/tree"
)

// RequiredMarker prefixes the description of required parameters. The
// completion ranker sorts marked candidates first.
const RequiredMarker = "[REQUIRED]"

// Parameter describes one flag of a command
type Parameter struct {
	Name        string   `koanf:"name" json:"name"`
	Aliases     []string `koanf:"aliases" json:"aliases,omitempty"`
	Description string   `koanf:"description" json:"description,omitempty"`
	Required    bool     `koanf:"required" json:"required,omitempty"`
	Choices     []string `koanf:"choices" json:"choices,omitempty"`
	Provider    string   `koanf:"provider" json:"provider,omitempty"`
	Command     string   `koanf:"command" json:"command,omitempty"`
}

// Names returns the canonical name followed by all alias spellings
func (p Parameter) Names() []string {
	names := make([]string, 0, 1+len(p.Aliases))
	names = append(names, p.Name)
	names = append(names, p.Aliases...)
	return names
}

// Matches reports whether flag is the canonical name or an alias
func (p Parameter) Matches(flag string) bool {
	if p.Name == flag {
		return true
	}
	for _, alias := range p.Aliases {
		if alias == flag {
			return true
		}
	}
	return false
}

// Meta returns the display description, with the required marker
// prepended for required parameters
func (p Parameter) Meta() string {
	desc := strings.ReplaceAll(p.Description, "\n", " ")
	if p.Required {
		if desc == "" {
			return RequiredMarker
		}
		return RequiredMarker + " " + desc
	}
	return desc
}

// Command describes one full command of the underlying CLI
type Command struct {
	Description string      `koanf:"description" json:"description,omitempty"`
	Parameters  []Parameter `koanf:"parameters" json:"parameters,omitempty"`
	Examples    []string    `koanf:"examples" json:"examples,omitempty"`
}

// Table is a loaded command table
type Table struct {
	Commands      map[string]Command `koanf:"commands" json:"commands"`
	Globals       []Parameter        `koanf:"globals" json:"globals,omitempty"`
	OutputOptions []string           `koanf:"output_options" json:"output_options,omitempty"`
	OutputChoices []string           `koanf:"output_choices" json:"output_choices,omitempty"`
}

// defaultGlobals mirrors the global arguments every command of a cloud
// CLI accepts. A table may override them wholesale.
var defaultGlobals = []Parameter{
	{Name: "--help", Aliases: []string{"-h"}, Description: "Show help for this command"},
	{Name: "--output", Aliases: []string{"-o"}, Description: "Output format"},
	{Name: "--query", Description: "JMESPath query string applied to the output"},
	{Name: "--verbose", Description: "Increase logging verbosity"},
	{Name: "--debug", Description: "Full debug logs"},
}

var defaultOutputOptions = []string{"-o", "--output"}

var defaultOutputChoices = []string{"json", "jsonc", "none", "table", "tsv", "yaml"}

// applyDefaults fills the global registry when the table omits it
func (t *Table) applyDefaults() {
	if len(t.Globals) == 0 {
		t.Globals = defaultGlobals
	}
	if len(t.OutputOptions) == 0 {
		t.OutputOptions = defaultOutputOptions
	}
	if len(t.OutputChoices) == 0 {
		t.OutputChoices = defaultOutputChoices
	}
}

// BuildTree builds the command tree for this table. Leaf nodes carry
// their command's parameter names as node-local metadata.
func (t *Table) BuildTree() *tree.Node {
	root := tree.NewRoot()
	for command, meta := range t.Commands {
		leaf := root.Insert(command)
		if len(meta.Parameters) > 0 {
			var names []string
			for _, param := range meta.Parameters {
				names = append(names, param.Names()...)
			}
			leaf.SetParams(names)
		}
	}
	return root
}

// Description returns a command's description, or ""
func (t *Table) Description(command string) string {
	return t.Commands[command].Description
}

// ParameterNames returns every accepted flag spelling for a command, in
// table order
func (t *Table) ParameterNames(command string) []string {
	meta, ok := t.Commands[command]
	if !ok {
		return nil
	}
	var names []string
	for _, param := range meta.Parameters {
		names = append(names, param.Names()...)
	}
	return names
}

// Resolve finds the parameter a flag spelling belongs to, by canonical
// name or alias
func (t *Table) Resolve(command, flag string) (Parameter, bool) {
	meta, ok := t.Commands[command]
	if !ok {
		return Parameter{}, false
	}
	for _, param := range meta.Parameters {
		if param.Matches(flag) {
			return param, true
		}
	}
	return Parameter{}, false
}

// ParamMeta returns the display description for one flag spelling of a
// command, or ""
func (t *Table) ParamMeta(command, flag string) string {
	param, ok := t.Resolve(command, flag)
	if !ok {
		return ""
	}
	return param.Meta()
}

// AliasGroups returns the sets of flag spellings that are synonyms for
// one logical parameter of a command. Only parameters with at least two
// spellings produce a group.
func (t *Table) AliasGroups(command string) [][]string {
	meta, ok := t.Commands[command]
	if !ok {
		return nil
	}
	var groups [][]string
	for _, param := range meta.Parameters {
		if len(param.Aliases) > 0 {
			groups = append(groups, param.Names())
		}
	}
	return groups
}

// GlobalMeta returns the description of a global parameter spelling
func (t *Table) GlobalMeta(flag string) string {
	for _, param := range t.Globals {
		if param.Matches(flag) {
			return param.Meta()
		}
	}
	return ""
}

// GlobalNames returns every global flag spelling
func (t *Table) GlobalNames() []string {
	var names []string
	for _, param := range t.Globals {
		names = append(names, param.Names()...)
	}
	return names
}

// IsOutputOption reports whether a token selects the output format
func (t *Table) IsOutputOption(token string) bool {
	for _, opt := range t.OutputOptions {
		if opt == token {
			return true
		}
	}
	return false
}
