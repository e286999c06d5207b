package completion

import (
	"strings"
	"unicode"

	"github.com/cloudsh/cloudsh/internal/table"
	"github.com/cloudsh/cloudsh/internal/tree"
)

// State is the cursor state one completion pass operates on. Bundling
// it keeps the generators pure functions of (state, line).
type State struct {
	// Branch is the tree node all fully-typed command tokens lead to
	Branch *tree.Node
	// Command is the space-joined command path consumed so far
	Command string
	// Mode selects which generators run
	Mode Mode
}

// generateCommands offers the current branch's children whose label
// starts with the prefix being typed.
func generateCommands(st State, tbl *table.Table, prefix string) []Candidate {
	var out []Candidate
	for _, label := range st.Branch.ChildLabels() {
		if !strings.HasPrefix(label, prefix) {
			continue
		}
		out = append(out, Candidate{
			Text:          label,
			ReplaceLength: len(prefix),
			DisplayMeta:   tbl.Description(joinCommand(st.Command, label)),
		})
	}
	return out
}

// generateParamNames offers the flags of the current command: the union
// of the names attached to the tree leaf and the names the table lists,
// filtered against what is already on the line.
func generateParamNames(st State, tbl *table.Table, text, prefix string) []Candidate {
	names := unionParams(st.Branch.Params(), tbl.ParameterNames(st.Command))
	groups := tbl.AliasGroups(st.Command)

	var out []Candidate
	for _, name := range names {
		if !validParamCompletion(name, prefix, text, groups) {
			continue
		}
		out = append(out, Candidate{
			Text:          name,
			ReplaceLength: len(prefix),
			DisplayMeta:   tbl.ParamMeta(st.Command, name),
		})
	}
	return out
}

// generateGlobalParams offers the CLI's global flags. A single-dash
// token only completes to short spellings; a double-dash token
// completes to any matching global.
func generateGlobalParams(st State, tbl *table.Table, text, prefix string) []Candidate {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}
	last := tokens[len(tokens)-1]
	shortToken := strings.HasPrefix(last, "-") && !strings.HasPrefix(last, "--")

	var out []Candidate
	for _, name := range tbl.GlobalNames() {
		shortName := strings.HasPrefix(name, "-") && !strings.HasPrefix(name, "--")
		if shortToken && !shortName {
			continue
		}
		if !shortToken && !strings.HasPrefix(last, "--") {
			continue
		}
		if !validParamCompletion(name, prefix, text, nil) {
			continue
		}
		out = append(out, Candidate{
			Text:          name,
			ReplaceLength: len(prefix),
			DisplayMeta:   tbl.GlobalMeta(name),
		})
	}
	return out
}

// validParamCompletion applies the flag-offering rules: the candidate
// extends the token under the cursor, is not already on the line, and
// no synonym of it is already on the line.
func validParamCompletion(candidate, prefix, text string, aliasGroups [][]string) bool {
	if !strings.HasPrefix(candidate, prefix) {
		return false
	}
	// flags are only offered mid-token; after a space the user has to
	// start typing a dash first
	if text == "" || endsInSpace(text) {
		return false
	}
	tokens := strings.Fields(text)
	for _, tok := range tokens {
		if tok == candidate {
			return false
		}
	}
	for _, group := range aliasGroups {
		if !containsString(group, candidate) {
			continue
		}
		for _, synonym := range group {
			if synonym == candidate {
				continue
			}
			if containsString(tokens, synonym) {
				return false
			}
		}
	}
	return true
}

// generateValues offers values for the flag governing the cursor:
// enumerated choices, the output-format list for output selectors, and
// dynamic provider values. Provider failures are returned alongside the
// static candidates so the caller can log and drop them.
func generateValues(st State, tbl *table.Table, providers *Registry, text, prefix string) ([]Candidate, error) {
	flag, valuePrefix, started, ok := valueTarget(text)
	if !ok {
		return nil, nil
	}
	tokens := strings.Fields(text)

	var out []Candidate
	param, known := tbl.Resolve(st.Command, flag)
	if known {
		out = append(out, enumCandidates(param.Choices, valuePrefix, started, tokens)...)
	}
	if tbl.IsOutputOption(flag) {
		out = append(out, enumCandidates(tbl.OutputChoices, valuePrefix, started, tokens)...)
	}

	provider, found := dynamicProvider(param, known, providers)
	if !found {
		return out, nil
	}
	values, err := provider.Resolve(valuePrefix, buildContext(st.Command, text))
	if err != nil {
		return out, err
	}
	out = append(out, enumCandidates(values, valuePrefix, started, tokens)...)
	return out, nil
}

// dynamicProvider picks the value source declared for a parameter:
// a named registry provider, or an ad-hoc external command.
func dynamicProvider(param table.Parameter, known bool, providers *Registry) (Provider, bool) {
	if !known {
		return Provider{}, false
	}
	if param.Provider != "" {
		return providers.Lookup(param.Provider)
	}
	if param.Command != "" {
		return ExecProvider(param.Command), true
	}
	return Provider{}, false
}

// enumCandidates filters a fixed value list against a partially-typed
// value. With no partial value every entry is offered.
func enumCandidates(values []string, prefix string, started bool, tokens []string) []Candidate {
	var out []Candidate
	for _, value := range values {
		if started {
			if !strings.HasPrefix(strings.ToLower(value), strings.ToLower(prefix)) {
				continue
			}
			if containsString(tokens, value) {
				continue
			}
		}
		out = append(out, Candidate{
			Text:          quoteValue(value),
			ReplaceLength: len(prefix),
		})
	}
	return out
}

// valueTarget finds the flag whose value the cursor is positioned on.
// Either the line ends in a flag token (value not started) or in a
// partial value preceded by a flag token.
func valueTarget(text string) (flag, prefix string, started, ok bool) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return "", "", false, false
	}
	last := tokens[len(tokens)-1]
	if strings.HasPrefix(last, "-") {
		return last, "", false, true
	}
	if len(tokens) >= 2 && !endsInSpace(text) {
		prev := tokens[len(tokens)-2]
		if strings.HasPrefix(prev, "-") {
			return prev, last, true, true
		}
	}
	return "", "", false, false
}

func unionParams(a, b []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, name := range a {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, name := range b {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

func containsString(s []string, v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

func endsInSpace(text string) bool {
	if text == "" {
		return false
	}
	runes := []rune(text)
	return unicode.IsSpace(runes[len(runes)-1])
}

func joinCommand(command, token string) string {
	if command == "" {
		return token
	}
	return command + " " + token
}
