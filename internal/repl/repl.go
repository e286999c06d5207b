// Package repl runs the interactive shell: a prompt loop that feeds
// every keystroke to the completion engine and hands finished lines to
// the wrapped CLI.
package repl

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/elk-language/go-prompt"
	istrings "github.com/elk-language/go-prompt/strings"

	"github.com/cloudsh/cloudsh/internal/completion"
	"github.com/cloudsh/cloudsh/internal/history"
	"github.com/cloudsh/cloudsh/internal/logger"
)

// ScopeSymbol sets or pops the default command prefix. "%% vm" makes
// every line complete and run as if it started with "vm"; "%% .." pops
// one token and a bare "%%" clears the scope.
const ScopeSymbol = "%%"

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	scopeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))
)

// Repl is the interactive shell loop
type Repl struct {
	session *completion.Session
	hist    *history.History
	log     *logger.Logger
	cli     string
	version string

	exitFlag bool
	// runLine executes a finished line; swapped out in tests
	runLine func(cli string, args []string) error
}

// Params holds dependencies for New
type Params struct {
	Session *completion.Session
	History *history.History
	Logger  *logger.Logger
	// CLI is the binary finished lines are handed to
	CLI     string
	Version string
}

// New creates a shell loop
func New(params Params) *Repl {
	r := &Repl{
		session: params.Session,
		hist:    params.History,
		log:     params.Logger,
		cli:     params.CLI,
		version: params.Version,
	}
	if r.log == nil {
		r.log = logger.New("error", nil)
	}
	r.runLine = runCLI
	return r
}

// Run starts the prompt loop and blocks until the user exits
func (r *Repl) Run() {
	fmt.Println(r.banner())

	var opts []prompt.Option
	opts = append(opts,
		prompt.WithCompleter(r.completer),
		prompt.WithPrefix(r.prefix()),
		prompt.WithTitle("cloudsh"),
		prompt.WithPrefixTextColor(prompt.Cyan),
		prompt.WithSuggestionBGColor(prompt.DarkBlue),
		prompt.WithSuggestionTextColor(prompt.White),
		prompt.WithSelectedSuggestionBGColor(prompt.Cyan),
		prompt.WithSelectedSuggestionTextColor(prompt.Black),
		prompt.WithDescriptionBGColor(prompt.DarkBlue),
		prompt.WithDescriptionTextColor(prompt.LightGray),
		prompt.WithSelectedDescriptionBGColor(prompt.Cyan),
		prompt.WithSelectedDescriptionTextColor(prompt.Black),
		prompt.WithMaxSuggestion(15),
		prompt.WithCompletionOnDown(),
		prompt.WithExitChecker(func(in string, breakline bool) bool {
			return r.exitFlag
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn: func(p *prompt.Prompt) bool {
				fmt.Println()
				r.exitFlag = true
				return false
			},
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlD,
			Fn: func(p *prompt.Prompt) bool {
				if p.Buffer().Text() == "" {
					fmt.Println()
					r.exitFlag = true
				}
				return false
			},
		}),
	)
	if r.hist != nil {
		opts = append(opts, prompt.WithHistory(r.hist.Lines()))
	}

	p := prompt.New(r.executor, opts...)
	p.Run()
}

// completer adapts the engine's candidates to prompt suggestions. All
// candidates of one pass replace the same span before the cursor.
func (r *Repl) completer(d prompt.Document) ([]prompt.Suggest, istrings.RuneNumber, istrings.RuneNumber) {
	text := d.TextBeforeCursor()
	endIndex := d.CurrentRuneIndex()

	suggestions, replaced := toSuggestions(r.session.Complete(text), text)
	startIndex := endIndex - istrings.RuneNumber(replaced)

	return suggestions, startIndex, endIndex
}

// toSuggestions converts candidates and reports how many runes before
// the cursor they replace.
func toSuggestions(candidates []completion.Candidate, text string) ([]prompt.Suggest, int) {
	suggestions := make([]prompt.Suggest, 0, len(candidates))
	replaced := 0
	for _, c := range candidates {
		suggestions = append(suggestions, prompt.Suggest{
			Text:        c.Text,
			Description: c.DisplayMeta,
		})
		if c.ReplaceLength > replaced {
			replaced = c.ReplaceLength
		}
	}
	if replaced > len(text) {
		replaced = len(text)
	}
	return suggestions, len([]rune(text[len(text)-replaced:]))
}

// executor handles one finished line
func (r *Repl) executor(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	switch line {
	case "exit", "quit":
		r.exitFlag = true
		return
	}

	if strings.HasPrefix(line, ScopeSymbol) {
		r.handleScope(strings.TrimSpace(strings.TrimPrefix(line, ScopeSymbol)))
		return
	}

	r.recordLine(line)

	args := strings.Fields(line)
	if scope := r.session.Scope(); scope != "" {
		args = append(strings.Fields(scope), args...)
	}
	if err := r.runLine(r.cli, args); err != nil {
		r.log.Debug().Str("line", line).Err(err).Msg("Command exited with error")
	}
}

// handleScope updates the default command prefix
func (r *Repl) handleScope(arg string) {
	scope := r.session.Scope()
	switch arg {
	case "":
		scope = ""
	case "..":
		tokens := strings.Fields(scope)
		if len(tokens) > 0 {
			tokens = tokens[:len(tokens)-1]
		}
		scope = strings.Join(tokens, " ")
	default:
		scope = strings.TrimSpace(scope + " " + arg)
	}
	r.session.SetScope(scope)

	if scope == "" {
		fmt.Println(hintStyle.Render("default scope cleared"))
	} else {
		fmt.Println(hintStyle.Render("default scope: ") + scopeStyle.Render(scope))
	}
}

func (r *Repl) recordLine(line string) {
	if r.hist == nil {
		return
	}
	if err := r.hist.Add(line); err != nil {
		r.log.Debug().Err(err).Msg("Failed to persist history")
	}
}

func (r *Repl) prefix() string {
	if scope := r.session.Scope(); scope != "" {
		return scope + "> "
	}
	return "> "
}

func (r *Repl) banner() string {
	var b strings.Builder
	b.WriteString(bannerStyle.Render("cloudsh " + r.version))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Interactive shell for " + r.cli + ". Commands complete as you type."))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Use '" + ScopeSymbol + " <command>' to set a default scope, 'exit' to leave."))
	return b.String()
}

// runCLI hands a finished line to the wrapped CLI binary with the
// user's terminal attached.
func runCLI(cli string, args []string) error {
	cmd := exec.Command(cli, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
