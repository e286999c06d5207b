package completion

import (
	"strings"
	"time"

	"github.com/cloudsh/cloudsh/internal/logger"
	"github.com/cloudsh/cloudsh/internal/serrors"
	"github.com/cloudsh/cloudsh/internal/table"
	"github.com/cloudsh/cloudsh/internal/tree"
)

// Session owns the per-line completion state: the command tree, the
// current branch, the completion mode and the previously seen input.
// Feed it the full text before the cursor on every keystroke and it
// returns ranked candidates. A Session is not safe for concurrent use;
// interactive front-ends call it from a single input loop.
type Session struct {
	tbl       *table.Table
	root      *tree.Node
	providers *Registry
	log       *logger.Logger
	appName   string
	scope     string

	st       State
	prevText string
	// dirty forces a resync on the next pass after a reset, scope
	// change or table swap
	dirty bool
}

// SessionParams holds dependencies for NewSession
type SessionParams struct {
	Table     *table.Table
	Providers *Registry
	Logger    *logger.Logger
	// AppName is the CLI binary name stripped from the start of input,
	// so "az vm create" and "vm create" complete identically
	AppName string
}

// NewSession creates a completion session for a loaded command table
func NewSession(params SessionParams) *Session {
	s := &Session{
		tbl:       params.Table,
		root:      params.Table.BuildTree(),
		providers: params.Providers,
		log:       params.Logger,
		appName:   params.AppName,
	}
	if s.providers == nil {
		s.providers = NewRegistry()
	}
	if s.log == nil {
		s.log = logger.New("error", nil)
	}
	s.Reset()
	return s
}

// Reset returns the session to its initial state at the tree root
func (s *Session) Reset() {
	s.st = State{Branch: s.root, Command: "", Mode: ModeCommand}
	s.prevText = ""
	s.dirty = true
}

// SetScope pins a command prefix. With scope "vm", typing "create "
// completes like "vm create ". An empty scope clears it.
func (s *Session) SetScope(scope string) {
	s.scope = strings.TrimSpace(strings.ToLower(scope))
	s.Reset()
}

// Scope returns the current default command prefix
func (s *Session) Scope() string {
	return s.scope
}

// Table returns the command table backing this session
func (s *Session) Table() *table.Table {
	return s.tbl
}

// State returns the current cursor state
func (s *Session) State() State {
	return s.st
}

// ReplaceTable swaps in a reloaded command table and rebuilds the tree
func (s *Session) ReplaceTable(tbl *table.Table) {
	s.tbl = tbl
	s.root = tbl.BuildTree()
	s.Reset()
}

// Complete returns ranked candidates for the text before the cursor.
// It must see every keystroke: the mode machine advances incrementally
// on appends and resynchronizes from the root whenever the input got
// shorter (backspace, cut, cleared line).
func (s *Session) Complete(raw string) []Candidate {
	start := time.Now()

	text := s.normalize(raw)
	prefix := trailingToken(text)

	if s.dirty || s.requiresResync(raw) {
		s.resync(text)
		s.dirty = false
	} else if prefix == "" {
		s.advanceOnSpace(text)
	}
	// a dash always means a flag is being typed, whatever mode the
	// machine was in
	if strings.HasPrefix(prefix, "-") {
		s.st.Mode = ModeParameter
	}
	s.prevText = raw

	var out []Candidate
	switch s.st.Mode {
	case ModeCommand:
		out = Rank(generateCommands(s.st, s.tbl, prefix))
	case ModeParameter:
		out = append(
			Rank(generateParamNames(s.st, s.tbl, text, prefix)),
			Rank(generateGlobalParams(s.st, s.tbl, text, prefix))...,
		)
	case ModeValue:
		values, err := generateValues(s.st, s.tbl, s.providers, text, prefix)
		if err != nil {
			s.log.Debug().
				Str("command", s.st.Command).
				Err(err).
				Msg("Dynamic value provider failed")
		}
		out = Rank(values)
	case ModeNone:
	}

	s.log.Debug().
		Str("mode", s.st.Mode.String()).
		Str("prefix", prefix).
		Int("candidates", len(out)).
		Dur("duration", time.Since(start)).
		Msg("Completion pass")
	return out
}

// normalize rewrites raw input into engine form: the CLI binary name is
// dropped, the scope is prepended and matching is case-insensitive.
func (s *Session) normalize(raw string) string {
	text := strings.ToLower(raw)
	if s.appName != "" {
		tokens := strings.SplitN(strings.TrimLeft(text, " "), " ", 2)
		if tokens[0] == strings.ToLower(s.appName) {
			if len(tokens) == 2 {
				text = tokens[1]
			} else {
				text = ""
			}
		}
	}
	if s.scope != "" {
		text = s.scope + " " + text
	}
	return text
}

// requiresResync reports whether the input shrank since the last pass.
// Equal length counts too: a same-length edit means characters changed
// under us.
func (s *Session) requiresResync(raw string) bool {
	return len(raw) <= len(s.prevText)
}

// advanceOnSpace moves the mode machine one step when the user ends a
// token. In command mode the finished token is looked up as a child of
// the current branch: a miss abandons completion, reaching a leaf moves
// on to flags. A space after a flag means its value comes next.
func (s *Session) advanceOnSpace(text string) {
	switch s.st.Mode {
	case ModeCommand:
		tokens := strings.Fields(text)
		if len(tokens) == 0 {
			return
		}
		// repeated spaces arrive with no new token to consume
		if len(tokens) <= len(strings.Fields(s.st.Command)) {
			return
		}
		last := tokens[len(tokens)-1]
		child, err := s.st.Branch.Child(last)
		if serrors.IsNotFound(err) {
			s.st.Mode = ModeNone
			return
		}
		s.st.Branch = child
		s.st.Command = joinCommand(s.st.Command, last)
		if child.IsLeaf() {
			s.st.Mode = ModeParameter
		}
	case ModeParameter:
		s.st.Mode = ModeValue
	}
}

// resync rebuilds branch, command path and mode from the whole line.
// Command tokens are walked from the root; the first flag token ends
// the walk. An unfinished trailing token is not consumed, it stays the
// prefix under completion.
func (s *Session) resync(text string) {
	s.st = State{Branch: s.root, Command: "", Mode: ModeCommand}

	tokens := strings.Fields(text)
	commandTokens := tokens
	sawFlag := false
	for i, tok := range tokens {
		if strings.HasPrefix(tok, "-") {
			commandTokens = tokens[:i]
			sawFlag = true
			break
		}
	}

	var partial string
	if !sawFlag && !endsInSpace(text) && len(commandTokens) > 0 {
		partial = commandTokens[len(commandTokens)-1]
		commandTokens = commandTokens[:len(commandTokens)-1]
	}

	for _, tok := range commandTokens {
		child, err := s.st.Branch.Child(tok)
		if err != nil {
			s.st.Mode = ModeNone
			return
		}
		s.st.Branch = child
		s.st.Command = joinCommand(s.st.Command, tok)
	}

	if sawFlag {
		s.st.Mode = ModeValue
		return
	}
	if partial != "" {
		// the unfinished token stays the prefix under completion; if it
		// matches nothing the candidate set is simply empty
		return
	}
	if len(commandTokens) > 0 && s.st.Branch.IsLeaf() {
		s.st.Mode = ModeParameter
	}
}

// trailingToken returns the token under the cursor, or "" when the
// cursor follows whitespace.
func trailingToken(text string) string {
	if text == "" || endsInSpace(text) {
		return ""
	}
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}
