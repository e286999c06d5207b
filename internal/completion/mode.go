package completion

// Mode is the kind of token the engine currently believes the cursor is
// completing.
type Mode string

const (
	// ModeCommand completes command words from the tree (initial state)
	ModeCommand Mode = "command"
	// ModeParameter completes parameter flags
	ModeParameter Mode = "parameter"
	// ModeValue completes parameter values
	ModeValue Mode = "value"
	// ModeNone is entered when the user strays off the command path;
	// only a full resync from the root can leave it
	ModeNone Mode = "none"
)

// String returns the mode name
func (m Mode) String() string {
	return string(m)
}
