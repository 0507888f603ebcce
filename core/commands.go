package core

type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandSave
	CommandQuit
	CommandSaveAndQuit
	CommandForceQuit
)

func (k CommandKind) String() string {
	switch k {
	case CommandSave:
		return "Save"
	case CommandQuit:
		return "Quit"
	case CommandSaveAndQuit:
		return "SaveAndQuit"
	case CommandForceQuit:
		return "ForceQuit"
	default:
		return "Unknown"
	}
}

// CommandResult is what a command line asks for. Text keeps the raw input,
// which matters for Unknown.
type CommandResult struct {
	Kind CommandKind
	Text string
}

func (r CommandResult) Saves() bool {
	return r.Kind == CommandSave || r.Kind == CommandSaveAndQuit
}

func (r CommandResult) Quits() bool {
	return r.Kind == CommandQuit || r.Kind == CommandSaveAndQuit || r.Kind == CommandForceQuit
}

func (r CommandResult) String() string {
	if r.Kind == CommandUnknown {
		return "Unknown(" + r.Text + ")"
	}
	return r.Kind.String()
}

var commandTable = map[string]CommandKind{
	"w":  CommandSave,
	"q":  CommandQuit,
	"wq": CommandSaveAndQuit,
	"q!": CommandForceQuit,
}

// Interpret parses a command line (without the leading colon). Matching is
// exact and case-sensitive; anything else, including "", is Unknown.
func Interpret(text string) CommandResult {
	if kind, ok := commandTable[text]; ok {
		return CommandResult{Kind: kind, Text: text}
	}
	return CommandResult{Kind: CommandUnknown, Text: text}
}
