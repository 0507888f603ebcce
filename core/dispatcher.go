package core

type ResolutionKind int

const (
	ResolvedAction ResolutionKind = iota
	ResolvePending
	ResolveUnrecognized
)

func (k ResolutionKind) String() string {
	switch k {
	case ResolvedAction:
		return "action"
	case ResolvePending:
		return "pending"
	default:
		return "unrecognized"
	}
}

// Resolution is the dispatcher's verdict for one key. Action is only set
// when Kind is ResolvedAction.
type Resolution struct {
	Kind   ResolutionKind
	Action Action
}

func resolved(a Action) Resolution { return Resolution{Kind: ResolvedAction, Action: a} }

var (
	pendingResolution      = Resolution{Kind: ResolvePending}
	unrecognizedResolution = Resolution{Kind: ResolveUnrecognized}
)

// Dispatcher routes keys to the handler of the active mode.
type Dispatcher struct {
	modes map[Mode]EditorMode
}

// NewDispatcher builds a dispatcher whose Normal mode resolves through km.
func NewDispatcher(km *Keymap) *Dispatcher {
	if km == nil {
		km = DefaultNormalKeymap()
	}
	return &Dispatcher{
		modes: map[Mode]EditorMode{
			NormalMode:  &normalMode{keymap: km},
			InsertMode:  &insertMode{},
			CommandMode: &commandMode{},
		},
	}
}

func (d *Dispatcher) Resolve(mode Mode, pending []KeyEvent, key KeyEvent) Resolution {
	m, ok := d.modes[mode]
	if !ok {
		return unrecognizedResolution
	}
	return m.Resolve(pending, key)
}

func (d *Dispatcher) mode(m Mode) EditorMode {
	return d.modes[m]
}
