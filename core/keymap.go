package core

// ActionFunc performs an action against the engine. A nil Event means the
// engine reports a plain update.
type ActionFunc func(e *Engine, key KeyEvent) Event

// Action is a named unit of work a key sequence resolves to.
type Action struct {
	Name string
	Run  ActionFunc
}

type keyNode struct {
	action   *Action
	children map[KeyEvent]*keyNode
}

// Keymap is a prefix tree of key sequences. A sequence may be bound to an
// action and also be the prefix of longer bindings; lookups resolve the
// exact match first.
type Keymap struct {
	root keyNode
}

func NewKeymap() *Keymap {
	return &Keymap{}
}

// Bind associates seq with action, replacing any previous binding.
func (k *Keymap) Bind(seq []KeyEvent, action Action) {
	if len(seq) == 0 {
		return
	}
	node := &k.root
	for _, key := range seq {
		if node.children == nil {
			node.children = make(map[KeyEvent]*keyNode)
		}
		next, ok := node.children[key]
		if !ok {
			next = &keyNode{}
			node.children[key] = next
		}
		node = next
	}
	a := action
	node.action = &a
}

// BindString is Bind for sequences of plain characters, e.g. "gg".
func (k *Keymap) BindString(seq string, action Action) {
	k.Bind(Keys(seq), action)
}

// Unbind removes the action at seq. Longer bindings sharing the prefix stay.
func (k *Keymap) Unbind(seq []KeyEvent) {
	if node := k.find(seq); node != nil {
		node.action = nil
	}
}

func (k *Keymap) find(seq []KeyEvent) *keyNode {
	node := &k.root
	for _, key := range seq {
		next, ok := node.children[key]
		if !ok {
			return nil
		}
		node = next
	}
	return node
}

// Lookup returns the action bound to seq, if any, and whether longer
// bindings start with seq.
func (k *Keymap) Lookup(seq []KeyEvent) (action Action, exact bool, prefix bool) {
	node := k.find(seq)
	if node == nil {
		return Action{}, false, false
	}
	if node.action != nil {
		action, exact = *node.action, true
	}
	return action, exact, len(node.children) > 0
}
