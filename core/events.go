package core

// Event is what Engine.Feed reports back for a single key. Effects that need
// I/O (saving, quitting, the system clipboard) are described here and carried
// out by the caller.
type Event interface {
	event()
}

// UpdateEvent reports that an action ran. Changed is true when the buffer
// was mutated.
type UpdateEvent struct {
	Action  string
	Changed bool
}

// PendingEvent reports that the key extended an unfinished key sequence.
type PendingEvent struct {
	Keys []KeyEvent
}

// IgnoredEvent reports a key that matched nothing in the current mode. Any
// pending sequence was discarded along with it.
type IgnoredEvent struct {
	Key       KeyEvent
	Discarded []KeyEvent
}

// CommandEvent carries the result of an executed command line. Content and
// Revision are set when the command asks for a save; pass Revision back to
// Engine.MarkSaved once the write succeeded. Err is set for Unknown.
type CommandEvent struct {
	Result   CommandResult
	Content  []string
	Revision uint64
	Dirty    bool
	Err      error
}

// YankEvent reports text copied into the register.
type YankEvent struct {
	Text     string
	Linewise bool
}

func (UpdateEvent) event()  {}
func (PendingEvent) event() {}
func (IgnoredEvent) event() {}
func (CommandEvent) event() {}
func (YankEvent) event()    {}
