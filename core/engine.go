package core

import (
	"slices"
	"unicode/utf8"

	"github.com/ionut-t/modaledit/internal/log"
)

const defaultViewportHeight = 24

// Engine owns one document, its cursor and the active mode, and turns key
// events into edits. It is not safe for concurrent use.
type Engine struct {
	buffer     *TextBuffer
	cursor     Cursor
	mode       Mode
	dispatcher *Dispatcher

	pending     []KeyEvent
	commandLine CommandLine
	register    register

	dirty   bool
	message string

	topLine        int
	viewportHeight int
	scrollOff      int
}

type register struct {
	text     string
	linewise bool
}

type Option func(*Engine)

// WithViewportHeight sets how many lines a snapshot shows and how far
// PageUp/PageDown move.
func WithViewportHeight(h int) Option {
	return func(e *Engine) { e.viewportHeight = max(h, 1) }
}

// WithScrollOff keeps n lines of context above and below the cursor when
// the viewport scrolls. It is capped at half the viewport.
func WithScrollOff(n int) Option {
	return func(e *Engine) { e.scrollOff = max(n, 0) }
}

// WithKeymap replaces the Normal mode key bindings.
func WithKeymap(km *Keymap) Option {
	return func(e *Engine) { e.dispatcher = NewDispatcher(km) }
}

// WithCursor places the cursor before the first key is fed.
func WithCursor(pos Position) Option {
	return func(e *Engine) { e.cursor.MoveTo(e.buffer, pos) }
}

// New creates an engine over content in Normal mode with the cursor at 0:0.
func New(content string, opts ...Option) *Engine {
	e := &Engine{
		buffer:         NewBuffer(content),
		mode:           NormalMode,
		viewportHeight: defaultViewportHeight,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.dispatcher == nil {
		e.dispatcher = NewDispatcher(nil)
	}
	e.scrollViewport()
	return e
}

// Feed processes one key to completion: resolve, act, reconcile.
func (e *Engine) Feed(key KeyEvent) Event {
	e.message = ""

	res := e.dispatcher.Resolve(e.mode, e.pending, key)
	switch res.Kind {
	case ResolvePending:
		e.pending = append(e.pending, key)
		return PendingEvent{Keys: slices.Clone(e.pending)}
	case ResolveUnrecognized:
		discarded := e.pending
		e.pending = nil
		log.Debug(log.CatEngine, "key ignored", "mode", e.mode, "key", key, "discarded", FormatKeys(discarded))
		return IgnoredEvent{Key: key, Discarded: discarded}
	}

	e.pending = nil
	rev := e.buffer.Revision()

	ev := res.Action.Run(e, key)

	changed := e.buffer.Revision() != rev
	if changed {
		e.dirty = true
	}
	e.cursor.Reconcile(e.buffer)
	e.scrollViewport()

	if ev == nil {
		ev = UpdateEvent{Action: res.Action.Name, Changed: changed}
	}
	return ev
}

// FeedAll feeds keys in order and returns the event of each.
func (e *Engine) FeedAll(keys ...KeyEvent) []Event {
	events := make([]Event, 0, len(keys))
	for _, k := range keys {
		events = append(events, e.Feed(k))
	}
	return events
}

// CancelPending drops an unfinished key sequence.
func (e *Engine) CancelPending() {
	e.pending = nil
}

func (e *Engine) Mode() Mode {
	return e.mode
}

func (e *Engine) Cursor() Cursor {
	return e.cursor
}

func (e *Engine) Dirty() bool {
	return e.dirty
}

func (e *Engine) Revision() uint64 {
	return e.buffer.Revision()
}

// Content returns a copy of the document as lines.
func (e *Engine) Content() []string {
	return e.buffer.Lines()
}

func (e *Engine) Text() string {
	return e.buffer.String()
}

func (e *Engine) LineCount() int {
	return e.buffer.LineCount()
}

// Register returns the text last yanked or deleted.
func (e *Engine) Register() (text string, linewise bool) {
	return e.register.text, e.register.linewise
}

// MarkSaved acknowledges a completed write of the content at revision. The
// dirty flag clears only if nothing changed since; it reports whether it did.
func (e *Engine) MarkSaved(revision uint64) bool {
	if revision != e.buffer.Revision() {
		log.Debug(log.CatEngine, "stale save acknowledgement", "saved", revision, "current", e.buffer.Revision())
		return false
	}
	e.dirty = false
	return true
}

// SetViewportHeight resizes the visible window and keeps the cursor in it.
func (e *Engine) SetViewportHeight(h int) {
	e.viewportHeight = max(h, 1)
	e.scrollViewport()
}

func (e *Engine) ViewportHeight() int {
	return e.viewportHeight
}

// Snapshot is a read-only view of everything a renderer needs.
type Snapshot struct {
	Mode        Mode
	Cursor      Position
	TopLine     int
	Lines       []string // visible lines starting at TopLine
	LineCount   int
	CommandLine string
	Pending     string
	Message     string
	Dirty       bool
	Revision    uint64
}

func (e *Engine) Snapshot() Snapshot {
	end := min(e.topLine+e.viewportHeight, e.buffer.LineCount())
	lines := make([]string, 0, end-e.topLine)
	for row := e.topLine; row < end; row++ {
		lines = append(lines, string(e.buffer.lines[row]))
	}

	return Snapshot{
		Mode:        e.mode,
		Cursor:      e.cursor.Position,
		TopLine:     e.topLine,
		Lines:       lines,
		LineCount:   e.buffer.LineCount(),
		CommandLine: e.commandLine.String(),
		Pending:     FormatKeys(e.pending),
		Message:     e.message,
		Dirty:       e.dirty,
		Revision:    e.buffer.Revision(),
	}
}

func (e *Engine) setMode(to Mode) error {
	if !CanTransition(e.mode, to) {
		log.Warn(log.CatMode, "rejected transition", "from", e.mode, "to", to)
		return invalidTransition(e.mode, to)
	}
	from := e.mode
	e.dispatcher.mode(from).Exit(e)
	e.mode = to
	e.dispatcher.mode(to).Enter(e)
	log.Debug(log.CatMode, "mode changed", "from", from, "to", to)
	return nil
}

func (e *Engine) scrollViewport() {
	off := min(e.scrollOff, (e.viewportHeight-1)/2)
	row := e.cursor.Position.Row
	if row-off < e.topLine {
		e.topLine = row - off
	} else if row+off >= e.topLine+e.viewportHeight {
		e.topLine = row + off - e.viewportHeight + 1
	}
	maxTop := max(e.buffer.LineCount()-e.viewportHeight, 0)
	e.topLine = max(0, min(e.topLine, maxTop))
}

func (e *Engine) cursorOffset() int {
	off, err := e.buffer.OffsetOf(e.cursor.Position)
	if err != nil {
		// The cursor is reconciled after every action, so this is a bug.
		log.ErrorErr(log.CatEngine, "cursor outside buffer", err, "cursor", e.cursor.Position)
		e.cursor.Reconcile(e.buffer)
		off, _ = e.buffer.OffsetOf(e.cursor.Position)
	}
	return off
}

// insertAtCursor inserts text and leaves the cursor after it.
func (e *Engine) insertAtCursor(text string) {
	off := e.cursorOffset()
	if err := e.buffer.Insert(off, text); err != nil {
		log.ErrorErr(log.CatEngine, "insert failed", err, "offset", off)
		return
	}
	pos, err := e.buffer.PositionOf(off + utf8.RuneCountInString(text))
	if err != nil {
		log.ErrorErr(log.CatEngine, "insert left cursor outside buffer", err)
		return
	}
	e.cursor.MoveTo(e.buffer, pos)
}

// deleteRange removes [start, end) and returns the removed text, logging
// contract violations rather than surfacing them to the user.
func (e *Engine) deleteRange(start, end int) string {
	removed, err := e.buffer.Delete(start, end)
	if err != nil {
		log.ErrorErr(log.CatEngine, "delete failed", err, "start", start, "end", end)
		return ""
	}
	return removed
}
