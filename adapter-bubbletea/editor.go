package adapter_bubbletea

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ionut-t/modaledit/adapter-bubbletea/highlighter"
	"github.com/ionut-t/modaledit/core"
	"github.com/ionut-t/modaledit/internal/storage"
)

const defaultMessageTimeout = 5 * time.Second

type clearMsg struct{}

// noticeMsg shows a message once the program starts.
type noticeMsg struct {
	Text string
}

// Model is a bubbletea front end for a core.Engine. It owns every side
// effect the engine requests: file writes, the clipboard and quitting.
type Model struct {
	engine    *core.Engine
	store     *storage.Store
	path      string
	clipboard core.Clipboard

	viewport           viewport.Model
	width              int
	height             int
	leftCol            int // first visible display column
	showLineNumbers    bool
	relativeNumbers    bool
	showStatusLine     bool
	showTildeIndicator bool
	tabWidth           int
	theme              Theme
	highlighter        *highlighter.Highlighter

	message        string
	err            error
	messageTimeout time.Duration
	clearMsgCancel context.CancelFunc
	notice         string

	quitting bool
}

type Option func(*Model)

// WithStore sets where :w writes and the file name it writes to.
func WithStore(store *storage.Store, path string) Option {
	return func(m *Model) {
		m.store = store
		m.path = path
	}
}

func WithTheme(theme Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// WithHighlighter enables syntax highlighting; nil disables it.
func WithHighlighter(h *highlighter.Highlighter) Option {
	return func(m *Model) { m.highlighter = h }
}

// WithClipboard mirrors yanks to cb; nil disables mirroring.
func WithClipboard(cb core.Clipboard) Option {
	return func(m *Model) { m.clipboard = cb }
}

func WithLineNumbers(show, relative bool) Option {
	return func(m *Model) {
		m.showLineNumbers = show
		m.relativeNumbers = relative
	}
}

func WithStatusLine(show bool) Option {
	return func(m *Model) { m.showStatusLine = show }
}

func WithTildeIndicator(show bool) Option {
	return func(m *Model) { m.showTildeIndicator = show }
}

func WithTabWidth(n int) Option {
	return func(m *Model) { m.tabWidth = max(n, 1) }
}

func WithMessageTimeout(d time.Duration) Option {
	return func(m *Model) { m.messageTimeout = d }
}

// WithNotice shows text in the command line when the program starts.
func WithNotice(text string) Option {
	return func(m *Model) { m.notice = text }
}

// New wraps engine in a model sized width x height.
func New(engine *core.Engine, width, height int, opts ...Option) Model {
	m := Model{
		engine:             engine,
		viewport:           viewport.New(width, max(height-2, 1)),
		showLineNumbers:    true,
		showStatusLine:     true,
		showTildeIndicator: true,
		tabWidth:           4,
		theme:              DefaultTheme,
		messageTimeout:     defaultMessageTimeout,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.SetSize(width, height)
	m.renderVisibleSlice()
	return m
}

// SetSize resizes the editor and the engine's viewport.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	chrome := 1 // command line
	if m.showStatusLine {
		chrome++
	}
	m.viewport.Width = width
	m.viewport.Height = max(height-chrome, 1)
	m.viewport.YOffset = 0
	m.engine.SetViewportHeight(m.viewport.Height)
}

// Engine returns the wrapped engine.
func (m *Model) Engine() *core.Engine {
	return m.engine
}

// Path returns the file name saves go to.
func (m *Model) Path() string {
	return m.path
}

// Quitting reports whether a quit was accepted.
func (m *Model) Quitting() bool {
	return m.quitting
}

// DispatchMessage shows a message in the command line for the configured timeout.
func (m *Model) DispatchMessage(message string) tea.Cmd {
	m.message = message
	m.err = nil
	return m.dispatchClearMsg(m.messageTimeout)
}

// DispatchError shows an error in the command line for the configured timeout.
func (m *Model) DispatchError(err error) tea.Cmd {
	m.err = err
	m.message = ""
	return m.dispatchClearMsg(m.messageTimeout)
}

func (m *Model) dispatchClearMsg(duration time.Duration) tea.Cmd {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}
	if duration <= 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	m.clearMsgCancel = cancel

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			return clearMsg{}
		}
		return nil
	}
}

func (m Model) Init() tea.Cmd {
	if m.notice == "" {
		return nil
	}
	text := m.notice
	return func() tea.Msg { return noticeMsg{Text: text} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.quitting {
			break
		}
		for _, key := range keyEvents(msg) {
			cmds = append(cmds, m.handleEvent(m.engine.Feed(key)))
		}
		if note := m.engine.Snapshot().Message; note != "" && m.err == nil {
			cmds = append(cmds, m.DispatchMessage(note))
		}

	case savedMsg:
		cmds = append(cmds, m.handleSaved(msg))

	case saveFailedMsg:
		cmds = append(cmds, m.DispatchError(msg.Err))

	case clipboardFailedMsg:
		cmds = append(cmds, m.DispatchError(msg.Err))

	case noticeMsg:
		cmds = append(cmds, m.DispatchMessage(msg.Text))

	case clearMsg:
		m.message = ""
		m.err = nil
		m.clearMsgCancel = nil
	}

	m.renderVisibleSlice()

	return m, tea.Batch(cmds...)
}

// handleEvent turns an engine event into follow-up work.
func (m *Model) handleEvent(ev core.Event) tea.Cmd {
	switch ev := ev.(type) {
	case core.CommandEvent:
		return m.handleCommand(ev)
	case core.YankEvent:
		return m.copyCmd(ev)
	case core.UpdateEvent:
		if m.engine.Mode() == core.CommandMode && m.err != nil {
			// Typing a new command replaces a stale error.
			m.err = nil
		}
	}
	return nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	content := m.viewport.View()

	statusLine := m.getStatusLine()
	commandLine := m.getCommandLine()

	if !m.showStatusLine {
		return lipgloss.JoinVertical(lipgloss.Left, content, commandLine)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		statusLine,
		commandLine,
	)
}
