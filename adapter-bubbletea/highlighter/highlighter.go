package highlighter

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter handles syntax highlighting for the editor
type Highlighter struct {
	lexer      chroma.Lexer
	style      *chroma.Style
	cache      map[int][]TokenPosition // tokens by line number
	revision   uint64
	tokenized  bool
	styleCache map[chroma.TokenType]lipgloss.Style
	mu         sync.RWMutex
}

// TokenPosition represents a token's position in the original line
type TokenPosition struct {
	Type     chroma.TokenType
	StartCol int
	EndCol   int
}

// ForFile picks a lexer from the file name and falls back to plain text.
// It returns nil when theme is empty, which disables highlighting.
func ForFile(filename, theme string) *Highlighter {
	if theme == "" {
		return nil
	}
	var lexer chroma.Lexer
	if filename != "" {
		lexer = lexers.Match(filename)
	}
	return newHighlighter(lexer, theme)
}

// New creates a highlighter for a language name such as "go" or "markdown".
func New(language string, theme string) *Highlighter {
	return newHighlighter(lexers.Get(language), theme)
}

func newHighlighter(lexer chroma.Lexer, theme string) *Highlighter {
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &Highlighter{
		lexer:      chroma.Coalesce(lexer),
		style:      styles.Get(theme),
		cache:      make(map[int][]TokenPosition),
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// Language returns the lexer name.
func (h *Highlighter) Language() string {
	return h.lexer.Config().Name
}

// Tokenize tokenizes the whole document once per revision. Multi-line
// constructs such as block comments need the full text.
func (h *Highlighter) Tokenize(lines []string, revision uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.tokenized && h.revision == revision {
		return
	}
	h.revision = revision
	h.tokenized = true
	h.cache = make(map[int][]TokenPosition, len(lines))

	content := strings.Join(lines, "\n")
	if content == "" {
		return
	}

	iterator, err := h.lexer.Tokenise(nil, content)
	if err != nil {
		return
	}

	line, col := 0, 0
	add := func(t chroma.TokenType, text string) {
		n := len([]rune(text))
		h.cache[line] = append(h.cache[line], TokenPosition{Type: t, StartCol: col, EndCol: col + n})
		col += n
	}

	for _, token := range iterator.Tokens() {
		value := token.Value
		for {
			before, after, found := strings.Cut(value, "\n")
			if before != "" {
				add(token.Type, before)
			}
			if !found {
				break
			}
			line++
			col = 0
			value = after
		}
	}
}

// TokensForLine returns the token spans of a line from the last Tokenize.
func (h *Highlighter) TokensForLine(line int) []TokenPosition {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cache[line]
}

// StyleAt returns the style for the rune at col of a tokenized line.
func (h *Highlighter) StyleAt(tokens []TokenPosition, col int) lipgloss.Style {
	if t, ok := FindTokenAtPosition(tokens, col); ok {
		return h.StyleForToken(t.Type)
	}
	return lipgloss.NewStyle()
}

// StyleForToken converts a Chroma token type to a lipgloss style.
func (h *Highlighter) StyleForToken(tokenType chroma.TokenType) lipgloss.Style {
	h.mu.Lock()
	defer h.mu.Unlock()

	if style, ok := h.styleCache[tokenType]; ok {
		return style
	}

	entry := h.style.Get(tokenType)

	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.styleCache[tokenType] = style
	return style
}

// FindTokenAtPosition finds which token contains the given column position.
func FindTokenAtPosition(positions []TokenPosition, col int) (TokenPosition, bool) {
	for _, pos := range positions {
		if col >= pos.StartCol && col < pos.EndCol {
			return pos, true
		}
	}
	return TokenPosition{}, false
}
