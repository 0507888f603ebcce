package adapter_bubbletea

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/ionut-t/modaledit/adapter-bubbletea/highlighter"
	"github.com/ionut-t/modaledit/core"
)

// cell is one rune laid out on screen.
type cell struct {
	r     rune
	col   int // rune index in the line
	width int // display columns
	text  string
}

// layoutLine expands a line into cells. Tabs become spaces up to the next
// tab stop; other runes take their East Asian display width.
func layoutLine(line string, tabWidth int) []cell {
	cells := make([]cell, 0, len(line))
	x := 0
	for i, r := range []rune(line) {
		c := cell{r: r, col: i}
		if r == '\t' {
			c.width = tabWidth - x%tabWidth
			c.text = strings.Repeat(" ", c.width)
		} else {
			c.text = string(r)
			c.width = uniseg.StringWidth(c.text)
		}
		x += c.width
		cells = append(cells, c)
	}
	return cells
}

// displayCol returns the screen column where rune col of line starts.
func displayCol(cells []cell, col int) int {
	x := 0
	for _, c := range cells {
		if c.col >= col {
			break
		}
		x += c.width
	}
	return x
}

// calculateLineNumberWidth computes the width needed for line numbers
func (m *Model) calculateLineNumberWidth(totalLines int) int {
	if !m.showLineNumbers {
		return 0
	}
	maxWidth := len(strconv.Itoa(max(1, totalLines)))
	lineNumWidth := max(4, maxWidth) + 1
	return min(lineNumWidth, 10)
}

// scrollHorizontally keeps the cursor column inside the text area.
func (m *Model) scrollHorizontally(cursorX, textWidth int) {
	if cursorX < m.leftCol {
		m.leftCol = cursorX
	} else if cursorX >= m.leftCol+textWidth {
		m.leftCol = cursorX - textWidth + 1
	}
	m.leftCol = max(m.leftCol, 0)
}

func (m *Model) renderVisibleSlice() {
	snap := m.engine.Snapshot()

	lineNumWidth := m.calculateLineNumberWidth(snap.LineCount)
	textWidth := max(m.viewport.Width-lineNumWidth, 1)

	cursorRow := snap.Cursor.Row - snap.TopLine
	if cursorRow >= 0 && cursorRow < len(snap.Lines) {
		cells := layoutLine(snap.Lines[cursorRow], m.tabWidth)
		m.scrollHorizontally(displayCol(cells, snap.Cursor.Col), textWidth)
	}

	if m.highlighter != nil {
		m.highlighter.Tokenize(m.engine.Content(), snap.Revision)
	}

	var sb strings.Builder
	for i, line := range snap.Lines {
		row := snap.TopLine + i
		if i > 0 {
			sb.WriteByte('\n')
		}
		if lineNumWidth > 0 {
			sb.WriteString(m.renderLineNumber(row, snap.Cursor.Row, lineNumWidth))
		}
		cursorCol := -1
		if row == snap.Cursor.Row {
			cursorCol = snap.Cursor.Col
		}
		sb.WriteString(m.renderLine(row, line, cursorCol, textWidth, snap.Mode))
	}

	for i := len(snap.Lines); i < m.viewport.Height; i++ {
		sb.WriteByte('\n')
		if m.isWelcomeScreen(snap) && i == m.viewport.Height/3 {
			sb.WriteString(m.renderWelcome())
			continue
		}
		if m.showTildeIndicator {
			sb.WriteString(m.theme.PlaceholderStyle.Render("~"))
		}
	}

	m.viewport.SetContent(sb.String())
}

func (m *Model) renderLineNumber(row, cursorRow, width int) string {
	num := row + 1
	style := m.theme.LineNumberStyle
	if row == cursorRow {
		style = m.theme.CurrentLineNumberStyle
	} else if m.relativeNumbers {
		num = row - cursorRow
		if num < 0 {
			num = -num
		}
	}
	return style.Width(width-1).Render(strconv.Itoa(num)) + " "
}

// renderLine draws the visible part of a line starting at m.leftCol. A
// cursor past the last rune is drawn as a styled blank.
func (m *Model) renderLine(row int, line string, cursorCol, textWidth int, mode core.Mode) string {
	cells := layoutLine(line, m.tabWidth)

	var tokens []highlighter.TokenPosition
	if m.highlighter != nil {
		tokens = m.highlighter.TokensForLine(row)
	}

	cursorStyle := m.theme.ModeStyle(mode)

	var sb strings.Builder
	x := 0
	used := 0
	for _, c := range cells {
		start := x
		x += c.width
		if start < m.leftCol {
			continue
		}
		if used+c.width > textWidth {
			break
		}
		used += c.width

		style := lipgloss.NewStyle()
		if m.highlighter != nil {
			style = m.highlighter.StyleAt(tokens, c.col)
		}
		if c.col == cursorCol {
			style = cursorStyle
		}
		sb.WriteString(style.Render(c.text))
	}

	if cursorCol >= len(cells) && used < textWidth {
		sb.WriteString(cursorStyle.Render(" "))
	}
	return sb.String()
}

func (m *Model) isWelcomeScreen(snap core.Snapshot) bool {
	return m.path == "" && !snap.Dirty && snap.LineCount == 1 && len(snap.Lines) == 1 && snap.Lines[0] == ""
}

func (m *Model) renderWelcome() string {
	text := "modaledit"
	pad := max((m.viewport.Width-lipgloss.Width(text))/2-1, 0)
	return m.theme.PlaceholderStyle.Render("~" + strings.Repeat(" ", pad) + text)
}

func (m *Model) getStatusLine() string {
	if !m.showStatusLine {
		return ""
	}

	snap := m.engine.Snapshot()

	statusLine := m.theme.ModeStyle(snap.Mode).Render(" " + snap.Mode.Label() + " ")

	name := m.path
	if name == "" {
		name = "[No Name]"
	}
	left := fmt.Sprintf(" %s - %d lines", name, snap.LineCount)
	statusLine += m.theme.StatusLineStyle.Render(left)
	if snap.Dirty {
		statusLine += m.theme.DirtyStyle.Render(" [+]")
	}

	right := fmt.Sprintf("%d/%d ", snap.Cursor.Row+1, snap.Cursor.Col+1)
	if snap.Pending != "" {
		right = snap.Pending + "  " + right
	}
	if m.highlighter != nil {
		right = m.highlighter.Language() + "  " + right
	}

	width := m.width - (lipgloss.Width(right) + lipgloss.Width(statusLine))
	gap := strings.Repeat(" ", max(0, width))

	return statusLine + m.theme.StatusLineStyle.Render(gap+right)
}

func (m *Model) getCommandLine() string {
	snap := m.engine.Snapshot()

	var commandLine string
	switch {
	case snap.Mode == core.CommandMode:
		commandLine = m.theme.CommandLineStyle.Render(":" + snap.CommandLine)
	case m.err != nil:
		commandLine = m.theme.ErrorStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.err.Error())
	case m.message != "":
		commandLine = m.theme.MessageStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.message)
	case snap.Mode == core.InsertMode:
		commandLine = m.theme.CommandLineStyle.Render("-- INSERT --")
	}

	if pad := m.width - lipgloss.Width(commandLine); pad > 0 {
		commandLine += m.theme.CommandLineStyle.Render(strings.Repeat(" ", pad))
	}
	return commandLine
}
