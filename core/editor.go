package core

import "fmt"

// Position represents a specific location in the text buffer
type Position struct {
	Row int // Zero-indexed row (line number)
	Col int // Zero-indexed column (scalar value within the line)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Clipboard is implemented by collaborators that mirror the yank register
// to a system clipboard. The engine never calls it; adapters do.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}
