package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		text  string
		kind  CommandKind
		saves bool
		quits bool
	}{
		{"w", CommandSave, true, false},
		{"q", CommandQuit, false, true},
		{"wq", CommandSaveAndQuit, true, true},
		{"q!", CommandForceQuit, false, true},
		{"", CommandUnknown, false, false},
		{"Q", CommandUnknown, false, false},
		{" w", CommandUnknown, false, false},
		{"wq!", CommandUnknown, false, false},
		{"xy", CommandUnknown, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := Interpret(tt.text)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.text, got.Text)
			assert.Equal(t, tt.saves, got.Saves())
			assert.Equal(t, tt.quits, got.Quits())
		})
	}
}

func TestCommandResultString(t *testing.T) {
	assert.Equal(t, "Unknown(xy)", Interpret("xy").String())
	assert.Equal(t, "SaveAndQuit", Interpret("wq").String())
}

func TestCommandLine(t *testing.T) {
	var c CommandLine
	assert.False(t, c.Backspace())

	c.Append("wé")
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Backspace())
	assert.Equal(t, "w", c.String())

	c.Clear()
	assert.Equal(t, "", c.String())
}
