package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeymap_Lookup(t *testing.T) {
	km := NewKeymap()
	km.BindString("g", ActLineStart)
	km.BindString("gg", ActBufferStart)

	a, exact, prefix := km.Lookup(Keys("g"))
	require.True(t, exact)
	require.True(t, prefix)
	require.Equal(t, "line-start", a.Name)

	a, exact, prefix = km.Lookup(Keys("gg"))
	require.True(t, exact)
	require.False(t, prefix)
	require.Equal(t, "buffer-start", a.Name)

	_, exact, prefix = km.Lookup(Keys("gx"))
	require.False(t, exact)
	require.False(t, prefix)
}

func TestKeymap_UnbindKeepsLongerBindings(t *testing.T) {
	km := NewKeymap()
	km.BindString("d", ActDeleteChar)
	km.BindString("dd", ActDeleteLine)
	km.Unbind(Keys("d"))

	_, exact, prefix := km.Lookup(Keys("d"))
	require.False(t, exact)
	require.True(t, prefix)

	_, exact, _ = km.Lookup(Keys("dd"))
	require.True(t, exact)
}

func TestKeymap_BindEmptyIsIgnored(t *testing.T) {
	km := NewKeymap()
	km.Bind(nil, ActCancel)
	_, exact, prefix := km.Lookup(nil)
	require.False(t, exact)
	require.False(t, prefix)
}

func TestDispatcher_Normal(t *testing.T) {
	d := NewDispatcher(nil)

	tests := []struct {
		name    string
		pending string
		key     KeyEvent
		kind    ResolutionKind
		action  string
	}{
		{"move right", "", RuneKey('l'), ResolvedAction, "move-right"},
		{"colon", "", RuneKey(':'), ResolvedAction, "command-line"},
		{"first g", "", RuneKey('g'), ResolvePending, ""},
		{"gg", "g", RuneKey('g'), ResolvedAction, "buffer-start"},
		{"broken prefix", "g", RuneKey('x'), ResolveUnrecognized, ""},
		{"unbound", "", RuneKey('Z'), ResolveUnrecognized, ""},
		{"ctrl is distinct", "", KeyEvent{Rune: 'l', Modifiers: ModCtrl}, ResolveUnrecognized, ""},
		{"arrow", "", SpecialKey(KeyDown), ResolvedAction, "move-down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := d.Resolve(NormalMode, Keys(tt.pending), tt.key)
			require.Equal(t, tt.kind, res.Kind, res.Kind.String())
			if tt.kind == ResolvedAction {
				assert.Equal(t, tt.action, res.Action.Name)
			}
		})
	}
}

func TestDispatcher_Insert(t *testing.T) {
	d := NewDispatcher(nil)

	assert.Equal(t, "insert-text", d.Resolve(InsertMode, nil, RuneKey('x')).Action.Name)
	assert.Equal(t, "insert-text", d.Resolve(InsertMode, nil, SpecialKey(KeySpace)).Action.Name)
	assert.Equal(t, "exit-insert", d.Resolve(InsertMode, nil, SpecialKey(KeyEscape)).Action.Name)
	assert.Equal(t, "insert-newline", d.Resolve(InsertMode, nil, SpecialKey(KeyEnter)).Action.Name)
	assert.Equal(t, "backspace", d.Resolve(InsertMode, nil, SpecialKey(KeyBackspace)).Action.Name)
	assert.Equal(t, ResolveUnrecognized, d.Resolve(InsertMode, nil, KeyEvent{Rune: 'c', Modifiers: ModCtrl}).Kind)
	assert.Equal(t, ResolveUnrecognized, d.Resolve(InsertMode, nil, SpecialKey(KeyInsert)).Kind)
}

func TestDispatcher_Command(t *testing.T) {
	d := NewDispatcher(nil)

	assert.Equal(t, "command-append", d.Resolve(CommandMode, nil, RuneKey('w')).Action.Name)
	assert.Equal(t, "command-execute", d.Resolve(CommandMode, nil, SpecialKey(KeyEnter)).Action.Name)
	assert.Equal(t, "command-abort", d.Resolve(CommandMode, nil, SpecialKey(KeyEscape)).Action.Name)
	assert.Equal(t, "command-backspace", d.Resolve(CommandMode, nil, SpecialKey(KeyBackspace)).Action.Name)
	assert.Equal(t, ResolveUnrecognized, d.Resolve(CommandMode, nil, SpecialKey(KeyUp)).Kind)
}

func TestDispatcher_UnknownMode(t *testing.T) {
	d := NewDispatcher(nil)
	assert.Equal(t, ResolveUnrecognized, d.Resolve(Mode("visual"), nil, RuneKey('v')).Kind)
}

func TestFormatKeys(t *testing.T) {
	keys := append(Keys("dg"), SpecialKey(KeyEscape), KeyEvent{Rune: 'w', Modifiers: ModCtrl})
	assert.Equal(t, "dg<Escape><Ctrl+w>", FormatKeys(keys))
}
