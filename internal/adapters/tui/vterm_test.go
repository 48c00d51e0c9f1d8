package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.rpack.dev/rpack/internal/adapters/tui"
)

func TestVterm_Write(t *testing.T) {
	t.Parallel()

	t.Run("write at bottom sticks to bottom", func(t *testing.T) {
		t.Parallel()
		vt := tui.NewVterm()
		vt.SetHeight(5)

		_, err := vt.Write([]byte("line1\nline2\nline3\nline4\nline5\nline6"))
		require.NoError(t, err)

		assert.Equal(t, vt.MaxOffset(), vt.Offset)
	})

	t.Run("write while scrolled up stays scrolled", func(t *testing.T) {
		t.Parallel()
		vt := tui.NewVterm()
		vt.SetHeight(5)

		// Pre-fill and scroll up
		_, _ = vt.Write([]byte("1\n2\n3\n4\n5\n6\n"))
		vt.Offset = 0

		_, err := vt.Write([]byte("line1\nline2\nline3\nline4\nline5\nline6"))
		require.NoError(t, err)

		assert.Equal(t, 0, vt.Offset)
	})
}

func TestVterm_SetHeight(t *testing.T) {
	t.Parallel()

	vt := tui.NewVterm()
	// Fill with 10 lines
	input := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10"
	_, _ = vt.Write([]byte(input))

	// Case 1: Set height, should stick to bottom if already at bottom
	vt.Offset = vt.MaxOffset()
	vt.SetHeight(5)
	assert.Equal(t, 5, vt.Height)
	assert.Equal(t, vt.MaxOffset(), vt.Offset)

	// Case 2: Set height while scrolled up, should clamp if needed
	vt.Offset = 0
	vt.SetHeight(2)
	assert.Equal(t, 2, vt.Height)
	assert.Equal(t, 0, vt.Offset)

	// Case 3: Set height > used height
	vt.SetHeight(20)
	assert.Equal(t, 20, vt.Height)
	assert.Equal(t, 0, vt.Offset)

	// Case 4: Zero/Negative height
	vt.SetHeight(0)
	assert.Equal(t, 1, vt.Height)
}

func TestVterm_SetWidth(t *testing.T) {
	t.Parallel()

	vt := tui.NewVterm()
	vt.Prefix = ">> "

	vt.SetWidth(10)
	assert.Equal(t, 10, vt.Width)

	vt.SetWidth(0)
	assert.Equal(t, 1, vt.Width)
}

func TestVterm_Update(t *testing.T) {
	t.Parallel()

	vt := tui.NewVterm()
	vt.SetHeight(2)
	// Fill with 4 lines: 0, 1, 2, 3
	_, _ = vt.Write([]byte("0\n1\n2\n3"))

	// Max offset should be 4 - 2 = 2

	// Start at bottom
	vt.Offset = vt.MaxOffset()
	assert.Equal(t, 2, vt.Offset)

	// Key: up/k
	vt.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 1, vt.Offset)

	vt.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, vt.Offset)

	// Cap at 0
	vt.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, vt.Offset)

	// Key: down/j
	vt.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, vt.Offset)

	vt.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, vt.Offset)

	// Cap at max
	vt.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, vt.Offset)

	// Key: Home
	vt.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, vt.Offset)

	// Key: End
	vt.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 2, vt.Offset)

	// Key: PgUp (Height=2)
	vt.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, vt.Offset)

	// Key: PgDown
	vt.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 2, vt.Offset)
}

func TestVterm_View(t *testing.T) {
	t.Parallel()

	vt := tui.NewVterm()
	vt.SetHeight(2)
	vt.Prefix = "> "

	_, _ = vt.Write([]byte("hello\nworld"))

	// Strip ANSI reset codes for comparison
	stripAnsi := func(s string) string {
		return strings.ReplaceAll(s, "\x1b[0m", "")
	}
	output := stripAnsi(vt.View())

	assert.Equal(t, "> hello\n> world", output)

	lines := strings.Split(output, "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "> "))
	assert.True(t, strings.HasPrefix(lines[1], "> "))
}

func TestVterm_CarriageReturnOverwrites(t *testing.T) {
	t.Parallel()

	vt := tui.NewVterm()
	vt.SetHeight(2)

	// Progress-style output rewrites the same line.
	_, err := vt.Write([]byte("downloading 10%\rdownloading 99%"))
	require.NoError(t, err)

	stripAnsi := func(s string) string {
		return strings.ReplaceAll(s, "\x1b[0m", "")
	}
	output := stripAnsi(vt.View())

	assert.Contains(t, output, "downloading 99%")
	assert.NotContains(t, output, "10%")
}
