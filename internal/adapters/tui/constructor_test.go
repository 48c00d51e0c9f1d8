package tui_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.rpack.dev/rpack/internal/adapters/tui"
)

func TestNewModel(t *testing.T) {
	m := tui.NewModel(nil)

	assert.NotNil(t, m.Steps)
	assert.Empty(t, m.Steps)
	assert.NotNil(t, m.StepMap)
	assert.Empty(t, m.StepMap)
	assert.NotNil(t, m.SpanMap)
	assert.Empty(t, m.SpanMap)
	assert.True(t, m.AutoScroll, "AutoScroll should be true by default")
}

func TestNewModel_WithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	m := tui.NewModel(buf)

	assert.NotNil(t, m.Output)
	assert.True(t, m.FollowMode)
	assert.Equal(t, 100*time.Millisecond, m.TickInterval)
}

func TestModel_WithDisableTick(t *testing.T) {
	m := tui.NewModel(nil)
	assert.False(t, m.DisableTick)

	m = m.WithDisableTick()
	assert.True(t, m.DisableTick)
}
