package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestREPLStopsAtExit(t *testing.T) {
	h := newCLIHarness(t)
	in := strings.NewReader("add circle 5 5 o fill 2\n\nlist\nexit\nadd rectangle 0 0 # fill 2 2\n")

	require.NoError(t, runREPL(in, h.out, h.cli, false))
	assert.Equal(t, 1, h.surface.Len())
	assert.Equal(t,
		"Added circle with id 0.\n"+
			"0: Circle at (5, 5), glyph 'o', fill, radius 2\n",
		h.out.String())
}

func TestREPLKeepsGoingAfterErrors(t *testing.T) {
	h := newCLIHarness(t)
	in := strings.NewReader("move 1 1\nbogus\nadd circle 5 5 o fill 2")

	require.NoError(t, runREPL(in, h.out, h.cli, false))
	assert.Equal(t, 1, h.surface.Len(), "last line without a newline still runs")
	assert.Contains(t, h.out.String(), "Error: no shape selected")
	assert.Contains(t, h.out.String(), "Unknown command: bogus")
}

func TestREPLInteractivePrompt(t *testing.T) {
	h := newCLIHarness(t)
	require.NoError(t, runREPL(strings.NewReader("draw\n"), h.out, h.cli, true))

	out := h.out.String()
	assert.True(t, strings.HasPrefix(out, "Available commands:\n"))
	assert.Equal(t, 2, strings.Count(out, "\n> "), "one prompt per read including the final one")
	assert.True(t, strings.HasSuffix(out, "\n> "))
}
