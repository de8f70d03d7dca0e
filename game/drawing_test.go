package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawingLog_UndoRemovesLastStroke(t *testing.T) {
	t.Parallel()
	var l drawingLog
	l.append(DrawingAction{Tool: ToolPencil, IsStartOfLine: true})
	l.append(DrawingAction{Tool: ToolPencil})
	l.append(DrawingAction{Tool: ToolPencil, IsStartOfLine: true})
	l.append(DrawingAction{Tool: ToolPencil})
	l.append(DrawingAction{Tool: ToolPencil})
	assert.Equal(t, 5, l.size())

	l.undo()
	assert.Equal(t, 2, l.size())

	l.undo()
	assert.Equal(t, 0, l.size())

	l.undo()
	assert.Equal(t, 0, l.size())
}

func TestDrawingLog_FillIsItsOwnUndoUnit(t *testing.T) {
	t.Parallel()
	var l drawingLog
	l.append(DrawingAction{Tool: ToolPencil, IsStartOfLine: true})
	l.append(DrawingAction{Tool: ToolPencil})
	l.append(DrawingAction{Tool: ToolFill, X: 5, Y: 5, Color: "#00ff00"})
	assert.Equal(t, 3, l.size())

	l.undo()
	assert.Equal(t, 2, l.size())
	assert.Equal(t, ToolPencil, l.entries[1].action.Tool)

	l.undo()
	assert.Equal(t, 0, l.size())
}

func TestDrawingLog_HeadlessSegmentOpensAStroke(t *testing.T) {
	t.Parallel()
	var l drawingLog
	// a client that never sets the start flag still gets one stroke group
	l.append(DrawingAction{Tool: ToolPencil})
	l.append(DrawingAction{Tool: ToolPencil})
	assert.Equal(t, 2, l.size())

	l.undo()
	assert.Equal(t, 0, l.size())
}

func TestDrawingLog_ClearResets(t *testing.T) {
	t.Parallel()
	var l drawingLog
	l.append(DrawingAction{Tool: ToolPencil, IsStartOfLine: true})
	l.append(DrawingAction{Tool: ToolFill})
	l.clear()
	assert.Equal(t, 0, l.size())
	assert.Empty(t, l.actions())

	l.append(DrawingAction{Tool: ToolEraser, IsStartOfLine: true})
	assert.Equal(t, 1, l.size())
}

func TestDrawingLog_ActionsRoundTrip(t *testing.T) {
	t.Parallel()
	var l drawingLog
	first := DrawingAction{Tool: ToolPencil, Color: "#000000", Width: 4, IsStartOfLine: true, Points: []Point{{X: 1, Y: 2}}}
	second := DrawingAction{Tool: ToolFill, X: 3, Y: 4, Color: "#123456"}
	l.append(first)
	l.append(second)
	assert.Equal(t, []DrawingAction{first, second}, l.actions())
}
