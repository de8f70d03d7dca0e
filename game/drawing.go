package game

const (
	ToolPencil = "pencil"
	ToolEraser = "eraser"
	ToolFill   = "fill"
	ToolClear  = "clear"
	ToolUndo   = "undo"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DrawingAction is one canvas operation as sent by the drawer. Clear and
// Undo are commands and never stored; the rest are appended to the log.
type DrawingAction struct {
	Tool          string  `json:"tool"`
	Points        []Point `json:"points,omitempty"`
	X             float64 `json:"x,omitempty"`
	Y             float64 `json:"y,omitempty"`
	Color         string  `json:"color,omitempty"`
	Width         float64 `json:"width,omitempty"`
	IsStartOfLine bool    `json:"isStartOfLine,omitempty"`
}

type drawingEntry struct {
	action DrawingAction
	stroke int
}

// drawingLog keeps the ordered canvas history. Every entry carries a
// stroke id assigned on append: a new id when IsStartOfLine is set (or the
// log is empty), the current id for continuation segments. Fills always
// get their own id, so undo after a fill removes exactly that fill.
type drawingLog struct {
	entries   []drawingEntry
	strokeSeq int
}

func (l *drawingLog) append(a DrawingAction) {
	switch a.Tool {
	case ToolPencil, ToolEraser:
		if a.IsStartOfLine || len(l.entries) == 0 {
			l.strokeSeq++
		}
	default:
		l.strokeSeq++
	}
	l.entries = append(l.entries, drawingEntry{action: a, stroke: l.strokeSeq})
}

// undo removes the trailing run of entries sharing the last stroke id.
func (l *drawingLog) undo() {
	n := len(l.entries)
	if n == 0 {
		return
	}
	id := l.entries[n-1].stroke
	i := n
	for i > 0 && l.entries[i-1].stroke == id {
		i--
	}
	l.entries = l.entries[:i]
}

func (l *drawingLog) clear() {
	l.entries = nil
	l.strokeSeq = 0
}

func (l *drawingLog) size() int {
	return len(l.entries)
}

func (l *drawingLog) actions() []DrawingAction {
	out := make([]DrawingAction, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e.action)
	}
	return out
}
