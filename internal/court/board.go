package court

// TrailVisibility controls whether trails stay drawn after a marker stops
// moving. It is not part of history.
type TrailVisibility struct {
	Players bool `json:"players"`
	Shuttle bool `json:"shuttle"`
}

// HistoryInfo describes where the board sits in its timeline.
type HistoryInfo struct {
	Cursor  int  `json:"cursor"`
	Length  int  `json:"length"`
	CanUndo bool `json:"canUndo"`
	CanRedo bool `json:"canRedo"`
}

// drag is the uncommitted state of an in-progress drag.
type drag struct {
	marker MarkerID
	token  uint64
	snap   Snapshot
}

// Board ties the committed timeline to at most one in-progress drag.
//
// A drag is a two-phase transaction: StartDrag opens it, MoveDrag updates
// it, EndDrag commits it as exactly one history entry and CancelDrag
// abandons it. Move and end events without an open drag are absorbed.
type Board struct {
	dims     Dimensions
	doubles  bool
	timeline *Timeline
	working  *drag
	drags    uint64
	trails   TrailVisibility
}

// NewBoard starts a singles board laid out for dims.
func NewBoard(dims Dimensions) *Board {
	return &Board{
		dims:     dims,
		timeline: NewTimeline(DefaultLayout(false, dims)),
		trails:   TrailVisibility{Players: true, Shuttle: true},
	}
}

// Current returns the in-progress drag state if there is one, otherwise
// the timeline head.
func (b *Board) Current() Snapshot {
	if b.working != nil {
		return b.working.snap.Clone()
	}
	return b.timeline.Head()
}

// Dragging returns the marker being dragged, if any.
func (b *Board) Dragging() (MarkerID, bool) {
	if b.working == nil {
		return "", false
	}
	return b.working.marker, true
}

// StartDrag opens a drag of id at pos. pos becomes the marker's ghost;
// every other ghost is carried over from the timeline head. A drag still
// open from a lost end event is abandoned. It reports false when id has
// no slot in the current mode.
func (b *Board) StartDrag(id MarkerID, pos Coordinate) bool {
	head := b.timeline.Head()
	if !head.Has(id) {
		return false
	}
	head.setGhost(id, pos)
	head.setPosition(id, pos)
	b.drags++
	b.working = &drag{marker: id, token: b.drags, snap: head}
	return true
}

// DragToken identifies the open drag. Every StartDrag gets a new token, so
// a caller can tell its own drag apart from a later one on the same marker.
func (b *Board) DragToken() (uint64, bool) {
	if b.working == nil {
		return 0, false
	}
	return b.working.token, true
}

// MoveDrag updates the live position of the dragged marker. Ghosts are
// left alone. It reports false when no drag of id is open.
func (b *Board) MoveDrag(id MarkerID, pos Coordinate) bool {
	id.slot() // panics on ids outside the marker set
	if b.working == nil || b.working.marker != id {
		return false
	}
	b.working.snap.setPosition(id, pos)
	return true
}

// EndDrag commits the open drag. It reports false when there is none.
func (b *Board) EndDrag() bool {
	if b.working == nil {
		return false
	}
	b.timeline.Commit(b.working.snap)
	b.working = nil
	return true
}

// CancelDrag drops the open drag without touching history.
func (b *Board) CancelDrag() bool {
	if b.working == nil {
		return false
	}
	b.working = nil
	return true
}

// Undo and Redo move through history. An open drag is abandoned first so
// the cursor never moves underneath it.
func (b *Board) Undo() bool {
	b.working = nil
	return b.timeline.Undo()
}

func (b *Board) Redo() bool {
	b.working = nil
	return b.timeline.Redo()
}

func (b *Board) CanUndo() bool { return b.timeline.CanUndo() }

func (b *Board) CanRedo() bool { return b.timeline.CanRedo() }

func (b *Board) History() HistoryInfo {
	return HistoryInfo{
		Cursor:  b.timeline.Cursor(),
		Length:  b.timeline.Len(),
		CanUndo: b.timeline.CanUndo(),
		CanRedo: b.timeline.CanRedo(),
	}
}

// HistoryAt returns committed entry i, counting from the oldest. Entries
// past the cursor are still returned until the next commit drops them.
func (b *Board) HistoryAt(i int) (Snapshot, bool) {
	return b.timeline.At(i)
}

func (b *Board) IsDoubles() bool { return b.doubles }

func (b *Board) Dimensions() Dimensions { return b.dims }

// ToggleMode switches between singles and doubles. The layout is
// regenerated and history starts over.
func (b *Board) ToggleMode(doubles bool) {
	b.doubles = doubles
	b.Reset()
}

// Reset cancels any drag and restarts history from the default layout.
func (b *Board) Reset() {
	b.working = nil
	b.timeline.ReplaceAll(DefaultLayout(b.doubles, b.dims))
}

// Resize records new court dimensions. They apply from the next Reset or
// ToggleMode; committed positions are not rescaled.
func (b *Board) Resize(dims Dimensions) {
	b.dims = dims
}

func (b *Board) TogglePlayerTrails() bool {
	b.trails.Players = !b.trails.Players
	return b.trails.Players
}

func (b *Board) ToggleShuttleTrail() bool {
	b.trails.Shuttle = !b.trails.Shuttle
	return b.trails.Shuttle
}

func (b *Board) TrailVisibility() TrailVisibility { return b.trails }
