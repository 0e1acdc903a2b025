package court

// Timeline is a linear undo/redo history of committed snapshots. Entries
// past the cursor stay reachable through Redo until the next Commit
// discards them.
type Timeline struct {
	entries []Snapshot
	cursor  int
}

// NewTimeline starts a history holding only initial.
func NewTimeline(initial Snapshot) *Timeline {
	t := &Timeline{}
	t.ReplaceAll(initial)
	return t
}

// Commit drops any redo-able future, appends s and moves the cursor onto it.
func (t *Timeline) Commit(s Snapshot) {
	t.entries = append(t.entries[:t.cursor+1], s.Clone())
	t.cursor = len(t.entries) - 1
}

// ReplaceAll discards the whole history and starts over from s.
func (t *Timeline) ReplaceAll(s Snapshot) {
	t.entries = []Snapshot{s.Clone()}
	t.cursor = 0
}

// Undo steps back one entry. It reports false at the start of history.
func (t *Timeline) Undo() bool {
	if !t.CanUndo() {
		return false
	}
	t.cursor--
	return true
}

// Redo steps forward one entry. It reports false at the end of history.
func (t *Timeline) Redo() bool {
	if !t.CanRedo() {
		return false
	}
	t.cursor++
	return true
}

func (t *Timeline) CanUndo() bool { return t.cursor > 0 }

func (t *Timeline) CanRedo() bool { return t.cursor < len(t.entries)-1 }

func (t *Timeline) Len() int { return len(t.entries) }

func (t *Timeline) Cursor() int { return t.cursor }

// Head returns a copy of the entry under the cursor.
func (t *Timeline) Head() Snapshot {
	return t.entries[t.cursor].Clone()
}

// At returns a copy of entry i.
func (t *Timeline) At(i int) (Snapshot, bool) {
	if i < 0 || i >= len(t.entries) {
		return Snapshot{}, false
	}
	return t.entries[i].Clone(), true
}
