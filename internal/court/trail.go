package court

import "math"

// DotSpacing is the distance in pixels between trail dots.
const DotSpacing = 10.0

// MaxDots bounds the dots on one trail. Longer trails space their dots
// further apart.
const MaxDots = 1000

// Trail is the line a marker left behind, from its ghost to where it is now.
type Trail struct {
	Marker MarkerID     `json:"marker"`
	From   Coordinate   `json:"from"`
	To     Coordinate   `json:"to"`
	Length float64      `json:"length"`
	Dots   []Coordinate `json:"dots"`
}

// NewTrail builds the trail between ghost and current with dots every
// spacing pixels, starting at the ghost. At most MaxDots are placed; a
// trail whose length overflows gets none and reports math.MaxFloat64.
func NewTrail(id MarkerID, ghost, current Coordinate, spacing float64) Trail {
	dx := current.X - ghost.X
	dy := current.Y - ghost.Y
	length := math.Hypot(dx, dy)

	t := Trail{Marker: id, From: ghost, To: current, Length: length}
	if math.IsInf(length, 0) || math.IsNaN(length) {
		t.Length = math.MaxFloat64
		return t
	}
	if spacing <= 0 || length == 0 {
		return t
	}
	n := MaxDots
	if steps := length / spacing; steps < MaxDots {
		n = int(math.Floor(steps))
	} else {
		spacing = length / MaxDots
	}
	t.Dots = make([]Coordinate, 0, n)
	ux, uy := dx/length, dy/length
	for i := 0; i < n; i++ {
		d := float64(i) * spacing
		t.Dots = append(t.Dots, Coordinate{X: ghost.X + d*ux, Y: ghost.Y + d*uy})
	}
	return t
}

// Trails returns the trails to draw right now. The dragged marker always
// shows its trail; the others show theirs when their category is enabled.
// Zero-length trails are skipped.
func (b *Board) Trails() []Trail {
	snap := b.Current()
	dragging, isDragging := b.Dragging()

	var out []Trail
	for _, id := range snap.Active() {
		visible := b.trails.Shuttle
		if id.IsPlayer() {
			visible = b.trails.Players
		}
		if isDragging && id == dragging {
			visible = true
		}
		if !visible {
			continue
		}
		ghost, cur := snap.GhostOf(id), snap.Position(id)
		if ghost == cur {
			continue
		}
		out = append(out, NewTrail(id, ghost, cur, DotSpacing))
	}
	return out
}

// Changes flags, per slot, whether a marker moved between two snapshots.
type Changes struct {
	Team1   []bool `json:"team1"`
	Team2   []bool `json:"team2"`
	Shuttle bool   `json:"shuttle"`
}

// Changed compares next against prev slot by slot. Slots missing from prev
// count as changed.
func Changed(next, prev Snapshot) Changes {
	return Changes{
		Team1:   changedSide(next.Players.Team1, prev.Players.Team1),
		Team2:   changedSide(next.Players.Team2, prev.Players.Team2),
		Shuttle: next.Shuttle != prev.Shuttle,
	}
}

func changedSide(next, prev []Coordinate) []bool {
	out := make([]bool, len(next))
	for i, c := range next {
		out[i] = i >= len(prev) || c != prev[i]
	}
	return out
}

// Moved lists the markers flagged in c, in display order.
func (c Changes) Moved() []MarkerID {
	var ids []MarkerID
	flags := []struct {
		side []bool
		ids  []MarkerID
	}{
		{c.Team1, []MarkerID{P1, P2}},
		{c.Team2, []MarkerID{P3, P4}},
	}
	for _, f := range flags {
		for i, moved := range f.side {
			if moved && i < len(f.ids) {
				ids = append(ids, f.ids[i])
			}
		}
	}
	if c.Shuttle {
		ids = append(ids, Shuttle)
	}
	return ids
}
