// Package court holds the positioning state of a badminton court board:
// committed marker positions, the undo/redo timeline and the ghost
// positions used to draw movement trails.
// It has zero external dependencies and is not safe for concurrent use.
package court

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMarker  = errors.New("unknown marker")
	ErrInactiveMarker = errors.New("marker not on court in this mode")
)

type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type MarkerID string

const (
	P1      MarkerID = "P1"
	P2      MarkerID = "P2"
	P3      MarkerID = "P3"
	P4      MarkerID = "P4"
	Shuttle MarkerID = "Shuttle"
)

// Markers lists every marker in display order.
var Markers = []MarkerID{P1, P2, P3, P4, Shuttle}

// ParseMarkerID validates s against the fixed marker set.
func ParseMarkerID(s string) (MarkerID, error) {
	id := MarkerID(s)
	switch id {
	case P1, P2, P3, P4, Shuttle:
		return id, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMarker, s)
}

type Team int

const (
	Team1 Team = 1
	Team2 Team = 2
)

// slot resolves a player marker to its team and slot. ok is false for the
// shuttle. Any id outside the fixed set is a caller bug.
func (id MarkerID) slot() (team Team, slot int, ok bool) {
	switch id {
	case P1:
		return Team1, 0, true
	case P2:
		return Team1, 1, true
	case P3:
		return Team2, 0, true
	case P4:
		return Team2, 1, true
	case Shuttle:
		return 0, 0, false
	}
	panic(fmt.Sprintf("court: unknown marker id %q", string(id)))
}

// IsPlayer reports whether id is one of the four player markers.
func (id MarkerID) IsPlayer() bool {
	_, _, ok := id.slot()
	return ok
}

type Teams struct {
	Team1 []Coordinate `json:"team1"`
	Team2 []Coordinate `json:"team2"`
}

func (t Teams) clone() Teams {
	return Teams{
		Team1: append([]Coordinate(nil), t.Team1...),
		Team2: append([]Coordinate(nil), t.Team2...),
	}
}

func (t *Teams) side(team Team) []Coordinate {
	if team == Team1 {
		return t.Team1
	}
	return t.Team2
}

type Ghost struct {
	Team1   []Coordinate `json:"team1"`
	Team2   []Coordinate `json:"team2"`
	Shuttle Coordinate   `json:"shuttle"`
}

func (g Ghost) clone() Ghost {
	return Ghost{
		Team1:   append([]Coordinate(nil), g.Team1...),
		Team2:   append([]Coordinate(nil), g.Team2...),
		Shuttle: g.Shuttle,
	}
}

// Snapshot is one committed state of every marker plus the position each
// marker held before its latest move.
type Snapshot struct {
	Players Teams      `json:"players"`
	Shuttle Coordinate `json:"shuttle"`
	Ghost   Ghost      `json:"ghost"`
}

// Clone returns a deep copy; snapshots handed out never alias history.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Players: s.Players.clone(),
		Shuttle: s.Shuttle,
		Ghost:   s.Ghost.clone(),
	}
}

// Has reports whether id occupies a slot in this snapshot.
func (s Snapshot) Has(id MarkerID) bool {
	team, slot, ok := id.slot()
	if !ok {
		return true
	}
	return slot < len(s.Players.side(team))
}

// Position returns the current position of id. The marker must be present.
func (s Snapshot) Position(id MarkerID) Coordinate {
	team, slot, ok := id.slot()
	if !ok {
		return s.Shuttle
	}
	return s.Players.side(team)[slot]
}

// GhostOf returns the ghost position of id. The marker must be present.
func (s Snapshot) GhostOf(id MarkerID) Coordinate {
	team, slot, ok := id.slot()
	if !ok {
		return s.Ghost.Shuttle
	}
	if team == Team1 {
		return s.Ghost.Team1[slot]
	}
	return s.Ghost.Team2[slot]
}

// setPosition and setGhost mutate in place; callers own the snapshot.
func (s *Snapshot) setPosition(id MarkerID, c Coordinate) {
	team, slot, ok := id.slot()
	if !ok {
		s.Shuttle = c
		return
	}
	s.Players.side(team)[slot] = c
}

func (s *Snapshot) setGhost(id MarkerID, c Coordinate) {
	team, slot, ok := id.slot()
	switch {
	case !ok:
		s.Ghost.Shuttle = c
	case team == Team1:
		s.Ghost.Team1[slot] = c
	default:
		s.Ghost.Team2[slot] = c
	}
}

// Active lists the markers present in s, in display order.
func (s Snapshot) Active() []MarkerID {
	ids := make([]MarkerID, 0, len(Markers))
	for _, id := range Markers {
		if s.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// ghostCongruent reports whether the ghost arrays match the player arrays.
func (s Snapshot) ghostCongruent() bool {
	return len(s.Ghost.Team1) == len(s.Players.Team1) &&
		len(s.Ghost.Team2) == len(s.Players.Team2)
}
