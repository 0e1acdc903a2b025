package server

import (
	"sync"
	"time"

	"github.com/playperu/courtboard/internal/court"
)

// BoardState is everything a client needs to draw one board.
type BoardState struct {
	ID        string                `json:"id"`
	Court     court.Dimensions      `json:"court"`
	IsDoubles bool                  `json:"isDoubles"`
	Snapshot  court.Snapshot        `json:"snapshot"`
	Dragging  *court.MarkerID       `json:"dragging"`
	History   court.HistoryInfo     `json:"history"`
	Trails    court.TrailVisibility `json:"trails"`
}

// CommandResponse is returned by every board command. Accepted is false
// when the command was absorbed as a no-op (orphan drag event, undo at the
// start of history and the like).
type CommandResponse struct {
	Accepted bool       `json:"accepted"`
	State    BoardState `json:"state"`
}

// Session serializes access to one court.Board, which is not safe for
// concurrent use, and fans its changes out to subscribers.
type Session struct {
	ID string

	mu       sync.Mutex
	board    *court.Board
	lastSeen time.Time
	broker   *Broker
	done     chan struct{}
}

func newSession(id string, dims court.Dimensions, broker *Broker) *Session {
	return &Session{
		ID:       id,
		board:    court.NewBoard(dims),
		lastSeen: time.Now(),
		broker:   broker,
		done:     make(chan struct{}),
	}
}

// Done is closed once the board has been evicted from the registry.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// HistoryAt returns committed entry i of the board's timeline.
func (s *Session) HistoryAt(i int) (court.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return s.board.HistoryAt(i)
}

// Apply runs op against the board and publishes the resulting state when
// op reports that something happened.
func (s *Session) Apply(event string, op func(b *court.Board) bool) CommandResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = time.Now()
	prev := s.board.Current()
	accepted := op(s.board)
	state := s.stateLocked()

	if accepted {
		s.broker.Publish(s.ID, SSEEvent{
			Type:  event,
			Moved: court.Changed(state.Snapshot, prev).Moved(),
			State: state,
		})
	}
	return CommandResponse{Accepted: accepted, State: state}
}

// State returns the current board state.
func (s *Session) State() BoardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return s.stateLocked()
}

// Trails returns the trails to draw right now.
func (s *Session) Trails() []court.Trail {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return s.board.Trails()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) stateLocked() BoardState {
	st := BoardState{
		ID:        s.ID,
		Court:     s.board.Dimensions(),
		IsDoubles: s.board.IsDoubles(),
		Snapshot:  s.board.Current(),
		History:   s.board.History(),
		Trails:    s.board.TrailVisibility(),
	}
	if id, ok := s.board.Dragging(); ok {
		st.Dragging = &id
	}
	return st
}
