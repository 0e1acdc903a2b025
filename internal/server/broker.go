package server

import (
	"encoding/json"
	"sync"

	"github.com/playperu/courtboard/internal/court"
)

// SSEEvent is the payload published to board subscribers.
type SSEEvent struct {
	Type  string           `json:"type"`
	Moved []court.MarkerID `json:"moved,omitempty"`
	State BoardState       `json:"state"`
}

// Broker is an in-process pub/sub for SSE events, keyed by board ID.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events for the given board.
func (b *Broker) Subscribe(boardID string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[boardID] == nil {
		b.subs[boardID] = make(map[chan []byte]struct{})
	}
	b.subs[boardID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the board's subscribers.
func (b *Broker) Unsubscribe(boardID string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[boardID], ch)
	if len(b.subs[boardID]) == 0 {
		delete(b.subs, boardID)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the given board.
func (b *Broker) Publish(boardID string, event SSEEvent) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[boardID] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow; the next event carries full state.
		}
	}
	b.mu.RUnlock()
}

// Close sends a final "evicted" event to every subscriber of the board and
// closes their channels.
func (b *Broker) Close(boardID string) {
	data, _ := json.Marshal(SSEEvent{Type: "evicted", State: BoardState{ID: boardID}})
	b.mu.Lock()
	for ch := range b.subs[boardID] {
		select {
		case ch <- data:
		default:
		}
		close(ch)
	}
	delete(b.subs, boardID)
	b.mu.Unlock()
}

// Subscribers returns how many channels listen on a board.
func (b *Broker) Subscribers(boardID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[boardID])
}
