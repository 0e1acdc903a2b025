package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/playperu/courtboard/internal/court"
)

var ErrNotFound = errors.New("not found")

// Registry holds the live board sessions. Nothing survives a restart.
type Registry struct {
	logger   *slog.Logger
	broker   *Broker
	defaults court.Dimensions

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry(logger *slog.Logger, broker *Broker, defaults court.Dimensions) *Registry {
	return &Registry{
		logger:   logger,
		broker:   broker,
		defaults: defaults,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new board. Zero dimensions fall back to the configured
// default court size.
func (r *Registry) Create(dims court.Dimensions) *Session {
	if dims.Width <= 0 || dims.Height <= 0 {
		dims = r.defaults
	}
	s := newSession(newID(), dims, r.broker)

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	r.logger.Info("board created", "board_id", s.ID, "width", dims.Width, "height", dims.Height)
	return s
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops boards untouched since before now-idle and returns their IDs.
// Subscribers of an evicted board get a final "evicted" event and their
// channels are closed.
func (r *Registry) Sweep(now time.Time, idle time.Duration) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var evicted []string
	for id, s := range r.sessions {
		if now.Sub(s.idleSince()) > idle {
			delete(r.sessions, id)
			close(s.done)
			r.broker.Close(id)
			evicted = append(evicted, id)
		}
	}
	for _, id := range evicted {
		r.logger.Info("board evicted", "board_id", id, "idle", idle.String())
	}
	return evicted
}

// Run sweeps idle boards every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval, idle time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.C:
			r.Sweep(now, idle)
		}
	}
}

func newID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
