package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/playperu/courtboard/internal/court"
)

func TestRegistryCreateDefaults(t *testing.T) {
	defaults := court.Dimensions{Width: 348, Height: 180}
	reg := NewRegistry(slog.Default(), NewBroker(), defaults)

	tests := []struct {
		name string
		in   court.Dimensions
		want court.Dimensions
	}{
		{"zero", court.Dimensions{}, defaults},
		{"half set", court.Dimensions{Width: 100}, defaults},
		{"explicit", court.Dimensions{Width: 100, Height: 50}, court.Dimensions{Width: 100, Height: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.Create(tt.in).State().Court; got != tt.want {
				t.Errorf("court = %+v, want %+v", got, tt.want)
			}
		})
	}
	if reg.Len() != len(tests) {
		t.Errorf("Len = %d, want %d", reg.Len(), len(tests))
	}
}

func TestRegistrySweep(t *testing.T) {
	reg := NewRegistry(slog.Default(), NewBroker(), court.Dimensions{Width: 300, Height: 600})
	a := reg.Create(court.Dimensions{})
	b := reg.Create(court.Dimensions{})

	if evicted := reg.Sweep(time.Now(), time.Hour); len(evicted) != 0 {
		t.Fatalf("evicted fresh boards: %v", evicted)
	}

	evicted := reg.Sweep(time.Now().Add(2*time.Hour), time.Hour)
	if len(evicted) != 2 {
		t.Fatalf("evicted = %v, want both", evicted)
	}
	for _, id := range []string{a.ID, b.ID} {
		if _, err := reg.Get(id); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(%s) err = %v, want ErrNotFound", id, err)
		}
	}
}

func TestRegistrySweepClosesSubscribers(t *testing.T) {
	broker := NewBroker()
	reg := NewRegistry(slog.Default(), broker, court.Dimensions{Width: 300, Height: 600})
	sess := reg.Create(court.Dimensions{})
	ch := broker.Subscribe(sess.ID)
	defer broker.Unsubscribe(sess.ID, ch)

	reg.Sweep(time.Now().Add(2*time.Hour), time.Hour)

	select {
	case <-sess.Done():
	default:
		t.Fatal("Done not closed after eviction")
	}

	data, ok := <-ch
	if !ok {
		t.Fatal("channel closed without an eviction event")
	}
	var ev SSEEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("decoding event: %v", err)
	}
	if ev.Type != "evicted" || ev.State.ID != sess.ID {
		t.Errorf("event = %+v", ev)
	}
	if _, ok := <-ch; ok {
		t.Error("channel still open after eviction event")
	}
	if broker.Subscribers(sess.ID) != 0 {
		t.Errorf("subscribers = %d", broker.Subscribers(sess.ID))
	}
}

func TestSessionPublishesAcceptedCommands(t *testing.T) {
	broker := NewBroker()
	reg := NewRegistry(slog.Default(), broker, court.Dimensions{Width: 300, Height: 600})
	sess := reg.Create(court.Dimensions{})

	ch := broker.Subscribe(sess.ID)
	defer broker.Unsubscribe(sess.ID, ch)

	// Absorbed commands publish nothing.
	sess.Apply("undo", (*court.Board).Undo)
	select {
	case data := <-ch:
		t.Fatalf("unexpected event %s", data)
	default:
	}

	sess.Apply("drag_start", func(b *court.Board) bool { return b.StartDrag(court.P3, court.Coordinate{X: 225, Y: 420}) })
	sess.Apply("drag_move", func(b *court.Board) bool { return b.MoveDrag(court.P3, court.Coordinate{X: 200, Y: 400}) })

	var events []SSEEvent
	for range 2 {
		select {
		case data := <-ch:
			var ev SSEEvent
			if err := json.Unmarshal(data, &ev); err != nil {
				t.Fatalf("decoding event: %v", err)
			}
			events = append(events, ev)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
	if events[0].Type != "drag_start" || events[1].Type != "drag_move" {
		t.Fatalf("event types = %s, %s", events[0].Type, events[1].Type)
	}
	if len(events[1].Moved) != 1 || events[1].Moved[0] != court.P3 {
		t.Errorf("moved = %v, want [P3]", events[1].Moved)
	}
}

func TestBrokerDropsForSlowSubscriber(t *testing.T) {
	broker := NewBroker()
	ch := broker.Subscribe("b1")
	for range cap(ch) + 5 {
		broker.Publish("b1", SSEEvent{Type: "ping"})
	}
	if len(ch) != cap(ch) {
		t.Errorf("buffered = %d, want %d", len(ch), cap(ch))
	}
	if broker.Subscribers("b1") != 1 {
		t.Errorf("subscribers = %d", broker.Subscribers("b1"))
	}
	broker.Unsubscribe("b1", ch)
	if broker.Subscribers("b1") != 0 {
		t.Errorf("subscribers after unsubscribe = %d", broker.Subscribers("b1"))
	}
}
