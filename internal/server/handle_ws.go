package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/playperu/courtboard/internal/court"
)

// DragMessage is one gesture event sent over the drag websocket.
type DragMessage struct {
	Type   string  `json:"type"` // start | move | end | cancel
	Marker string  `json:"marker,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
}

var errUnknownMessage = errors.New("unknown message type")

// handleDragStream accepts a websocket carrying the drag protocol for one
// board. Each message is answered with a CommandResponse or an
// ErrorResponse. A drag this connection opened is cancelled when the
// connection drops before its end event; a drag started since by someone
// else is left alone. Eviction of the board closes the connection.
func handleDragStream(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := boardSession(r)

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Minute)
		defer cancel()
		go func() {
			select {
			case <-sess.Done():
				logger.Debug("closing websocket of evicted board", "board_id", sess.ID)
				cancel()
			case <-ctx.Done():
			}
		}()

		var open uint64
		defer func() {
			cancelled := false
			if open != 0 {
				cancelled = sess.Apply("drag_cancel", func(b *court.Board) bool {
					if token, ok := b.DragToken(); ok && token == open {
						return b.CancelDrag()
					}
					return false
				}).Accepted
			}
			logger.Debug("drag stream closed", "board_id", sess.ID, "cancelled_drag", cancelled)
		}()

		for {
			var msg DragMessage
			if err := wsjson.Read(ctx, conn, &msg); err != nil {
				logger.Debug("websocket read ended", "board_id", sess.ID, "error", err)
				return
			}

			resp, token, err := applyDragMessage(sess, msg)
			var reply any = resp
			switch {
			case err != nil:
				reply = ErrorResponse{Error: err.Error()}
			case msg.Type == "start":
				open = token
			case msg.Type == "end" || msg.Type == "cancel":
				open = 0
			}

			if err := wsjson.Write(ctx, conn, reply); err != nil {
				logger.Debug("websocket write failed", "board_id", sess.ID, "error", err)
				return
			}
		}
	}
}

// applyDragMessage runs one message against sess. For an accepted start
// it also returns the token of the opened drag.
func applyDragMessage(sess *Session, msg DragMessage) (CommandResponse, uint64, error) {
	switch msg.Type {
	case "start", "move":
		id, pos, err := DragRequest{Marker: msg.Marker, X: msg.X, Y: msg.Y}.parse()
		if err != nil {
			return CommandResponse{}, 0, err
		}
		if msg.Type == "start" {
			return startDrag(sess, id, pos)
		}
		return sess.Apply("drag_move", func(b *court.Board) bool { return b.MoveDrag(id, pos) }), 0, nil
	case "end":
		return sess.Apply("commit", (*court.Board).EndDrag), 0, nil
	case "cancel":
		return sess.Apply("drag_cancel", (*court.Board).CancelDrag), 0, nil
	}
	return CommandResponse{}, 0, errUnknownMessage
}
