package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/goldhollow/trophytable/internal/models"
	rollRepo "github.com/goldhollow/trophytable/internal/repositories/roll"
	"github.com/goldhollow/trophytable/internal/services/table"
)

const (
	// writeWait bounds a single websocket write
	writeWait = 10 * time.Second

	// pongWait is how long a client may stay silent before the feed drops it
	pongWait = 60 * time.Second

	// pingPeriod must be shorter than pongWait
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect cross-origin; the token cookie is pre-fill
	// state, not a credential, so any origin may open the feed.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// feedMessage is one frame on the feed. The first frame is always the
// history snapshot; after that each frame mirrors one log event.
type feedMessage struct {
	Type  string         `json:"type"`
	Rolls []*models.Roll `json:"rolls,omitempty"`
	Roll  *models.Roll   `json:"roll,omitempty"`
}

// feed upgrades to a websocket and streams the session's roll log: a
// snapshot of the current window first, then every roll and purge as it
// happens. Subscribers see their own writes come back through here too.
func (h *Handler) feed(c *gin.Context) {
	sessionID := c.Param("id")

	// The subscription outlives the HTTP request: once the connection is
	// hijacked for the websocket, the request context is canceled even
	// though the feed keeps running.
	sub, err := h.service.WatchRolls(context.Background(), &table.WatchRollsInput{
		SessionID: sessionID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	history, err := h.service.History(c.Request.Context(), &table.HistoryInput{
		SessionID: sessionID,
	})
	if err != nil {
		sub.Close()
		h.writeError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		sub.Close()
		h.logger.Error("websocket upgrade failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return
	}

	h.logger.Info("feed opened", zap.String("session_id", sessionID))
	go h.serveFeed(conn, sub, sessionID, history.Rolls)
}

func (h *Handler) serveFeed(conn *websocket.Conn, sub *rollRepo.Subscription, sessionID string, snapshot []*models.Roll) {
	defer func() {
		sub.Close()
		conn.Close()
		h.logger.Info("feed closed", zap.String("session_id", sessionID))
	}()

	// Reader goroutine: the feed is write-only, so reads exist solely to
	// process pongs and notice the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if snapshot == nil {
		snapshot = []*models.Roll{}
	}
	if err := h.writeFrame(conn, &feedMessage{Type: "history", Rolls: snapshot}); err != nil {
		return
	}

	// The subscription opens before the snapshot is read, so a roll landing
	// in between arrives twice: once inside the snapshot and once as an
	// event. The snapshot head marks which roll events are already known.
	head := snapshotHead(snapshot)

	pinger := time.NewTicker(pingPeriod)
	defer pinger.Stop()

	for {
		select {
		case event, ok := <-sub.Events():
			if !ok {
				return
			}
			if supersededBySnapshot(event, head) {
				continue
			}
			msg := &feedMessage{Type: string(event.Type), Roll: event.Roll}
			if err := h.writeFrame(conn, msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.logger.Warn("feed write failed",
						zap.String("session_id", sessionID),
						zap.Error(err),
					)
				}
				return
			}
		case <-pinger.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// snapshotHead returns the newest roll id in a snapshot, 0 when empty.
func snapshotHead(snapshot []*models.Roll) int64 {
	if len(snapshot) == 0 {
		return 0
	}
	return snapshot[0].ID
}

// supersededBySnapshot reports whether a roll event is already part of the
// history frame the client received. Purge events always pass through.
func supersededBySnapshot(event rollRepo.Event, head int64) bool {
	return event.Type == rollRepo.EventTypeRoll && event.Roll != nil && event.Roll.ID <= head
}

func (h *Handler) writeFrame(conn *websocket.Conn, msg *feedMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}
