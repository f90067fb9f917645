package bridge

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/junction-ui/junction/pkg/router"
)

// writeTimeout bounds each event write so a stalled client cannot wedge
// the stream goroutine.
const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The bridge is a local platform boundary, not a public origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleEvents upgrades to a WebSocket and streams committed navigation
// transitions for one router handle. The first message is an "init"
// event carrying the router's current path.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	inst, ok := s.instance(w, r)
	if !ok {
		return
	}

	ch := inst.hub.subscribe()
	if ch == nil {
		s.writeError(w, http.StatusGone, router.KindInternal, "router released")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		inst.hub.unsubscribe(ch)
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer func() {
		inst.hub.unsubscribe(ch)
		conn.Close()
	}()

	inst.mu.Lock()
	init := Event{Event: "init", Path: inst.router.CurrentPath(), Time: time.Now()}
	inst.mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(init); err != nil {
		return
	}

	// Reader goroutine: the client sends nothing meaningful, but reading
	// is how we learn the connection closed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "router released"),
					time.Now().Add(writeTimeout))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}

		case <-done:
			return
		}
	}
}
