package websocket

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/pkg"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/protocol"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 1024

	sendBufferSize = 32
)

var (
	ErrConnClosed     = errors.New("connection is closed")
	ErrSendBufferFull = errors.New("send buffer is full")
)

// conn wraps one websocket connection. Outbound messages go through a
// buffered channel drained by writePump, so the room never blocks on a slow
// client while holding its lock.
type conn struct {
	id     string
	logger *slog.Logger
	ws     *websocket.Conn

	send      chan protocol.ServerMessage
	done      chan struct{}
	closeOnce sync.Once
}

func newConn(logger *slog.Logger, ws *websocket.Conn) *conn {
	id := pkg.GenerateSessionID()

	return &conn{
		id:     id,
		logger: logger.With("session", id),
		ws:     ws,

		send: make(chan protocol.ServerMessage, sendBufferSize),
		done: make(chan struct{}),
	}
}

func (that *conn) Send(msg protocol.ServerMessage) error {
	select {
	case <-that.done:
		return ErrConnClosed
	default:
	}

	select {
	case that.send <- msg:
		return nil
	default:
		return ErrSendBufferFull
	}
}

func (that *conn) close() {
	that.closeOnce.Do(func() {
		close(that.done)
		if err := that.ws.Close(); err != nil {
			that.logger.Debug("failed to close connection", "error", err)
		}
	})
}

func (that *conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		that.close()
	}()

	for {
		select {
		case msg := <-that.send:
			_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.ws.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-that.done:
			return
		}
	}
}
