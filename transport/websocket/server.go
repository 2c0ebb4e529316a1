package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/protocol"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/room"
)

type Server struct {
	logger *slog.Logger
	rooms  *room.Manager

	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, rooms *room.Manager) *Server {
	return &Server{
		logger: logger,
		rooms:  rooms,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				// the browser client is served from another origin
				return true
			},
		},
	}
}

// Handler returns the routing for the game channel endpoint.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws/game/{room}", that.handleGame)

	return mux
}

// Start - starts the WebSocket server and blocks until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// handleGame upgrades the connection and joins it to the room named in the
// path. An optional player_symbol query parameter declares a symbol
// preference; the room has the final say.
func (that *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleGame")

	roomName := r.PathValue("room")
	if roomName == "" {
		http.Error(w, "room name is required", http.StatusBadRequest)
		return
	}

	preferred := r.URL.Query().Get("player_symbol")

	ws, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newConn(that.logger, ws)

	rm, symbol, err := that.rooms.Join(roomName, c, preferred)
	if err != nil {
		// join refused: inform the client, no session is created
		_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
		_ = ws.WriteJSON(protocol.Error(err.Error()))
		_ = ws.Close()

		log.Info("join refused", "room", roomName, "error", err)
		return
	}

	go c.writePump()

	log.Info("player joined room", "room", roomName, "symbol", symbol, "session", c.id)

	that.readPump(rm, symbol, c)
}

// readPump reads client messages until the connection drops, then reports the
// disconnect to the room.
func (that *Server) readPump(rm *room.Room, symbol string, c *conn) {
	defer c.close()

	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg protocol.ClientMessage
		if err := c.ws.ReadJSON(&msg); err != nil {
			break
		}

		that.dispatch(rm, symbol, &msg)
	}

	// a no-op if the participant already exited gracefully
	rm.Leave(c)
}
