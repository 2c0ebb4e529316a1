// Package client implements the multiplayer session mirror: a websocket
// client that keeps a local, optimistically-updated copy of one room's state
// and reconciles it against the server's authoritative broadcasts.
package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/protocol"
)

const writeWait = 10 * time.Second

type Client struct {
	logger *slog.Logger
	ws     *websocket.Conn
	mirror *Mirror

	onUpdate func(State)

	writeMu   sync.Mutex
	done      chan struct{}
	closeOnce sync.Once

	errMu   sync.Mutex
	lastErr error
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(that *Client) { that.logger = logger }
}

// WithUpdateHandler registers a callback invoked after every applied server
// message, with a snapshot of the new state. It runs on the read loop.
func WithUpdateHandler(fn func(State)) Option {
	return func(that *Client) { that.onUpdate = fn }
}

// Dial opens the persistent channel for one (client, room) pair. An optional
// preferred symbol is declared as a query parameter; the server has the final
// say and reports the assignment in the connected message.
func Dial(ctx context.Context, serverURL, roomName, preferredSymbol string, opts ...Option) (*Client, error) {
	endpoint := fmt.Sprintf("%s/ws/game/%s", strings.TrimSuffix(serverURL, "/"), url.PathEscape(roomName))
	if preferredSymbol != "" {
		endpoint += "?player_symbol=" + url.QueryEscape(preferredSymbol)
	}

	ws, resp, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil) //nolint: bodyclose // gorilla owns resp on success
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return nil, fmt.Errorf("failed to dial %s: %w", endpoint, err)
	}

	that := &Client{
		logger: slog.Default(),
		ws:     ws,
		mirror: NewMirror(),

		done: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(that)
	}

	that.mirror.setConnected(true)
	go that.readLoop()

	return that, nil
}

// State returns a snapshot of the local mirror.
func (that *Client) State() State {
	return that.mirror.Snapshot()
}

// Done is closed once the channel is lost or closed. After that all input is
// refused until a fresh Dial establishes a new session.
func (that *Client) Done() <-chan struct{} {
	return that.done
}

// Err reports why the session ended, if the server refused or dropped it.
func (that *Client) Err() error {
	that.errMu.Lock()
	defer that.errMu.Unlock()

	return that.lastErr
}

// Move submits a move for the given cell. The move is rendered locally right
// away; the next authoritative broadcast confirms or silently corrects it.
func (that *Client) Move(cell int) error {
	if err := that.mirror.CanMove(cell); err != nil {
		return err
	}

	board := that.mirror.predictMove(cell)

	return that.sendMessage(protocol.ClientMessage{
		Action: protocol.ActionMove,
		Move:   &cell,
		Player: that.mirror.symbol(),
		Board:  &board,
	})
}

// Continue asks for a rematch after game over. The local board resets
// optimistically; the authoritative fresh round arrives once the opponent
// agrees.
func (that *Client) Continue() error {
	that.mirror.predictRestart()

	return that.sendMessage(protocol.ClientMessage{
		Action: protocol.ActionContinue,
		Player: that.mirror.symbol(),
	})
}

// Exit leaves the room and closes the channel.
func (that *Client) Exit() error {
	err := that.sendMessage(protocol.ClientMessage{
		Action: protocol.ActionExit,
		Player: that.mirror.symbol(),
	})

	that.Close()

	return err
}

func (that *Client) Chat(text string) error {
	return that.sendMessage(protocol.ClientMessage{
		Action: protocol.ActionChat,
		Message: &entity.ChatMessage{
			Player: that.mirror.symbol(),
			Text:   text,
		},
	})
}

func (that *Client) Close() {
	that.closeOnce.Do(func() {
		if err := that.ws.Close(); err != nil {
			that.logger.Debug("failed to close connection", "error", err)
		}
	})
}

func (that *Client) sendMessage(msg protocol.ClientMessage) error {
	select {
	case <-that.done:
		return ErrSessionClosed
	default:
	}

	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))
	if err := that.ws.WriteJSON(msg); err != nil {
		return fmt.Errorf("failed to send %s: %w", msg.Action, err)
	}

	return nil
}

var ErrSessionClosed = errors.New("session is closed")

func (that *Client) readLoop() {
	defer func() {
		that.mirror.setConnected(false)
		close(that.done)
		that.Close()
	}()

	for {
		var msg protocol.ServerMessage
		if err := that.ws.ReadJSON(&msg); err != nil {
			return
		}

		if msg.Type == protocol.TypeError {
			that.setErr(errors.New(msg.Error))
			return
		}

		that.mirror.Apply(msg)

		if that.onUpdate != nil {
			that.onUpdate(that.mirror.Snapshot())
		}
	}
}

func (that *Client) setErr(err error) {
	that.errMu.Lock()
	defer that.errMu.Unlock()

	that.lastErr = err
}
