package client

import (
	"sync"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/apperror"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/protocol"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/tictactoe"
)

// State is the local view of the room. It is a cache of the server's
// authoritative state, never a source of truth: every server broadcast
// replaces its fields wholesale.
type State struct {
	Board  entity.Board
	Turn   string
	Winner string

	Symbol         string
	Connected      bool
	OpponentJoined bool

	Transcript []entity.ChatMessage
}

// Mirror applies inbound server messages to local state. Server values always
// win over optimistic local predictions (last-write-wins): a rejected move is
// implicitly undone by the next broadcast, which simply omits it.
type Mirror struct {
	mu    sync.RWMutex
	state State
}

func NewMirror() *Mirror {
	return &Mirror{
		state: State{Turn: entity.PlayerX},
	}
}

func (that *Mirror) Snapshot() State {
	that.mu.RLock()
	defer that.mu.RUnlock()

	state := that.state
	state.Transcript = append([]entity.ChatMessage(nil), that.state.Transcript...)

	return state
}

// Apply is the reducer for one inbound server message.
func (that *Mirror) Apply(msg protocol.ServerMessage) {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch msg.Type {
	case protocol.TypeConnected:
		that.state.Symbol = msg.PlayerSymbol
		if msg.OpponentJoined != nil {
			that.state.OpponentJoined = *msg.OpponentJoined
		}
	case protocol.TypeUpdateBoard:
		that.state.Board = *msg.Board
		that.state.Turn = tictactoe.ToggleMark(msg.Player)
		that.state.Winner = entity.EmptyCell
	case protocol.TypeGameOver:
		that.state.Board = *msg.Board
		that.state.Winner = msg.Winner
		that.state.Turn = entity.EmptyCell
	case protocol.TypeGameRestart:
		that.state.Board = *msg.Board
		that.state.Turn = msg.Turn
		that.state.Winner = entity.EmptyCell
	case protocol.TypePlayerExit:
		if msg.Player != that.state.Symbol {
			that.state.OpponentJoined = false
		}
	case protocol.TypeChat:
		if msg.Message != nil {
			that.state.Transcript = append(that.state.Transcript, *msg.Message)
		}
	}
}

// CanMove reports whether a local click on cell should be sent at all:
// connected, opponent present, round not terminal, local turn, cell free.
// These are the same rules the server enforces; checking them here only
// narrows the race window, it does not replace server arbitration.
func (that *Mirror) CanMove(cell int) error {
	that.mu.RLock()
	defer that.mu.RUnlock()

	switch {
	case !that.state.Connected:
		return apperror.ErrNotConnected
	case !that.state.OpponentJoined:
		return apperror.ErrOpponentNotReady
	case that.state.Winner != entity.EmptyCell:
		return apperror.ErrGameFinished
	case cell < 0 || cell >= len(that.state.Board):
		return apperror.ErrInvalidCell
	case that.state.Board[cell] != entity.EmptyCell:
		return apperror.ErrCellOccupied
	case that.state.Turn != that.state.Symbol:
		return apperror.ErrNotYourTurn
	}

	return nil
}

// predictMove renders the local move immediately for latency hiding. The next
// authoritative broadcast overwrites this prediction either way.
func (that *Mirror) predictMove(cell int) entity.Board {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.state.Board[cell] = that.state.Symbol
	that.state.Turn = tictactoe.ToggleMark(that.state.Symbol)

	return that.state.Board
}

// predictRestart optimistically clears the round after a local continue.
func (that *Mirror) predictRestart() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.state.Board = entity.Board{}
	that.state.Turn = entity.PlayerX
	that.state.Winner = entity.EmptyCell
}

func (that *Mirror) setConnected(connected bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.state.Connected = connected
}

func (that *Mirror) symbol() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.state.Symbol
}
