// Package protocol defines the wire format of the multiplayer channel. Every
// message is a single flat JSON object. Server-to-client messages carry a
// "type" discriminator; client-to-server messages carry an "action"
// discriminator. The two keys are intentionally different and must not be
// unified: browsers in the field already speak this dialect.
package protocol

import "github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"

// Server-to-client message types.
const (
	TypeConnected      = "connected"
	TypeUpdateBoard    = "update_board"
	TypeGameOver       = "game_over"
	TypeGameRestart    = "game_restart"
	TypePlayerContinue = "player_continue"
	TypePlayerExit     = "player_exit"
	TypeChat           = "chat"
	TypeError          = "error"
)

// Client-to-server actions.
const (
	ActionMove     = "move"
	ActionContinue = "continue"
	ActionExit     = "exit"
	ActionChat     = "chat"
)

type ServerMessage struct {
	Type string `json:"type"`

	// connected
	PlayerSymbol   string `json:"player_symbol,omitempty"`
	OpponentJoined *bool  `json:"opponentJoined,omitempty"`

	// update_board, game_over, game_restart
	Board  *entity.Board `json:"board,omitempty"`
	Player string        `json:"player,omitempty"` // who moved, or whose intent this is
	Winner string        `json:"winner,omitempty"`
	Turn   string        `json:"player_turn,omitempty"`

	// chat
	Message *entity.ChatMessage `json:"message,omitempty"`

	// error
	Error string `json:"error,omitempty"`
}

type ClientMessage struct {
	Action string `json:"action"`

	Move    *int                `json:"move,omitempty"`
	Player  string              `json:"player,omitempty"`
	Board   *entity.Board       `json:"board,omitempty"` // client's optimistic snapshot, informational only
	Message *entity.ChatMessage `json:"message,omitempty"`
}

func Connected(symbol string, opponentJoined bool) ServerMessage {
	return ServerMessage{
		Type:           TypeConnected,
		PlayerSymbol:   symbol,
		OpponentJoined: &opponentJoined,
	}
}

func UpdateBoard(board entity.Board, player string) ServerMessage {
	return ServerMessage{
		Type:   TypeUpdateBoard,
		Board:  &board,
		Player: player,
	}
}

func GameOver(board entity.Board, winner string) ServerMessage {
	return ServerMessage{
		Type:   TypeGameOver,
		Board:  &board,
		Winner: winner,
	}
}

func GameRestart(board entity.Board, turn string) ServerMessage {
	return ServerMessage{
		Type:  TypeGameRestart,
		Board: &board,
		Turn:  turn,
	}
}

func PlayerContinue(player string) ServerMessage {
	return ServerMessage{Type: TypePlayerContinue, Player: player}
}

func PlayerExit(player string) ServerMessage {
	return ServerMessage{Type: TypePlayerExit, Player: player}
}

func Chat(player, text string) ServerMessage {
	return ServerMessage{
		Type:    TypeChat,
		Message: &entity.ChatMessage{Player: player, Text: text},
	}
}

func Error(reason string) ServerMessage {
	return ServerMessage{Type: TypeError, Error: reason}
}
