package websocket

import (
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/protocol"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/room"
)

// dispatch routes one inbound client message by its action discriminator.
func (that *Server) dispatch(rm *room.Room, symbol string, msg *protocol.ClientMessage) {
	log := that.logger.With("method", "dispatch", "room", rm.Name(), "symbol", symbol)

	switch msg.Action {
	case protocol.ActionMove:
		if msg.Move == nil {
			log.Warn("move without cell index")
			return
		}

		// Invalid moves are rejected toward the submitter only: no state
		// change, no broadcast. The next authoritative broadcast corrects
		// the client's optimistic render.
		if err := rm.SubmitMove(symbol, *msg.Move); err != nil {
			log.Debug("move rejected", "cell", *msg.Move, "error", err)
		}
	case protocol.ActionContinue:
		rm.RequestContinue(symbol)
	case protocol.ActionExit:
		rm.RequestExit(symbol)
	case protocol.ActionChat:
		if msg.Message == nil || msg.Message.Text == "" {
			return
		}

		// the sender's identity comes from the session, not the payload
		rm.Chat(symbol, msg.Message.Text)
	default:
		log.Warn("unknown action", "action", msg.Action)
	}
}
