// Package room owns the authoritative state of every multiplayer session.
// All mutations of one room (joins, moves, continue/exit intents, disconnects)
// are serialized behind the room's mutex and broadcast in acceptance order,
// so two near-simultaneous moves can never both be accepted for the same turn.
package room

import (
	"log/slog"
	"sync"
	"time"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/apperror"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/protocol"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/tictactoe"
)

// Conn is the transport-side handle for one participant. Send must not block:
// the room calls it while holding its lock.
type Conn interface {
	Send(msg protocol.ServerMessage) error
}

type participant struct {
	conn          Conn
	symbol        string
	wantsContinue bool
	disconnected  bool
	releaseTimer  *time.Timer
}

type Room struct {
	name        string
	logger      *slog.Logger
	gracePeriod time.Duration
	onEmpty     func(name string)

	mu           sync.Mutex
	game         *entity.Game
	participants map[string]*participant // symbol -> participant
	destroyed    bool
}

func newRoom(name string, logger *slog.Logger, gracePeriod time.Duration, onEmpty func(string)) *Room {
	return &Room{
		name:        name,
		logger:      logger,
		gracePeriod: gracePeriod,
		onEmpty:     onEmpty,

		game:         entity.NewGame(),
		participants: make(map[string]*participant),
	}
}

func (that *Room) Name() string {
	return that.name
}

// Join assigns a symbol to the connection. The first joiner gets its
// preferred symbol if valid, else X; the second joiner gets the remaining
// one. A preferred symbol held by a live participant fails with
// ErrSymbolTaken, a third distinct join with ErrRoomFull. A joiner may
// reclaim a slot whose owner dropped within the grace period. Both
// participants are (re)informed of their symbol and opponent presence, and
// the joiner is resynced with the current board when a round is underway.
func (that *Room) Join(conn Conn, preferred string) (string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.destroyed {
		return "", apperror.ErrRoomNotFound
	}

	if preferred != entity.PlayerX && preferred != entity.PlayerO {
		preferred = ""
	}

	if held := that.heldSlotLocked(preferred); held != nil {
		held.releaseTimer.Stop()
		held.releaseTimer = nil
		held.conn = conn
		held.disconnected = false

		that.announceLocked()
		that.resyncLocked(held)

		return held.symbol, nil
	}

	if preferred != "" {
		if _, taken := that.participants[preferred]; taken {
			return "", apperror.ErrSymbolTaken
		}
	}

	if len(that.participants) >= 2 {
		return "", apperror.ErrRoomFull
	}

	symbol := preferred
	if symbol == "" {
		symbol = entity.PlayerX
		if _, taken := that.participants[entity.PlayerX]; taken {
			symbol = entity.PlayerO
		}
	}

	joined := &participant{conn: conn, symbol: symbol}
	that.participants[symbol] = joined

	if len(that.participants) == 2 && that.game.IsWaiting() {
		that.game.Status = entity.StatusOngoing
	}

	that.announceLocked()
	that.resyncLocked(joined)

	return symbol, nil
}

// SubmitMove validates and applies one move. Rejections never mutate room
// state and are reported to the submitter only; accepted moves are broadcast
// to both participants in acceptance order, the terminal one as game_over.
func (that *Room) SubmitMove(symbol string, cell int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.participants[symbol]; !ok {
		return apperror.ErrUnauthorized
	}

	if that.game.IsWaiting() {
		return apperror.ErrGameIsNotStarted
	}

	if err := tictactoe.MakeTurn(that.game, symbol, cell); err != nil {
		return err
	}

	if that.game.IsFinished() {
		that.broadcastLocked(protocol.GameOver(that.game.Board, that.game.Winner))
		return nil
	}

	that.broadcastLocked(protocol.UpdateBoard(that.game.Board, symbol))

	return nil
}

// RequestContinue records a rematch intent for the current terminal round.
// The counterpart is informed; the room resets and broadcasts a fresh round
// only once both live participants have agreed.
func (that *Room) RequestContinue(symbol string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	p, ok := that.participants[symbol]
	if !ok || !that.game.IsFinished() {
		return
	}

	if !p.wantsContinue {
		p.wantsContinue = true
		that.sendToOthersLocked(symbol, protocol.PlayerContinue(symbol))
	}

	if !that.allWantContinueLocked() {
		return
	}

	that.game.Reset()
	for _, cand := range that.participants {
		cand.wantsContinue = false
	}

	that.broadcastLocked(protocol.GameRestart(that.game.Board, that.game.Turn))
}

// RequestExit releases the participant's slot and notifies the counterpart.
// The room is destroyed once the last slot is released.
func (that *Room) RequestExit(symbol string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	p, ok := that.participants[symbol]
	if !ok {
		return
	}

	if p.releaseTimer != nil {
		p.releaseTimer.Stop()
	}
	delete(that.participants, symbol)

	that.broadcastLocked(protocol.PlayerExit(symbol))
	that.afterSlotReleasedLocked()
}

// Leave handles an ungraceful disconnect: the counterpart is informed
// immediately, but the symbol slot is held for the grace period so a
// reconnecting client can reclaim it.
func (that *Room) Leave(conn Conn) {
	that.mu.Lock()
	defer that.mu.Unlock()

	var p *participant
	for _, cand := range that.participants {
		if cand.conn == conn {
			p = cand
			break
		}
	}

	if p == nil || p.disconnected {
		return
	}

	p.disconnected = true
	that.sendToOthersLocked(p.symbol, protocol.PlayerExit(p.symbol))

	if that.gracePeriod <= 0 {
		delete(that.participants, p.symbol)
		that.afterSlotReleasedLocked()
		return
	}

	symbol := p.symbol
	p.releaseTimer = time.AfterFunc(that.gracePeriod, func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		cand, ok := that.participants[symbol]
		if !ok || !cand.disconnected {
			return
		}

		delete(that.participants, symbol)
		that.afterSlotReleasedLocked()
	})
}

// Chat broadcasts a message verbatim to both participants, sender included,
// so both transcripts observe the same ordering. Messages are not persisted.
func (that *Room) Chat(symbol, text string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.participants[symbol]; !ok {
		return
	}

	that.broadcastLocked(protocol.Chat(symbol, text))
}

// heldSlotLocked finds a disconnected participant whose slot the joiner may
// reclaim: the matching one when a symbol is preferred, any held slot otherwise.
func (that *Room) heldSlotLocked(preferred string) *participant {
	if preferred != "" {
		if p, ok := that.participants[preferred]; ok && p.disconnected {
			return p
		}
		return nil
	}

	for _, p := range that.participants {
		if p.disconnected {
			return p
		}
	}
	return nil
}

// afterSlotReleasedLocked destroys an empty room, or parks a lone remaining
// participant back into a fresh waiting round: an interrupted round cannot
// resume one-sided.
func (that *Room) afterSlotReleasedLocked() {
	if len(that.participants) == 0 {
		that.destroyed = true
		if that.onEmpty != nil {
			that.onEmpty(that.name)
		}
		return
	}

	that.game = entity.NewGame()
	for _, p := range that.participants {
		p.wantsContinue = false
	}
	that.announceLocked()
}

func (that *Room) allWantContinueLocked() bool {
	if len(that.participants) != 2 {
		return false
	}
	for _, p := range that.participants {
		if p.disconnected || !p.wantsContinue {
			return false
		}
	}
	return true
}

func (that *Room) liveCountLocked() int {
	count := 0
	for _, p := range that.participants {
		if !p.disconnected {
			count++
		}
	}
	return count
}

func (that *Room) announceLocked() {
	opponentJoined := that.liveCountLocked() == 2
	for _, p := range that.participants {
		if p.disconnected {
			continue
		}
		that.sendLocked(p, protocol.Connected(p.symbol, opponentJoined))
	}
}

func (that *Room) resyncLocked(p *participant) {
	switch {
	case that.game.IsOngoing() && that.game.Board != (entity.Board{}):
		lastMover := tictactoe.ToggleMark(that.game.Turn)
		that.sendLocked(p, protocol.UpdateBoard(that.game.Board, lastMover))
	case that.game.IsFinished():
		that.sendLocked(p, protocol.GameOver(that.game.Board, that.game.Winner))
	}
}

func (that *Room) broadcastLocked(msg protocol.ServerMessage) {
	for _, p := range that.participants {
		if p.disconnected {
			continue
		}
		that.sendLocked(p, msg)
	}
}

func (that *Room) sendToOthersLocked(symbol string, msg protocol.ServerMessage) {
	for _, p := range that.participants {
		if p.symbol == symbol || p.disconnected {
			continue
		}
		that.sendLocked(p, msg)
	}
}

func (that *Room) sendLocked(p *participant, msg protocol.ServerMessage) {
	if err := p.conn.Send(msg); err != nil {
		that.logger.Error("failed to send message", "symbol", p.symbol, "type", msg.Type, "error", err)
	}
}
