package room

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/apperror"
)

// Manager is the keyed store of rooms: room name -> Room. It only guards the
// map; each room serializes its own mutations.
type Manager struct {
	logger      *slog.Logger
	gracePeriod time.Duration

	mu    sync.Mutex
	rooms map[string]*Room
}

func NewManager(logger *slog.Logger, gracePeriod time.Duration) *Manager {
	return &Manager{
		logger:      logger,
		gracePeriod: gracePeriod,

		rooms: make(map[string]*Room),
	}
}

// Join places the connection into the named room, creating it on first join.
// A join can lose the race against a room tearing itself down; it then simply
// takes a fresh room under the same name.
func (that *Manager) Join(name string, conn Conn, preferred string) (*Room, string, error) {
	for {
		r := that.getOrCreate(name)

		symbol, err := r.Join(conn, preferred)
		if errors.Is(err, apperror.ErrRoomNotFound) {
			continue
		}
		if err != nil {
			return nil, "", err
		}

		return r, symbol, nil
	}
}

func (that *Manager) Get(name string) (*Room, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	r, ok := that.rooms[name]
	return r, ok
}

func (that *Manager) Count() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.rooms)
}

func (that *Manager) getOrCreate(name string) *Room {
	that.mu.Lock()
	defer that.mu.Unlock()

	if r, ok := that.rooms[name]; ok {
		return r
	}

	r := newRoom(name, that.logger.With("room", name), that.gracePeriod, that.remove)
	that.rooms[name] = r
	that.logger.Info("room created", "room", name)

	return r
}

func (that *Manager) remove(name string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.rooms, name)
	that.logger.Info("room destroyed", "room", name)
}
