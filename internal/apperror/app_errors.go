package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")

	ErrRoomFull     = errors.New("room already has two players")
	ErrSymbolTaken  = errors.New("symbol is already taken")
	ErrRoomNotFound = errors.New("room not found")

	ErrNotConnected     = errors.New("not connected to server")
	ErrOpponentNotReady = errors.New("waiting for opponent")

	ErrUnauthorized     = errors.New("unauthorized")
	ErrUserExists       = errors.New("user already exists")
	ErrNotFound         = errors.New("not found")
	ErrHintLimitReached = errors.New("daily hint limit reached")
	ErrNoAvailableMoves = errors.New("no available moves")
)
