package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrGameInProgress   = errors.New("game is already in progress")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidMove      = errors.New("invalid move coordinates")
	ErrUnknownAction    = errors.New("unknown action")

	ErrLobbyNotFound = errors.New("lobby not found")
	ErrLobbyFull     = errors.New("lobby is full")
	ErrLobbyClosed   = errors.New("lobby is closed")
	ErrNotInLobby    = errors.New("player is not in the lobby")

	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)
