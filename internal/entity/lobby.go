package entity

import (
	"fmt"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/apperror"
)

// GameTypeInfinity - the only game type served by the lobbies.
const GameTypeInfinity = "Infinity Tic Tac Toe"

type LobbyState string

const (
	StateWaiting  LobbyState = "waiting"
	StateReady    LobbyState = "ready"
	StatePlaying  LobbyState = "playing"
	StateFinished LobbyState = "finished"
)

func (that LobbyState) IsWaiting() bool {
	return that == StateWaiting
}

func (that LobbyState) IsPlaying() bool {
	return that == StatePlaying
}

func (that LobbyState) IsFinished() bool {
	return that == StateFinished
}

// ConfirmPlaying - returns an error describing why moves are not accepted in this state.
func (that LobbyState) ConfirmPlaying() error {
	switch that {
	case StatePlaying:
		return nil
	case StateWaiting, StateReady:
		return apperror.ErrGameIsNotStarted
	case StateFinished:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("unknown lobby state: %s", that)
	}
}

// LobbyInfo - public listing entry of a waiting lobby.
type LobbyInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	GameType string `json:"game_type"`
	Owner    string `json:"owner"`
}
