package lobby

import (
	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/tictactoe"
)

const (
	EventJoined = "joined"
	EventState  = "lobby_state_update"
	EventStart  = "start"
	EventWin    = "win"
	EventLose   = "lose"
	EventError  = "error"
	EventPing   = "ping"
	EventPong   = "pong"
)

// Message - outbound event sent to a client.
type Message struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

func errorMessage(err error) Message {
	return Message{Event: EventError, Error: err.Error()}
}

type Move struct {
	Row    int              `json:"row"`
	Col    int              `json:"col"`
	Symbol tictactoe.Symbol `json:"symbol"`
}

type PlayerView struct {
	ID        string           `json:"id"`
	Username  string           `json:"username"`
	Symbol    tictactoe.Symbol `json:"symbol"`
	Ready     bool             `json:"ready"`
	Connected bool             `json:"connected"`
}

// View - full lobby state pushed on every broadcast.
type View struct {
	ID          string                              `json:"id"`
	Name        string                              `json:"name"`
	GameType    string                              `json:"game_type"`
	Owner       string                              `json:"owner"`
	State       entity.LobbyState                   `json:"state"`
	Players     []PlayerView                        `json:"players"`
	Board       map[tictactoe.Cell]tictactoe.Symbol `json:"board,omitempty"`
	LastMove    *Move                               `json:"last_move,omitempty"`
	WinLine     []tictactoe.Cell                    `json:"win_line,omitempty"`
	Winner      tictactoe.Symbol                    `json:"winner,omitempty"`
	CurrentTurn tictactoe.Symbol                    `json:"current_turn,omitempty"`
}

type JoinedPayload struct {
	Symbol tictactoe.Symbol  `json:"symbol"`
	State  entity.LobbyState `json:"state"`
	Lobby  View              `json:"lobby"`
}

type StartPayload struct {
	Symbol tictactoe.Symbol `json:"symbol"`
	Turn   tictactoe.Symbol `json:"turn"`
}

type ResultPayload struct {
	Winner  tictactoe.Symbol    `json:"winner,omitempty"`
	Reason  entity.FinishReason `json:"reason"`
	WinLine []tictactoe.Cell    `json:"win_line,omitempty"`
}
