package entity

import (
	"time"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/tictactoe"
)

type FinishReason string

const (
	ReasonWin       FinishReason = "win"
	ReasonForfeit   FinishReason = "forfeit"
	ReasonAbandoned FinishReason = "abandoned"
)

type MatchPlayer struct {
	UserID   string           `json:"user_id"`
	Username string           `json:"username"`
	Symbol   tictactoe.Symbol `json:"symbol"`
}

// MatchResult - final record of a finished lobby.
type MatchResult struct {
	LobbyID      string                              `json:"lobby_id"`
	LobbyName    string                              `json:"lobby_name"`
	Players      []MatchPlayer                       `json:"players"`
	WinnerID     string                              `json:"winner_id,omitempty"`
	WinnerSymbol tictactoe.Symbol                    `json:"winner_symbol,omitempty"`
	Reason       FinishReason                        `json:"reason"`
	Board        map[tictactoe.Cell]tictactoe.Symbol `json:"board"`
	Duration     time.Duration                       `json:"duration"`
	FinishedAt   time.Time                           `json:"finished_at"`
}

func (that *MatchResult) IsInconclusive() bool {
	return that.WinnerID == ""
}

// Losers - participants other than the winner; empty for an inconclusive match.
func (that *MatchResult) Losers() []MatchPlayer {
	if that.IsInconclusive() {
		return nil
	}

	losers := make([]MatchPlayer, 0, len(that.Players))
	for _, player := range that.Players {
		if player.UserID != that.WinnerID {
			losers = append(losers, player)
		}
	}

	return losers
}
