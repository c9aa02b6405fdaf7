package lobby

import (
	"sync"
	"time"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/tictactoe"
)

const maxPlayers = 2

// Lobby - one game session. Every field below mu is guarded by it.
type Lobby struct {
	ID        string
	Name      string
	GameType  string
	CreatedAt time.Time

	// onChange is fired after each broadcast; set once at creation.
	onChange func()

	mu       sync.Mutex
	owner    string
	state    entity.LobbyState
	players  []*Player
	board    *tictactoe.Board
	winner   tictactoe.Symbol
	lastMove *Move
	winLine  []tictactoe.Cell

	startedAt time.Time
	endedAt   time.Time

	// participants are captured when the game starts so a forfeit can still be recorded.
	participants []entity.MatchPlayer

	closed bool
}

func newLobby(id, name string, now time.Time, onChange func()) *Lobby {
	return &Lobby{
		ID:        id,
		Name:      name,
		GameType:  entity.GameTypeInfinity,
		CreatedAt: now,
		onChange:  onChange,
		state:     entity.StateWaiting,
	}
}

// View - returns the current state of the lobby.
func (that *Lobby) View() View {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.viewLocked()
}

func (that *Lobby) State() entity.LobbyState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

func (that *Lobby) PlayerCount() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.players)
}

func (that *Lobby) Closed() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.closed
}

// info - listing entry; ok is false unless the lobby is waiting for players.
func (that *Lobby) info() (entity.LobbyInfo, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed || !that.state.IsWaiting() {
		return entity.LobbyInfo{}, false
	}

	return entity.LobbyInfo{
		ID:       that.ID,
		Name:     that.Name,
		GameType: that.GameType,
		Owner:    that.owner,
	}, true
}

func (that *Lobby) viewLocked() View {
	view := View{
		ID:       that.ID,
		Name:     that.Name,
		GameType: that.GameType,
		Owner:    that.owner,
		State:    that.state,
		Players:  make([]PlayerView, 0, len(that.players)),
		LastMove: that.lastMove,
		WinLine:  that.winLine,
		Winner:   that.winner,
	}

	for _, player := range that.players {
		view.Players = append(view.Players, player.view())
	}

	if that.board != nil {
		view.Board = that.board.Snapshot()
		if that.state.IsPlaying() {
			view.CurrentTurn = that.board.CurrentPlayer()
		}
	}

	return view
}

// broadcastLocked - pushes the current state to every player.
func (that *Lobby) broadcastLocked() {
	msg := Message{Event: EventState, Payload: that.viewLocked()}
	for _, player := range that.players {
		player.Send(msg)
	}

	if that.onChange != nil {
		that.onChange()
	}
}

func (that *Lobby) playerByID(id string) *Player {
	for _, player := range that.players {
		if player.ID() == id {
			return player
		}
	}

	return nil
}

func (that *Lobby) hasPlayer(player *Player) bool {
	for _, p := range that.players {
		if p == player {
			return true
		}
	}

	return false
}

// freeSymbolLocked - X for the first seat, otherwise whichever symbol is unused.
func (that *Lobby) freeSymbolLocked() tictactoe.Symbol {
	for _, player := range that.players {
		if player.Symbol == tictactoe.SymbolX {
			return tictactoe.SymbolO
		}
	}

	return tictactoe.SymbolX
}

func (that *Lobby) removePlayerLocked(player *Player) {
	for i, p := range that.players {
		if p == player {
			that.players = append(that.players[:i], that.players[i+1:]...)
			break
		}
	}

	player.close()
}

func (that *Lobby) allReadyLocked() bool {
	if len(that.players) != maxPlayers {
		return false
	}

	for _, player := range that.players {
		if !player.Ready {
			return false
		}
	}

	return true
}

// startLocked - Waiting -> Ready -> Playing.
func (that *Lobby) startLocked(now time.Time) {
	that.state = entity.StateReady

	that.board = tictactoe.NewBoard()
	that.startedAt = now
	that.participants = make([]entity.MatchPlayer, 0, len(that.players))
	for _, player := range that.players {
		that.participants = append(that.participants, entity.MatchPlayer{
			UserID:   player.user.ID,
			Username: player.user.Username,
			Symbol:   player.Symbol,
		})
	}

	that.state = entity.StatePlaying
}

// resetLocked - back to Waiting with the current roster; the longest-seated player owns the lobby.
func (that *Lobby) resetLocked() {
	that.state = entity.StateWaiting
	that.board = nil
	that.winner = ""
	that.lastMove = nil
	that.winLine = nil
	that.startedAt = time.Time{}
	that.endedAt = time.Time{}
	that.participants = nil

	for _, player := range that.players {
		player.Ready = false
	}

	if len(that.players) > 0 {
		that.owner = that.players[0].user.Username
	}
}

// finishLocked - enters Finished and returns the match record.
func (that *Lobby) finishLocked(winner tictactoe.Symbol, reason entity.FinishReason, now time.Time) *entity.MatchResult {
	that.state = entity.StateFinished
	that.winner = winner
	that.endedAt = now

	result := &entity.MatchResult{
		LobbyID:      that.ID,
		LobbyName:    that.Name,
		Players:      that.participants,
		WinnerSymbol: winner,
		Reason:       reason,
		Duration:     now.Sub(that.startedAt),
		FinishedAt:   now,
	}

	if that.board != nil {
		result.Board = that.board.Snapshot()
	}

	for _, participant := range that.participants {
		if winner != "" && participant.Symbol == winner {
			result.WinnerID = participant.UserID
		}
	}

	return result
}

// closeLocked - closes every remaining player and marks the lobby unusable.
func (that *Lobby) closeLocked() {
	that.closed = true

	for _, player := range that.players {
		player.close()
	}

	that.players = nil
}
