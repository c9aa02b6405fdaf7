package lobby

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/tictactoe"
)

type resultRecorder interface {
	RecordMatch(ctx context.Context, result *entity.MatchResult) error
}

type Options struct {
	PingInterval   time.Duration
	PingTimeout    time.Duration
	FinishGrace    time.Duration
	PersistTimeout time.Duration
}

// Session - handlers for inbound client actions on a lobby.
type Session struct {
	logger   *slog.Logger
	manager  *Manager
	recorder resultRecorder
	opts     Options
	now      func() time.Time
}

func NewSession(logger *slog.Logger, manager *Manager, recorder resultRecorder, opts Options) *Session {
	return &Session{
		logger:   logger.With("component", "session"),
		manager:  manager,
		recorder: recorder,
		opts:     opts,
		now:      time.Now,
	}
}

// Join - registers transport as user's connection to the lobby.
// A known user is reconnected: the transport is swapped and the symbol kept.
// On error the caller is expected to report it and close the transport.
func (that *Session) Join(ctx context.Context, lobbyID string, user entity.User, transport Transport) (*Lobby, *Player, error) {
	log := that.logger.With("method", "Join", "lobbyID", lobbyID, "playerID", user.ID)

	lobby, ok := that.manager.Get(lobbyID)
	if !ok {
		return nil, nil, apperror.ErrLobbyNotFound
	}

	lobby.mu.Lock()
	defer lobby.mu.Unlock()

	if lobby.closed {
		return nil, nil, apperror.ErrLobbyClosed
	}

	if player := lobby.playerByID(user.ID); player != nil {
		if old := player.swap(transport); old != nil && old != transport {
			if err := old.Close(); err != nil {
				log.Debug("failed to close superseded transport", "error", err)
			}
		}
		player.lastPong = that.now()

		log.Info("player reconnected", "symbol", player.Symbol)

		that.sendJoinedLocked(lobby, player)
		lobby.broadcastLocked()

		return lobby, player, nil
	}

	if lobby.state.IsFinished() {
		return nil, nil, apperror.ErrGameFinished
	}

	if len(lobby.players) >= maxPlayers {
		return nil, nil, apperror.ErrLobbyFull
	}

	player := newPlayer(that.logger, user, transport, lobby.freeSymbolLocked(), that.now())
	if len(lobby.players) == 0 && lobby.owner == "" {
		lobby.owner = user.Username
	}
	lobby.players = append(lobby.players, player)

	livenessCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	player.cancel = cancel
	go that.watchLiveness(livenessCtx, lobby, player)

	log.Info("player joined", "symbol", player.Symbol)

	that.sendJoinedLocked(lobby, player)
	lobby.broadcastLocked()

	return lobby, player, nil
}

func (that *Session) sendJoinedLocked(lobby *Lobby, player *Player) {
	player.Send(Message{
		Event: EventJoined,
		Payload: JoinedPayload{
			Symbol: player.Symbol,
			State:  lobby.state,
			Lobby:  lobby.viewLocked(),
		},
	})
}

// Ready - toggles the player's readiness and starts the game once both players are ready.
func (that *Session) Ready(_ context.Context, lobby *Lobby, player *Player) error {
	log := that.logger.With("method", "Ready", "lobbyID", lobby.ID, "playerID", player.ID())

	lobby.mu.Lock()
	defer lobby.mu.Unlock()

	if err := that.checkMemberLocked(lobby, player); err != nil {
		return err
	}

	switch {
	case lobby.state.IsFinished():
		return that.rejectLocked(player, apperror.ErrGameFinished)
	case !lobby.state.IsWaiting():
		return that.rejectLocked(player, apperror.ErrGameInProgress)
	}

	player.Ready = !player.Ready

	if lobby.allReadyLocked() {
		lobby.startLocked(that.now())
		log.Info("game started")

		for _, p := range lobby.players {
			p.Send(Message{
				Event:   EventStart,
				Payload: StartPayload{Symbol: p.Symbol, Turn: lobby.board.CurrentPlayer()},
			})
		}
	}

	lobby.broadcastLocked()

	return nil
}

// Move - plays the player's symbol at (row, col).
// Rejected moves are reported to the player only; an occupied cell also re-syncs both clients.
func (that *Session) Move(ctx context.Context, lobby *Lobby, player *Player, row, col *int) error {
	log := that.logger.With("method", "Move", "lobbyID", lobby.ID, "playerID", player.ID())

	lobby.mu.Lock()
	defer lobby.mu.Unlock()

	if err := that.checkMemberLocked(lobby, player); err != nil {
		return err
	}

	if err := lobby.state.ConfirmPlaying(); err != nil {
		return that.rejectLocked(player, err)
	}

	if lobby.board.CurrentPlayer() != player.Symbol {
		return that.rejectLocked(player, apperror.ErrNotYourTurn)
	}

	if row == nil || col == nil {
		return that.rejectLocked(player, apperror.ErrInvalidMove)
	}

	cell := tictactoe.Cell{Row: *row, Col: *col}

	res, err := lobby.board.MakeMoveAs(player.Symbol, cell)
	if errors.Is(err, apperror.ErrCellOccupied) {
		err = that.rejectLocked(player, err)
		lobby.broadcastLocked()

		return err
	}

	if err != nil {
		return that.rejectLocked(player, err)
	}

	lobby.lastMove = &Move{Row: cell.Row, Col: cell.Col, Symbol: player.Symbol}

	if res.IsWin() {
		log.Info("winning move", "symbol", res.Winner)

		lobby.winLine = res.WinLine
		that.finishLocked(ctx, lobby, res.Winner, entity.ReasonWin)

		return nil
	}

	lobby.broadcastLocked()

	return nil
}

// Leave - removes the player from the lobby.
// This is the single path for an explicit leave, a dropped transport and a liveness timeout.
// transport is the connection that triggered the call; a call from a superseded transport is ignored.
// Pass nil to remove the player regardless of its current transport.
func (that *Session) Leave(ctx context.Context, lobby *Lobby, player *Player, transport Transport) {
	log := that.logger.With("method", "Leave", "lobbyID", lobby.ID, "playerID", player.ID())

	lobby.mu.Lock()
	defer lobby.mu.Unlock()

	if lobby.closed || !lobby.hasPlayer(player) {
		return
	}

	if transport != nil && player.transport != transport {
		log.Debug("ignoring disconnect of superseded transport")
		return
	}

	lobby.removePlayerLocked(player)
	log.Info("player left", "state", lobby.state, "remaining", len(lobby.players))

	switch {
	case lobby.state.IsPlaying() && len(lobby.players) == 1:
		that.finishLocked(ctx, lobby, lobby.players[0].Symbol, entity.ReasonForfeit)
	case lobby.state.IsPlaying():
		// unreachable while a game always starts with both seats taken; nobody is left to win it.
		that.finishLocked(ctx, lobby, "", entity.ReasonAbandoned)
	case len(lobby.players) == 0:
		that.teardownLocked(lobby)
	case lobby.state.IsFinished():
		// the lobby is already on its way out
	default:
		lobby.resetLocked()
		lobby.broadcastLocked()
	}
}

// Ack - records a liveness acknowledgment from the player.
func (that *Session) Ack(lobby *Lobby, player *Player) {
	lobby.mu.Lock()
	defer lobby.mu.Unlock()

	if lobby.closed || !lobby.hasPlayer(player) {
		return
	}

	player.lastPong = that.now()
	player.Send(Message{Event: EventPong})
}

func (that *Session) checkMemberLocked(lobby *Lobby, player *Player) error {
	if lobby.closed {
		return apperror.ErrLobbyClosed
	}

	if !lobby.hasPlayer(player) {
		return apperror.ErrNotInLobby
	}

	return nil
}

// rejectLocked - reports err to the player and returns it.
func (that *Session) rejectLocked(player *Player, err error) error {
	player.Send(errorMessage(err))
	return err
}

// finishLocked - Playing -> Finished: announce, persist once, then tear down.
func (that *Session) finishLocked(ctx context.Context, lobby *Lobby, winner tictactoe.Symbol, reason entity.FinishReason) {
	log := that.logger.With("method", "finish", "lobbyID", lobby.ID)

	result := lobby.finishLocked(winner, reason, that.now())
	log.Info("game finished", "winner", winner, "reason", reason, "duration", result.Duration)

	lobby.broadcastLocked()

	if winner != "" {
		notice := ResultPayload{Winner: winner, Reason: reason, WinLine: lobby.winLine}
		for _, player := range lobby.players {
			event := EventLose
			if player.Symbol == winner {
				event = EventWin
			}
			player.Send(Message{Event: event, Payload: notice})
		}
	}

	that.persist(ctx, result)

	if that.opts.FinishGrace <= 0 {
		that.teardownLocked(lobby)
		return
	}

	time.AfterFunc(that.opts.FinishGrace, func() {
		that.manager.Remove(lobby.ID)
	})
}

// persist - records the result once. Failures are logged only.
func (that *Session) persist(ctx context.Context, result *entity.MatchResult) {
	if that.recorder == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	if that.opts.PersistTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, that.opts.PersistTimeout)
		defer cancel()
	}

	if err := that.recorder.RecordMatch(ctx, result); err != nil {
		that.logger.Error("failed to record match result",
			"lobbyID", result.LobbyID, "error", fmt.Errorf("record match: %w", err))
	}
}

func (that *Session) teardownLocked(lobby *Lobby) {
	lobby.closeLocked()
	that.manager.forget(lobby.ID)
}
