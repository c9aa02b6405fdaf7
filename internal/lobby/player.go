package lobby

import (
	"context"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/tictactoe"
)

// Transport - a live connection to one client.
// Send must not block for long: it is called while the lobby is locked.
type Transport interface {
	Send(v any) error
	Close() error
	IsConnected() bool
}

// Player - one participant of a lobby. All fields are guarded by the owning lobby's mutex.
type Player struct {
	logger *slog.Logger

	user      entity.User
	transport Transport

	Symbol   tictactoe.Symbol
	Ready    bool
	lastPong time.Time

	cancel context.CancelFunc
}

func newPlayer(logger *slog.Logger, user entity.User, transport Transport, symbol tictactoe.Symbol, now time.Time) *Player {
	return &Player{
		logger:    logger.With("playerID", user.ID),
		user:      user,
		transport: transport,
		Symbol:    symbol,
		lastPong:  now,
	}
}

func (that *Player) ID() string {
	return that.user.ID
}

func (that *Player) User() entity.User {
	return that.user
}

// Send - delivers msg if the transport is connected. Failures are logged, never returned.
func (that *Player) Send(msg Message) {
	if that.transport == nil || !that.transport.IsConnected() {
		return
	}

	if err := that.transport.Send(msg); err != nil {
		that.logger.Warn("failed to send message", "event", msg.Event, "error", err)
	}
}

func (that *Player) connected() bool {
	return that.transport != nil && that.transport.IsConnected()
}

// swap - replaces the transport and returns the previous one.
func (that *Player) swap(transport Transport) Transport {
	old := that.transport
	that.transport = transport

	return old
}

func (that *Player) stopLiveness() {
	if that.cancel != nil {
		that.cancel()
		that.cancel = nil
	}
}

// close - stops the liveness task and closes the transport.
func (that *Player) close() {
	that.stopLiveness()

	if that.transport == nil {
		return
	}

	if err := that.transport.Close(); err != nil {
		that.logger.Debug("failed to close transport", "error", err)
	}
}

func (that *Player) view() PlayerView {
	return PlayerView{
		ID:        that.user.ID,
		Username:  that.user.Username,
		Symbol:    that.Symbol,
		Ready:     that.Ready,
		Connected: that.connected(),
	}
}
