package lobby

import (
	"context"
	"time"
)

// watchLiveness - pings the player every PingInterval and forces a leave
// once no acknowledgment arrived within PingTimeout.
func (that *Session) watchLiveness(ctx context.Context, lobby *Lobby, player *Player) {
	if that.opts.PingInterval <= 0 {
		return
	}

	ticker := time.NewTicker(that.opts.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		transport, expired, ok := that.checkLiveness(lobby, player)
		if !ok {
			return
		}

		if expired && !that.expire(ctx, lobby, player, transport) {
			return
		}
	}
}

// checkLiveness - pings the player, or reports the transport whose acknowledgment is overdue.
// ok is false once the player is no longer in the lobby.
func (that *Session) checkLiveness(lobby *Lobby, player *Player) (Transport, bool, bool) {
	lobby.mu.Lock()
	defer lobby.mu.Unlock()

	if lobby.closed || !lobby.hasPlayer(player) {
		return nil, false, false
	}

	if that.opts.PingTimeout > 0 && that.now().Sub(player.lastPong) > that.opts.PingTimeout {
		return player.transport, true, true
	}

	player.Send(Message{Event: EventPing})

	return player.transport, false, true
}

// expire - forces the player out through Leave and reports whether it is still in the lobby.
// A reconnect between the check and the leave swaps the transport, so the player stays.
func (that *Session) expire(ctx context.Context, lobby *Lobby, player *Player, transport Transport) bool {
	that.logger.Warn("liveness timeout", "lobbyID", lobby.ID, "playerID", player.ID())
	that.Leave(ctx, lobby, player, transport)

	lobby.mu.Lock()
	defer lobby.mu.Unlock()

	return !lobby.closed && lobby.hasPlayer(player)
}
