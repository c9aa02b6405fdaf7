package lobby

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Liveness(t *testing.T) {
	ctx := context.Background()

	t.Run("Silent player is removed", func(t *testing.T) {
		// Given: short ping interval and timeout
		manager, session := newTestSession(nil, Options{
			PingInterval: 5 * time.Millisecond,
			PingTimeout:  40 * time.Millisecond,
		})
		id := manager.Create("T1")
		transport := &fakeTransport{}

		// When: alice joins and never acknowledges
		_, _, err := session.Join(ctx, id, alice, transport)
		require.NoError(t, err)

		// Then: she is pinged, then dropped through the leave path
		require.Eventually(t, func() bool {
			_, ok := manager.Get(id)
			return !ok
		}, time.Second, 5*time.Millisecond)
		assert.Contains(t, transport.events(), EventPing)
		assert.True(t, transport.isClosed())
	})

	t.Run("Ack refreshes liveness and answers pong", func(t *testing.T) {
		manager, session := newTestSession(nil, Options{})
		id := manager.Create("T1")
		transport := &fakeTransport{}
		lobby, player, err := session.Join(ctx, id, alice, transport)
		require.NoError(t, err)

		lobby.mu.Lock()
		player.lastPong = time.Time{}
		lobby.mu.Unlock()

		session.Ack(lobby, player)

		lobby.mu.Lock()
		lastPong := player.lastPong
		lobby.mu.Unlock()
		assert.False(t, lastPong.IsZero())

		_, ok := transport.last(EventPong)
		assert.True(t, ok)
	})

	t.Run("Reconnect before the forced leave keeps the player watched", func(t *testing.T) {
		// Given: alice's acknowledgment is overdue on a fake clock
		manager, session := newTestSession(nil, Options{PingTimeout: time.Minute})
		clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		session.now = func() time.Time { return clock }

		id := manager.Create("T1")
		stale := &fakeTransport{}
		lobby, player, err := session.Join(ctx, id, alice, stale)
		require.NoError(t, err)

		clock = clock.Add(2 * time.Minute)
		transport, expired, ok := session.checkLiveness(lobby, player)
		require.True(t, ok)
		require.True(t, expired)
		require.Same(t, stale, transport)

		// When: alice reconnects before the forced leave runs
		fresh := &fakeTransport{}
		_, rejoined, err := session.Join(ctx, id, alice, fresh)
		require.NoError(t, err)
		require.Same(t, player, rejoined)

		stillMember := session.expire(ctx, lobby, player, transport)

		// Then: she stays in the lobby on the new transport and keeps being watched
		assert.True(t, stillMember)
		assert.Equal(t, 1, lobby.PlayerCount())
		assert.False(t, fresh.isClosed())

		_, expired, ok = session.checkLiveness(lobby, player)
		assert.True(t, ok)
		assert.False(t, expired)
		_, pinged := fresh.last(EventPing)
		assert.True(t, pinged)
	})

	t.Run("Forced leave without reconnect stops watching", func(t *testing.T) {
		manager, session := newTestSession(nil, Options{PingTimeout: time.Minute})
		id := manager.Create("T1")
		transport := &fakeTransport{}
		lobby, player, err := session.Join(ctx, id, alice, transport)
		require.NoError(t, err)

		stillMember := session.expire(ctx, lobby, player, transport)

		assert.False(t, stillMember)
		assert.True(t, transport.isClosed())
	})

	t.Run("Liveness task stops with the player", func(t *testing.T) {
		manager, session := newTestSession(nil, Options{
			PingInterval: 5 * time.Millisecond,
			PingTimeout:  time.Hour,
		})
		id := manager.Create("T1")
		lobby, player, err := session.Join(ctx, id, alice, &fakeTransport{})
		require.NoError(t, err)
		_, _, err = session.Join(ctx, id, bob, &fakeTransport{})
		require.NoError(t, err)

		session.Leave(ctx, lobby, player, nil)

		lobby.mu.Lock()
		cancel := player.cancel
		lobby.mu.Unlock()
		assert.Nil(t, cancel)
	})
}
