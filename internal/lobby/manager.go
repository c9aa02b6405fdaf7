package lobby

import (
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
)

// Manager - registry of active lobbies.
// It never locks a lobby while holding its own lock, so lobby -> manager is the only lock order.
type Manager struct {
	logger *slog.Logger
	now    func() time.Time

	mu      sync.RWMutex
	lobbies map[string]*Lobby

	subMu       sync.Mutex
	subscribers map[int]chan struct{}
	nextSub     int
}

func NewManager(logger *slog.Logger) *Manager {
	return &Manager{
		logger:      logger.With("component", "lobby_manager"),
		now:         time.Now,
		lobbies:     make(map[string]*Lobby),
		subscribers: make(map[int]chan struct{}),
	}
}

// Create - registers a new waiting lobby and returns its id.
func (that *Manager) Create(name string) string {
	id := uuid.NewString()
	lobby := newLobby(id, name, that.now(), that.notify)

	that.mu.Lock()
	that.lobbies[id] = lobby
	that.mu.Unlock()

	that.logger.Info("lobby created", "lobbyID", id, "name", name)
	that.notify()

	return id
}

func (that *Manager) Get(id string) (*Lobby, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	lobby, ok := that.lobbies[id]

	return lobby, ok
}

// Count - number of registered lobbies.
func (that *Manager) Count() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.lobbies)
}

// Remove - tears the lobby down: closes remaining players and drops the entry.
// Removing an unknown id is a no-op.
func (that *Manager) Remove(id string) {
	that.mu.Lock()
	lobby, ok := that.lobbies[id]
	delete(that.lobbies, id)
	that.mu.Unlock()

	if !ok {
		return
	}

	lobby.mu.Lock()
	lobby.closeLocked()
	lobby.mu.Unlock()

	that.logger.Info("lobby removed", "lobbyID", id)
	that.notify()
}

// forget - drops the entry of a lobby that the caller has already closed.
func (that *Manager) forget(id string) {
	that.mu.Lock()
	_, ok := that.lobbies[id]
	delete(that.lobbies, id)
	that.mu.Unlock()

	if !ok {
		return
	}

	that.logger.Info("lobby removed", "lobbyID", id)
	that.notify()
}

// List - waiting lobbies whose name contains filter (case-insensitive), oldest first.
func (that *Manager) List(filter string) []entity.LobbyInfo {
	that.mu.RLock()
	lobbies := make([]*Lobby, 0, len(that.lobbies))
	for _, lobby := range that.lobbies {
		lobbies = append(lobbies, lobby)
	}
	that.mu.RUnlock()

	slices.SortFunc(lobbies, func(a, b *Lobby) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	filter = strings.ToLower(strings.TrimSpace(filter))

	infos := make([]entity.LobbyInfo, 0, len(lobbies))
	for _, lobby := range lobbies {
		if filter != "" && !strings.Contains(strings.ToLower(lobby.Name), filter) {
			continue
		}

		info, ok := lobby.info()
		if !ok {
			continue
		}

		infos = append(infos, info)
	}

	return infos
}

// Subscribe - returns a channel signalled whenever lobbies change.
// Signals coalesce; call the returned func to unsubscribe.
func (that *Manager) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	that.subMu.Lock()
	id := that.nextSub
	that.nextSub++
	that.subscribers[id] = ch
	that.subMu.Unlock()

	return ch, func() {
		that.subMu.Lock()
		delete(that.subscribers, id)
		that.subMu.Unlock()
	}
}

func (that *Manager) notify() {
	that.subMu.Lock()
	defer that.subMu.Unlock()

	for _, ch := range that.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
