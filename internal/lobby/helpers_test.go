package lobby

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
)

var errBrokenPipe = errors.New("broken pipe")

type fakeTransport struct {
	mu       sync.Mutex
	messages []Message
	closed   bool
	failSend bool
}

func (that *fakeTransport) Send(v any) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.failSend {
		return errBrokenPipe
	}

	msg, ok := v.(Message)
	if !ok {
		return errors.New("unexpected message type")
	}
	that.messages = append(that.messages, msg)

	return nil
}

func (that *fakeTransport) Close() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.closed = true

	return nil
}

func (that *fakeTransport) IsConnected() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return !that.closed
}

func (that *fakeTransport) isClosed() bool {
	return !that.IsConnected()
}

func (that *fakeTransport) events() []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	events := make([]string, 0, len(that.messages))
	for _, msg := range that.messages {
		events = append(events, msg.Event)
	}

	return events
}

// last - the most recent message with the given event.
func (that *fakeTransport) last(event string) (Message, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for i := len(that.messages) - 1; i >= 0; i-- {
		if that.messages[i].Event == event {
			return that.messages[i], true
		}
	}

	return Message{}, false
}

func (that *fakeTransport) lastView(t *testing.T) View {
	t.Helper()

	msg, ok := that.last(EventState)
	require.True(t, ok, "no state broadcast received")

	view, ok := msg.Payload.(View)
	require.True(t, ok)

	return view
}

func (that *fakeTransport) reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.messages = nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(recorder resultRecorder, opts Options) (*Manager, *Session) {
	logger := newTestLogger()
	manager := NewManager(logger)

	return manager, NewSession(logger, manager, recorder, opts)
}

var (
	alice = entity.User{ID: "a", Username: "alice"}
	bob   = entity.User{ID: "b", Username: "bob"}
	carol = entity.User{ID: "c", Username: "carol"}
)

func intPtr(v int) *int {
	return &v
}
