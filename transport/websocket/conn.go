package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
	sendBufferSize = 64
)

var (
	ErrConnClosed     = errors.New("connection is closed")
	ErrSendBufferFull = errors.New("send buffer is full")
)

// Conn - a client websocket. Writes go through a buffered queue drained by writePump,
// so Send never blocks the caller.
type Conn struct {
	logger *slog.Logger
	ws     *websocket.Conn

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
	connected atomic.Bool
}

func newConn(logger *slog.Logger, ws *websocket.Conn) *Conn {
	conn := &Conn{
		logger: logger,
		ws:     ws,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
	conn.connected.Store(true)

	ws.SetReadLimit(maxMessageSize)

	return conn
}

func (that *Conn) Send(v any) error {
	if !that.connected.Load() {
		return ErrConnClosed
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	select {
	case <-that.done:
		return ErrConnClosed
	case that.send <- data:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// Close - flushes queued messages, sends a normal close frame and closes the socket.
func (that *Conn) Close() error {
	that.closeOnce.Do(func() {
		that.connected.Store(false)
		close(that.done)
	})

	return nil
}

func (that *Conn) IsConnected() bool {
	return that.connected.Load()
}

func (that *Conn) read() ([]byte, error) {
	_, data, err := that.ws.ReadMessage()
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (that *Conn) writePump() {
	defer func() {
		_ = that.ws.Close()
	}()

	for {
		select {
		case data := <-that.send:
			if err := that.write(data); err != nil {
				that.logger.Debug("write failed", "error", err)
				_ = that.Close()
				return
			}
		case <-that.done:
			that.flush()

			closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = that.ws.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(writeWait))

			return
		}
	}
}

func (that *Conn) flush() {
	for {
		select {
		case data := <-that.send:
			if err := that.write(data); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (that *Conn) write(data []byte) error {
	if err := that.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return that.ws.WriteMessage(websocket.TextMessage, data)
}
