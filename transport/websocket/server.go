package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/lobby"
)

type sessionHandler interface {
	Join(ctx context.Context, lobbyID string, user entity.User, transport lobby.Transport) (*lobby.Lobby, *lobby.Player, error)
	Ready(ctx context.Context, l *lobby.Lobby, player *lobby.Player) error
	Move(ctx context.Context, l *lobby.Lobby, player *lobby.Player, row, col *int) error
	Leave(ctx context.Context, l *lobby.Lobby, player *lobby.Player, transport lobby.Transport)
	Ack(l *lobby.Lobby, player *lobby.Player)
}

type identityResolver interface {
	Resolve(token string) (*entity.User, error)
}

// client - one joined connection.
type client struct {
	conn   *Conn
	lobby  *lobby.Lobby
	player *lobby.Player
}

type Server struct {
	logger   *slog.Logger
	session  sessionHandler
	auth     identityResolver
	upgrader websocket.Upgrader

	handlers map[string]func(ctx context.Context, c *client, msg *Message) error
}

func New(logger *slog.Logger, session sessionHandler, auth identityResolver) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		session: session,
		auth:    auth,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}

	server.handlers = map[string]func(context.Context, *client, *Message) error{
		actionPing:  server.handlePing,
		actionReady: server.handleReady,
		actionMove:  server.handleMove,
	}

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /game/{lobby_id}", that.serveGame)

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveGame - resolves the user, upgrades the connection and joins the lobby.
func (that *Server) serveGame(writer http.ResponseWriter, req *http.Request) {
	lobbyID := req.PathValue("lobby_id")
	log := that.logger.With("method", "serveGame", "lobbyID", lobbyID)

	user, err := that.auth.Resolve(tokenFromRequest(req))
	if err != nil {
		log.Info("rejected connection", "error", err)
		http.Error(writer, apperror.ErrUnauthorized.Error(), http.StatusUnauthorized)
		return
	}

	ws, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := newConn(log.With("playerID", user.ID), ws)
	go conn.writePump()

	ctx := req.Context()

	joined, player, err := that.session.Join(ctx, lobbyID, *user, conn)
	if err != nil {
		log.Info("join rejected", "playerID", user.ID, "error", err)
		_ = conn.Send(lobby.Message{Event: lobby.EventError, Error: err.Error()})
		_ = conn.Close()
		return
	}

	c := &client{conn: conn, lobby: joined, player: player}
	that.handleMessages(ctx, c)

	that.session.Leave(ctx, joined, player, conn)
	_ = conn.Close()
}

// handleMessages - processes messages from the client until it leaves or disconnects.
func (that *Server) handleMessages(ctx context.Context, c *client) {
	log := that.logger.With("method", "handleMessages", "lobbyID", c.lobby.ID, "playerID", c.player.ID())

	for {
		data, err := c.conn.read()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("connection dropped", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)
			that.sendError(c, fmt.Errorf("malformed message: %w", err))
			continue
		}

		if message.Action == actionLeave {
			return
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			that.sendError(c, fmt.Errorf("%w: %q", apperror.ErrUnknownAction, message.Action))
			continue
		}

		if err = handler(ctx, c, &message); err != nil {
			log.Debug("action rejected", "action", message.Action, "error", err)
		}

		if !c.conn.IsConnected() {
			return
		}
	}
}

func (that *Server) handlePing(_ context.Context, c *client, _ *Message) error {
	that.session.Ack(c.lobby, c.player)
	return nil
}

func (that *Server) handleReady(ctx context.Context, c *client, _ *Message) error {
	return that.session.Ready(ctx, c.lobby, c.player)
}

func (that *Server) handleMove(ctx context.Context, c *client, msg *Message) error {
	row, col := msg.coordinates()
	return that.session.Move(ctx, c.lobby, c.player, row, col)
}

func (that *Server) sendError(c *client, err error) {
	if sendErr := c.conn.Send(lobby.Message{Event: lobby.EventError, Error: err.Error()}); sendErr != nil {
		that.logger.Debug("failed to send error", "error", sendErr)
	}
}

// tokenFromRequest - bearer token from the query string or the Authorization header.
func tokenFromRequest(req *http.Request) string {
	if token := req.URL.Query().Get("token"); token != "" {
		return token
	}

	return strings.TrimPrefix(req.Header.Get("Authorization"), "Bearer ")
}
