package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
)

type lobbyService interface {
	Create(name string) string
	List(filter string) []entity.LobbyInfo
	Count() int
	Subscribe() (<-chan struct{}, func())
}

type CreateLobbyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=40"`
}

type CreateLobbyResponse struct {
	ID string `json:"id"`
}

type ActiveGamesResponse struct {
	Active int `json:"active"`
}

type LobbyHandler struct {
	logger       *slog.Logger
	lobbies      lobbyService
	feedInterval time.Duration
}

func NewLobbyHandler(logger *slog.Logger, lobbies lobbyService, feedInterval time.Duration) *LobbyHandler {
	if feedInterval <= 0 {
		feedInterval = 2 * time.Second
	}

	return &LobbyHandler{
		logger:       logger,
		lobbies:      lobbies,
		feedInterval: feedInterval,
	}
}

func (that *LobbyHandler) Create(ctx echo.Context) error {
	log := that.logger.With("method", "CreateLobby")

	var req CreateLobbyRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	id := that.lobbies.Create(req.Name)

	if user, ok := currentUser(ctx); ok {
		log.Info("lobby created", "lobbyID", id, "userID", user.ID)
	}

	return ctx.JSON(http.StatusCreated, CreateLobbyResponse{ID: id})
}

// List - waiting lobbies, optionally filtered by name.
func (that *LobbyHandler) List(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, that.lobbies.List(ctx.QueryParam("name")))
}

func (that *LobbyHandler) ActiveGames(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ActiveGamesResponse{Active: that.lobbies.Count()})
}

// Feed - server-sent events with the waiting lobbies, pushed on change or every feedInterval.
// Identical consecutive lists are sent once.
func (that *LobbyHandler) Feed(ctx echo.Context) error {
	log := that.logger.With("method", "LobbyFeed")
	filter := ctx.QueryParam("name")

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)

	changes, unsubscribe := that.lobbies.Subscribe()
	defer unsubscribe()

	ticker := time.NewTicker(that.feedInterval)
	defer ticker.Stop()

	var last []byte

	push := func() error {
		data, err := json.Marshal(that.lobbies.List(filter))
		if err != nil {
			return fmt.Errorf("failed to marshal lobbies: %w", err)
		}

		if bytes.Equal(data, last) {
			return nil
		}
		last = data

		if _, err = fmt.Fprintf(resp, "data: %s\n\n", data); err != nil {
			return fmt.Errorf("failed to write event: %w", err)
		}
		resp.Flush()

		return nil
	}

	done := ctx.Request().Context().Done()

	for {
		if err := push(); err != nil {
			log.Debug("feed closed", "error", err)
			return nil
		}

		select {
		case <-done:
			return nil
		case <-ticker.C:
		case <-changes:
		}
	}
}
