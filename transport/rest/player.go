package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
)

type resultService interface {
	GetStats(ctx context.Context, userID string) (*entity.PlayerStats, error)
	GetHistory(ctx context.Context, userID string, limit int) ([]*entity.MatchResult, error)
}

type PlayerHandler struct {
	logger  *slog.Logger
	results resultService
}

func NewPlayerHandler(logger *slog.Logger, results resultService) *PlayerHandler {
	return &PlayerHandler{
		logger:  logger,
		results: results,
	}
}

func (that *PlayerHandler) Stats(ctx echo.Context) error {
	log := that.logger.With("method", "PlayerStats")

	stats, err := that.results.GetStats(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		log.Error("failed to get stats", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get stats")
	}

	return ctx.JSON(http.StatusOK, stats)
}

func (that *PlayerHandler) Matches(ctx echo.Context) error {
	log := that.logger.With("method", "PlayerMatches")

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a number")
		}
	}

	matches, err := that.results.GetHistory(ctx.Request().Context(), ctx.Param("id"), limit)
	if err != nil {
		log.Error("failed to get match history", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get match history")
	}

	return ctx.JSON(http.StatusOK, matches)
}
