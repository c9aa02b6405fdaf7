package rest

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/lobby"
	mockedRest "github.com/rocketscienceinc/infinity-tictactoe/mocks/rest"
)

type fakeAuth map[string]entity.User

func (that fakeAuth) Resolve(token string) (*entity.User, error) {
	user, ok := that[token]
	if !ok {
		return nil, apperror.ErrUnauthorized
	}

	return &user, nil
}

type testServer struct {
	handler http.Handler
	manager *lobby.Manager
	results *mockedRest.MockresultService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := lobby.NewManager(logger)
	results := mockedRest.NewMockresultService(t)
	auth := fakeAuth{"token-a": {ID: "a", Username: "alice"}}

	return &testServer{
		handler: New(logger, manager, results, auth, time.Hour).Handler(),
		manager: manager,
		results: results,
	}
}

func (that *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	that.handler.ServeHTTP(rec, req)

	return rec
}

func createRequest(body, token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lobbies", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

func TestPing(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestLobbyHandler_Create(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		// Given: an authenticated user
		srv := newTestServer(t)

		// When: a lobby is created
		rec := srv.do(createRequest(`{"name":"  Friday Night "}`, "token-a"))

		// Then: it is registered under the returned id
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp CreateLobbyResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		created, ok := srv.manager.Get(resp.ID)
		require.True(t, ok)
		assert.Equal(t, "Friday Night", created.Name)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		srv := newTestServer(t)

		assert.Equal(t, http.StatusUnauthorized, srv.do(createRequest(`{"name":"T1"}`, "bogus")).Code)
		assert.NotEqual(t, http.StatusCreated, srv.do(createRequest(`{"name":"T1"}`, "")).Code)
		assert.Zero(t, srv.manager.Count())
	})

	t.Run("Invalid name", func(t *testing.T) {
		srv := newTestServer(t)

		for _, body := range []string{`{"name":"x"}`, `{"name":"   "}`, `{"name":"` + strings.Repeat("a", 41) + `"}`, `{`} {
			rec := srv.do(createRequest(body, "token-a"))
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		}
		assert.Zero(t, srv.manager.Count())
	})
}

func TestLobbyHandler_List(t *testing.T) {
	// Given: two waiting lobbies
	srv := newTestServer(t)
	first := srv.manager.Create("Friday Night")
	srv.manager.Create("casual")

	// When: the list is filtered by name
	rec := srv.do(httptest.NewRequest(http.MethodGet, "/api/v1/lobbies?name=night", nil))

	// Then: only the matching lobby is returned
	require.Equal(t, http.StatusOK, rec.Code)

	var infos []entity.LobbyInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, first, infos[0].ID)
	assert.Equal(t, entity.GameTypeInfinity, infos[0].GameType)
}

func TestLobbyHandler_ActiveGames(t *testing.T) {
	srv := newTestServer(t)
	srv.manager.Create("T1")
	srv.manager.Create("T2")

	rec := srv.do(httptest.NewRequest(http.MethodGet, "/api/v1/games", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"active":2}`, rec.Body.String())
}

func TestLobbyHandler_Feed(t *testing.T) {
	// Given: a running server with one lobby
	srv := newTestServer(t)
	srv.manager.Create("T1")

	server := httptest.NewServer(srv.handler)
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/v1/lobbies/feed", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	next := func() []entity.LobbyInfo {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)

			data, ok := strings.CutPrefix(strings.TrimSpace(line), "data: ")
			if !ok {
				continue
			}

			var infos []entity.LobbyInfo
			require.NoError(t, json.Unmarshal([]byte(data), &infos))

			return infos
		}
	}

	// Then: the current list is sent first
	assert.Len(t, next(), 1)

	// When: another lobby is created
	srv.manager.Create("T2")

	// Then: the change is pushed
	assert.Len(t, next(), 2)
}

func TestPlayerHandler_Stats(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		srv := newTestServer(t)
		srv.results.EXPECT().GetStats(mock.Anything, "a").
			Return(&entity.PlayerStats{UserID: "a", Wins: 3, Losses: 1, Total: 4}, nil)

		rec := srv.do(httptest.NewRequest(http.MethodGet, "/api/v1/players/a/stats", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var stats entity.PlayerStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, int64(3), stats.Wins)
		assert.Equal(t, int64(4), stats.Total)
	})

	t.Run("Storage failure", func(t *testing.T) {
		srv := newTestServer(t)
		srv.results.EXPECT().GetStats(mock.Anything, "a").Return(nil, errors.New("connection refused"))

		rec := srv.do(httptest.NewRequest(http.MethodGet, "/api/v1/players/a/stats", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestPlayerHandler_Matches(t *testing.T) {
	t.Run("With limit", func(t *testing.T) {
		srv := newTestServer(t)
		srv.results.EXPECT().GetHistory(mock.Anything, "a", 5).
			Return([]*entity.MatchResult{{LobbyID: "l1", WinnerID: "a", Reason: entity.ReasonWin}}, nil)

		rec := srv.do(httptest.NewRequest(http.MethodGet, "/api/v1/players/a/matches?limit=5", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var matches []entity.MatchResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
		require.Len(t, matches, 1)
		assert.Equal(t, "l1", matches[0].LobbyID)
	})

	t.Run("Bad limit", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(httptest.NewRequest(http.MethodGet, "/api/v1/players/a/matches?limit=ten", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
