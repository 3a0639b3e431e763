package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auctionday/auction-api/internal/domain"
	"github.com/auctionday/auction-api/internal/service"
	"github.com/auctionday/auction-api/internal/store"
)

type fakeAuctionService struct {
	rows      []domain.TeamPlayer
	sellErr   error
	unsoldErr error
}

func (f *fakeAuctionService) ListTeamPlayers(_ context.Context, _ string) ([]domain.TeamPlayer, error) {
	return f.rows, nil
}

func (f *fakeAuctionService) SellPlayer(_ context.Context, teamID, playerID string, price int) (domain.TeamPlayer, error) {
	if f.sellErr != nil {
		return domain.TeamPlayer{}, f.sellErr
	}
	return domain.TeamPlayer{
		ID:            "tp-new",
		TeamID:        teamID,
		PlayerID:      playerID,
		PurchasePrice: price,
		TournamentID:  "t-1",
		TeamName:      "Strikers",
		PlayerName:    "V. Kohli",
	}, nil
}

func (f *fakeAuctionService) MarkUnsold(_ context.Context, playerID string) (domain.Player, error) {
	if f.unsoldErr != nil {
		return domain.Player{}, f.unsoldErr
	}
	return domain.Player{ID: playerID, TournamentID: "t-1", Status: domain.PlayerUnsold}, nil
}

func setupAuctionRouter(svc store.AuctionService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewAuctionHandler(store.NewTeamPlayerStore(svc, nil))
	router := gin.New()
	router.GET("/team-players", handler.HandleListTeamPlayers)
	router.POST("/auction/sell", handler.HandleSellPlayer)
	router.POST("/auction/players/:playerID/unsold", handler.HandleMarkUnsold)

	return router
}

func TestHandleSellPlayer(t *testing.T) {
	validBody := `{"team_id":"team-1","player_id":"player-1","price":40}`

	tests := []struct {
		name     string
		body     string
		sellErr  error
		wantCode int
	}{
		{
			name:     "sale settles",
			body:     validBody,
			wantCode: http.StatusCreated,
		},
		{
			name:     "missing team",
			body:     `{"player_id":"player-1","price":40}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "zero price",
			body:     `{"team_id":"team-1","player_id":"player-1","price":0}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown team",
			body:     validBody,
			sellErr:  service.ErrTeamNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "unknown player",
			body:     validBody,
			sellErr:  service.ErrPlayerNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "player already sold",
			body:     validBody,
			sellErr:  service.ErrPlayerAlreadySold,
			wantCode: http.StatusConflict,
		},
		{
			name:     "player not available",
			body:     validBody,
			sellErr:  service.ErrPlayerNotAvailable,
			wantCode: http.StatusConflict,
		},
		{
			name:     "tournament mismatch",
			body:     validBody,
			sellErr:  service.ErrTournamentMismatch,
			wantCode: http.StatusConflict,
		},
		{
			name:     "insufficient points",
			body:     validBody,
			sellErr:  service.ErrInsufficientPoints,
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuctionRouter(&fakeAuctionService{sellErr: tt.sellErr})

			req := httptest.NewRequest(http.MethodPost, "/auction/sell", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestHandleSellPlayer_ReturnsHydratedPurchase(t *testing.T) {
	router := setupAuctionRouter(&fakeAuctionService{})

	body := `{"team_id":"team-1","player_id":"player-1","price":40}`
	req := httptest.NewRequest(http.MethodPost, "/auction/sell", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)

	var got domain.TeamPlayer
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "Strikers", got.TeamName)
	assert.Equal(t, "V. Kohli", got.PlayerName)
	assert.Equal(t, 40, got.PurchasePrice)
}

func TestHandleMarkUnsold(t *testing.T) {
	t.Run("marks the player unsold", func(t *testing.T) {
		router := setupAuctionRouter(&fakeAuctionService{})

		req := httptest.NewRequest(http.MethodPost, "/auction/players/player-1/unsold", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		var got domain.Player
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
		assert.Equal(t, domain.PlayerUnsold, got.Status)
	})

	t.Run("unknown player", func(t *testing.T) {
		router := setupAuctionRouter(&fakeAuctionService{unsoldErr: service.ErrPlayerNotFound})

		req := httptest.NewRequest(http.MethodPost, "/auction/players/nope/unsold", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("player no longer available", func(t *testing.T) {
		router := setupAuctionRouter(&fakeAuctionService{unsoldErr: service.ErrPlayerNotAvailable})

		req := httptest.NewRequest(http.MethodPost, "/auction/players/player-2/unsold", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusConflict, resp.Code)
	})
}

func TestHandleListTeamPlayers(t *testing.T) {
	router := setupAuctionRouter(&fakeAuctionService{rows: []domain.TeamPlayer{
		{ID: "tp-1", TeamID: "team-1", PlayerID: "player-1", PurchasePrice: 40},
	}})

	req := httptest.NewRequest(http.MethodGet, "/team-players?tournament_id=t-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got []domain.TeamPlayer
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "tp-1", got[0].ID)
}
