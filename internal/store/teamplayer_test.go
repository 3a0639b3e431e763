package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auctionday/auction-api/internal/domain"
)

type fakeAuctionService struct {
	rows    []domain.TeamPlayer
	listErr error
	sellErr error
}

func (f *fakeAuctionService) ListTeamPlayers(_ context.Context, _ string) ([]domain.TeamPlayer, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
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
	}, nil
}

func (f *fakeAuctionService) MarkUnsold(_ context.Context, playerID string) (domain.Player, error) {
	if f.sellErr != nil {
		return domain.Player{}, f.sellErr
	}
	return domain.Player{ID: playerID, TournamentID: "t-1", Status: domain.PlayerUnsold}, nil
}

type recordingNotifier struct {
	sales   []domain.TeamPlayer
	unsolds []domain.Player
}

func (n *recordingNotifier) NotifySale(teamPlayer domain.TeamPlayer) {
	n.sales = append(n.sales, teamPlayer)
}

func (n *recordingNotifier) NotifyUnsold(player domain.Player) {
	n.unsolds = append(n.unsolds, player)
}

func TestTeamPlayerStore_Sell(t *testing.T) {
	ctx := context.Background()

	t.Run("prepends the purchase and notifies", func(t *testing.T) {
		svc := &fakeAuctionService{rows: []domain.TeamPlayer{{ID: "tp-old"}}}
		notifier := &recordingNotifier{}
		s := NewTeamPlayerStore(svc, notifier)
		s.FetchAll(ctx, "")

		got, err := s.Sell(ctx, "team-1", "player-1", 40)

		require.NoError(t, err)
		assert.Equal(t, "tp-new", got.ID)

		rows := s.Rows()
		require.Len(t, rows, 2)
		assert.Equal(t, "tp-new", rows[0].ID)

		require.Len(t, notifier.sales, 1)
		assert.Equal(t, "player-1", notifier.sales[0].PlayerID)
	})

	t.Run("a failed sale records the error and stays silent", func(t *testing.T) {
		svc := &fakeAuctionService{sellErr: errors.New("insufficient points")}
		notifier := &recordingNotifier{}
		s := NewTeamPlayerStore(svc, notifier)

		_, err := s.Sell(ctx, "team-1", "player-1", 999)

		require.Error(t, err)
		assert.Equal(t, "insufficient points", s.Err())
		assert.Empty(t, s.Rows())
		assert.Empty(t, notifier.sales)
	})

	t.Run("a nil notifier is fine", func(t *testing.T) {
		svc := &fakeAuctionService{}
		s := NewTeamPlayerStore(svc, nil)

		_, err := s.Sell(ctx, "team-1", "player-1", 40)

		require.NoError(t, err)
	})
}

func TestTeamPlayerStore_MarkUnsold(t *testing.T) {
	ctx := context.Background()
	svc := &fakeAuctionService{}
	notifier := &recordingNotifier{}
	s := NewTeamPlayerStore(svc, notifier)

	player, err := s.MarkUnsold(ctx, "player-1")

	require.NoError(t, err)
	assert.Equal(t, domain.PlayerUnsold, player.Status)
	require.Len(t, notifier.unsolds, 1)
	assert.Equal(t, "player-1", notifier.unsolds[0].ID)
	assert.Empty(t, s.Rows(), "passing a player over creates no purchase row")
}

func TestTeamPlayerStore_FetchAllFailureKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	svc := &fakeAuctionService{rows: []domain.TeamPlayer{{ID: "tp-1", TeamID: "team-1"}}}
	s := NewTeamPlayerStore(svc, nil)
	s.FetchAll(ctx, "")

	svc.listErr = errors.New("db down")
	got := s.FetchAll(ctx, "")

	require.Len(t, got, 1)
	assert.Equal(t, "db down", s.Err())
}

func TestTeamPlayerStore_ByTeam(t *testing.T) {
	ctx := context.Background()
	svc := &fakeAuctionService{rows: []domain.TeamPlayer{
		{ID: "tp-1", TeamID: "team-1"},
		{ID: "tp-2", TeamID: "team-2"},
		{ID: "tp-3", TeamID: "team-1"},
	}}
	s := NewTeamPlayerStore(svc, nil)
	s.FetchAll(ctx, "")

	roster := s.ByTeam("team-1")

	require.Len(t, roster, 2)
	assert.Equal(t, "tp-1", roster[0].ID)
	assert.Equal(t, "tp-3", roster[1].ID)
}
