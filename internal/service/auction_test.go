package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auctionday/auction-api/internal/domain"
)

type fakeAuctionRepo struct {
	sold    []domain.TeamPlayer
	sellErr error

	unsoldIDs []string
	unsoldErr error
}

func (f *fakeAuctionRepo) List(_ context.Context, _ string) ([]domain.TeamPlayer, error) {
	return f.sold, nil
}

func (f *fakeAuctionRepo) SellPlayer(_ context.Context, teamID, playerID string, price int) (domain.TeamPlayer, error) {
	if f.sellErr != nil {
		return domain.TeamPlayer{}, f.sellErr
	}

	teamPlayer := domain.TeamPlayer{
		ID:            "tp-1",
		TeamID:        teamID,
		PlayerID:      playerID,
		PurchasePrice: price,
	}
	f.sold = append(f.sold, teamPlayer)

	return teamPlayer, nil
}

func (f *fakeAuctionRepo) MarkUnsold(_ context.Context, playerID string) error {
	if f.unsoldErr != nil {
		return f.unsoldErr
	}

	f.unsoldIDs = append(f.unsoldIDs, playerID)

	return nil
}

type fakeTeamRepo struct {
	teams map[string]domain.Team
}

func (f *fakeTeamRepo) Create(_ context.Context, team domain.Team) (domain.Team, error) {
	return team, nil
}

func (f *fakeTeamRepo) List(_ context.Context, _ string) ([]domain.Team, error) {
	var out []domain.Team
	for _, team := range f.teams {
		out = append(out, team)
	}
	return out, nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id string) (domain.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return domain.Team{}, ErrTeamNotFound
	}
	return team, nil
}

func (f *fakeTeamRepo) Update(_ context.Context, id string, _ domain.TeamUpdate) (domain.Team, error) {
	return f.teams[id], nil
}

func (f *fakeTeamRepo) Delete(_ context.Context, _ string) error {
	return nil
}

type fakePlayerRepo struct {
	players map[string]domain.Player
}

func (f *fakePlayerRepo) Create(_ context.Context, player domain.Player) (domain.Player, error) {
	return player, nil
}

func (f *fakePlayerRepo) List(_ context.Context, _ string, _ domain.PlayerStatus) ([]domain.Player, error) {
	var out []domain.Player
	for _, player := range f.players {
		out = append(out, player)
	}
	return out, nil
}

func (f *fakePlayerRepo) GetByID(_ context.Context, id string) (domain.Player, error) {
	player, ok := f.players[id]
	if !ok {
		return domain.Player{}, ErrPlayerNotFound
	}
	return player, nil
}

func (f *fakePlayerRepo) Update(_ context.Context, id string, _ domain.PlayerUpdate) (domain.Player, error) {
	return f.players[id], nil
}

func (f *fakePlayerRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func newAuctionFixture() (*AuctionService, *fakeAuctionRepo) {
	imageURL := "https://cdn.example.com/kohli.png"
	repo := &fakeAuctionRepo{}
	teamRepo := &fakeTeamRepo{teams: map[string]domain.Team{
		"team-1": {ID: "team-1", TournamentID: "t-1", Name: "Strikers", RemainingPoints: 100},
		"team-2": {ID: "team-2", TournamentID: "t-2", Name: "Chargers", RemainingPoints: 100},
	}}
	playerRepo := &fakePlayerRepo{players: map[string]domain.Player{
		"player-1": {
			ID: "player-1", TournamentID: "t-1", Name: "V. Kohli", Position: "Batter",
			ImageURL: &imageURL, IsIcon: true, Status: domain.PlayerAvailable,
		},
		"player-2": {ID: "player-2", TournamentID: "t-1", Name: "R. Sharma", Status: domain.PlayerSold},
	}}

	return NewAuctionService(repo, teamRepo, playerRepo), repo
}

func TestAuctionService_SellPlayer(t *testing.T) {
	t.Run("hydrates the purchase record on success", func(t *testing.T) {
		svc, _ := newAuctionFixture()

		got, err := svc.SellPlayer(context.Background(), "team-1", "player-1", 40)

		require.NoError(t, err)
		assert.Equal(t, "team-1", got.TeamID)
		assert.Equal(t, "player-1", got.PlayerID)
		assert.Equal(t, 40, got.PurchasePrice)
		assert.Equal(t, "t-1", got.TournamentID)
		assert.Equal(t, "Strikers", got.TeamName)
		assert.Equal(t, "V. Kohli", got.PlayerName)
		assert.Equal(t, "Batter", got.PlayerPosition)
		assert.True(t, got.PlayerIsIcon)
	})

	t.Run("rejects a non-positive price before touching the repo", func(t *testing.T) {
		svc, repo := newAuctionFixture()

		_, err := svc.SellPlayer(context.Background(), "team-1", "player-1", 0)

		require.ErrorIs(t, err, ErrInvalidPrice)
		assert.Empty(t, repo.sold)
	})

	t.Run("unknown team", func(t *testing.T) {
		svc, _ := newAuctionFixture()

		_, err := svc.SellPlayer(context.Background(), "nope", "player-1", 10)

		require.ErrorIs(t, err, ErrTeamNotFound)
	})

	t.Run("unknown player", func(t *testing.T) {
		svc, _ := newAuctionFixture()

		_, err := svc.SellPlayer(context.Background(), "team-1", "nope", 10)

		require.ErrorIs(t, err, ErrPlayerNotFound)
	})

	t.Run("team and player from different tournaments", func(t *testing.T) {
		svc, repo := newAuctionFixture()

		_, err := svc.SellPlayer(context.Background(), "team-2", "player-1", 10)

		require.ErrorIs(t, err, ErrTournamentMismatch)
		assert.Empty(t, repo.sold)
	})

	t.Run("player already sold", func(t *testing.T) {
		svc, repo := newAuctionFixture()

		_, err := svc.SellPlayer(context.Background(), "team-1", "player-2", 10)

		require.ErrorIs(t, err, ErrPlayerNotAvailable)
		assert.Empty(t, repo.sold)
	})

	t.Run("insufficient points surfaces unchanged", func(t *testing.T) {
		svc, repo := newAuctionFixture()
		repo.sellErr = ErrInsufficientPoints

		_, err := svc.SellPlayer(context.Background(), "team-1", "player-1", 999)

		require.ErrorIs(t, err, ErrInsufficientPoints)
	})
}

func TestAuctionService_MarkUnsold(t *testing.T) {
	t.Run("returns the player with its new status", func(t *testing.T) {
		svc, repo := newAuctionFixture()

		player, err := svc.MarkUnsold(context.Background(), "player-1")

		require.NoError(t, err)
		assert.Equal(t, domain.PlayerUnsold, player.Status)
		assert.Equal(t, "t-1", player.TournamentID)
		assert.Equal(t, []string{"player-1"}, repo.unsoldIDs)
	})

	t.Run("unknown player", func(t *testing.T) {
		svc, _ := newAuctionFixture()

		_, err := svc.MarkUnsold(context.Background(), "nope")

		require.ErrorIs(t, err, ErrPlayerNotFound)
	})

	t.Run("repo failure propagates", func(t *testing.T) {
		svc, repo := newAuctionFixture()
		repo.unsoldErr = ErrPlayerNotAvailable

		_, err := svc.MarkUnsold(context.Background(), "player-1")

		require.ErrorIs(t, err, ErrPlayerNotAvailable)
	})
}

func TestAuctionService_ListTeamPlayers(t *testing.T) {
	svc, repo := newAuctionFixture()
	repo.sold = []domain.TeamPlayer{{ID: "tp-9", TeamID: "team-1", PlayerID: "player-2"}}

	got, err := svc.ListTeamPlayers(context.Background(), "t-1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tp-9", got[0].ID)
}

func TestAuctionService_SellPlayer_RepoFailureLeavesNothingBehind(t *testing.T) {
	svc, repo := newAuctionFixture()
	repo.sellErr = errors.New("connection reset")

	_, err := svc.SellPlayer(context.Background(), "team-1", "player-1", 40)

	require.Error(t, err)
	assert.Empty(t, repo.sold)
}
