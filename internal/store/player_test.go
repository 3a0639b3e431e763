package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auctionday/auction-api/internal/domain"
)

type fakePlayerService struct {
	rows []domain.Player
	err  error
}

func (f *fakePlayerService) CreatePlayer(_ context.Context, player domain.Player) (domain.Player, error) {
	if f.err != nil {
		return domain.Player{}, f.err
	}
	player.ID = "player-new"
	return player, nil
}

func (f *fakePlayerService) ListPlayers(_ context.Context, tournamentID string, status domain.PlayerStatus) ([]domain.Player, error) {
	if f.err != nil {
		return nil, f.err
	}

	var out []domain.Player
	for _, row := range f.rows {
		if tournamentID != "" && row.TournamentID != tournamentID {
			continue
		}
		if status != "" && row.Status != status {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakePlayerService) GetPlayer(_ context.Context, id string) (domain.Player, error) {
	for _, row := range f.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return domain.Player{}, f.err
}

func (f *fakePlayerService) UpdatePlayer(_ context.Context, id string, _ domain.PlayerUpdate) (domain.Player, error) {
	return domain.Player{ID: id}, f.err
}

func (f *fakePlayerService) DeletePlayer(_ context.Context, _ string) error {
	return f.err
}

func seededPlayerStore(t *testing.T) *PlayerStore {
	t.Helper()

	svc := &fakePlayerService{rows: []domain.Player{
		{ID: "p-1", TournamentID: "t-1", Name: "V. Kohli", Status: domain.PlayerAvailable},
		{ID: "p-2", TournamentID: "t-1", Name: "R. Sharma", Status: domain.PlayerSold},
		{ID: "p-3", TournamentID: "t-1", Name: "J. Bumrah", Status: domain.PlayerUnsold},
		{ID: "p-4", TournamentID: "t-2", Name: "S. Gill", Status: domain.PlayerAvailable},
	}}
	s := NewPlayerStore(svc)
	s.FetchAll(context.Background(), "")

	return s
}

func TestPlayerStore_DerivedViews(t *testing.T) {
	s := seededPlayerStore(t)

	available := s.Available("t-1")
	require.Len(t, available, 1)
	assert.Equal(t, "p-1", available[0].ID)

	sold := s.Sold("t-1")
	require.Len(t, sold, 1)
	assert.Equal(t, "p-2", sold[0].ID)

	unsold := s.Unsold("t-1")
	require.Len(t, unsold, 1)
	assert.Equal(t, "p-3", unsold[0].ID)

	assert.Len(t, s.ByTournament("t-1"), 3)
	assert.Len(t, s.ByTournament("t-2"), 1)
	assert.Empty(t, s.ByTournament("t-9"))
}

func TestPlayerStore_Current(t *testing.T) {
	s := seededPlayerStore(t)
	s.Get(context.Background(), "p-1")

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "V. Kohli", current.Name)
	assert.Equal(t, domain.PlayerAvailable, current.Status)
}

func TestPlayerStore_ViewsReturnCopies(t *testing.T) {
	s := seededPlayerStore(t)

	rows := s.Rows()
	rows[0].Name = "scribbled"

	fresh := s.Rows()
	assert.Equal(t, "V. Kohli", fresh[0].Name)
}
