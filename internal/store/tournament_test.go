package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auctionday/auction-api/internal/domain"
)

type fakeTournamentService struct {
	rows []domain.Tournament
	err  error
}

func (f *fakeTournamentService) CreateTournament(_ context.Context, tournament domain.Tournament) (domain.Tournament, error) {
	if f.err != nil {
		return domain.Tournament{}, f.err
	}
	tournament.ID = "t-new"
	return tournament, nil
}

func (f *fakeTournamentService) ListTournaments(_ context.Context) ([]domain.Tournament, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeTournamentService) GetTournament(_ context.Context, id string) (domain.Tournament, error) {
	if f.err != nil {
		return domain.Tournament{}, f.err
	}
	for _, row := range f.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return domain.Tournament{}, errors.New("not found")
}

func (f *fakeTournamentService) UpdateTournament(_ context.Context, id string, update domain.TournamentUpdate) (domain.Tournament, error) {
	if f.err != nil {
		return domain.Tournament{}, f.err
	}
	updated := domain.Tournament{ID: id}
	if update.Name != nil {
		updated.Name = *update.Name
	}
	return updated, nil
}

func (f *fakeTournamentService) DeleteTournament(_ context.Context, _ string) error {
	return f.err
}

func TestTournamentStore_FetchAll(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the snapshot", func(t *testing.T) {
		svc := &fakeTournamentService{rows: []domain.Tournament{{ID: "t-2"}, {ID: "t-1"}}}
		s := NewTournamentStore(svc)

		got := s.FetchAll(ctx)

		require.Len(t, got, 2)
		assert.Equal(t, "t-2", got[0].ID)
		assert.Empty(t, s.Err())
		assert.False(t, s.Loading())
	})

	t.Run("is idempotent", func(t *testing.T) {
		svc := &fakeTournamentService{rows: []domain.Tournament{{ID: "t-1"}}}
		s := NewTournamentStore(svc)

		s.FetchAll(ctx)
		got := s.FetchAll(ctx)

		assert.Len(t, got, 1)
	})

	t.Run("a failed fetch keeps the previous snapshot and records the error", func(t *testing.T) {
		svc := &fakeTournamentService{rows: []domain.Tournament{{ID: "t-1"}}}
		s := NewTournamentStore(svc)
		s.FetchAll(ctx)

		svc.err = errors.New("db down")
		got := s.FetchAll(ctx)

		require.Len(t, got, 1)
		assert.Equal(t, "t-1", got[0].ID)
		assert.Equal(t, "db down", s.Err())
	})

	t.Run("the next successful call clears the error", func(t *testing.T) {
		svc := &fakeTournamentService{}
		s := NewTournamentStore(svc)

		svc.err = errors.New("db down")
		s.FetchAll(ctx)
		require.NotEmpty(t, s.Err())

		svc.err = nil
		s.FetchAll(ctx)
		assert.Empty(t, s.Err())
	})
}

func TestTournamentStore_Create(t *testing.T) {
	ctx := context.Background()
	svc := &fakeTournamentService{rows: []domain.Tournament{{ID: "t-1"}}}
	s := NewTournamentStore(svc)
	s.FetchAll(ctx)

	created, err := s.Create(ctx, domain.Tournament{Name: "Winter Cup"})

	require.NoError(t, err)
	rows := s.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, created.ID, rows[0].ID, "new row goes to the front")
}

func TestTournamentStore_Create_ErrorPropagatesAndRecords(t *testing.T) {
	ctx := context.Background()
	svc := &fakeTournamentService{err: errors.New("insert failed")}
	s := NewTournamentStore(svc)

	_, err := s.Create(ctx, domain.Tournament{Name: "Winter Cup"})

	require.Error(t, err)
	assert.Equal(t, "insert failed", s.Err())
	assert.Empty(t, s.Rows())
}

func TestTournamentStore_Get(t *testing.T) {
	ctx := context.Background()
	svc := &fakeTournamentService{rows: []domain.Tournament{{ID: "t-1", Name: "Summer Cup"}}}
	s := NewTournamentStore(svc)

	got, ok := s.Get(ctx, "t-1")

	require.True(t, ok)
	assert.Equal(t, "Summer Cup", got.Name)

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "t-1", current.ID)
}

func TestTournamentStore_Update(t *testing.T) {
	ctx := context.Background()
	svc := &fakeTournamentService{rows: []domain.Tournament{{ID: "t-1", Name: "Summer Cup"}}}
	s := NewTournamentStore(svc)
	s.FetchAll(ctx)
	s.Get(ctx, "t-1")

	name := "Renamed Cup"
	updated, err := s.Update(ctx, "t-1", domain.TournamentUpdate{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Renamed Cup", updated.Name)

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Renamed Cup", rows[0].Name, "snapshot row replaced in place")

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "Renamed Cup", current.Name, "selection follows the update")
}

func TestTournamentStore_Delete(t *testing.T) {
	ctx := context.Background()
	svc := &fakeTournamentService{rows: []domain.Tournament{{ID: "t-1"}, {ID: "t-2"}}}
	s := NewTournamentStore(svc)
	s.FetchAll(ctx)
	s.Get(ctx, "t-1")

	require.NoError(t, s.Delete(ctx, "t-1"))

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "t-2", rows[0].ID)

	_, ok := s.Current()
	assert.False(t, ok, "deleting the selected row clears the selection")
}
