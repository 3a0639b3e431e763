package store

import (
	"context"
	"sync"

	"github.com/auctionday/auction-api/internal/domain"
)

type TournamentService interface {
	CreateTournament(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error)
	ListTournaments(ctx context.Context) ([]domain.Tournament, error)
	GetTournament(ctx context.Context, id string) (domain.Tournament, error)
	UpdateTournament(ctx context.Context, id string, update domain.TournamentUpdate) (domain.Tournament, error)
	DeleteTournament(ctx context.Context, id string) error
}

type TournamentStore struct {
	svc TournamentService

	mu      sync.Mutex
	rows    []domain.Tournament
	current *domain.Tournament
	loading bool
	lastErr string
}

func NewTournamentStore(svc TournamentService) *TournamentStore {
	return &TournamentStore{
		svc: svc,
	}
}

func (s *TournamentStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *TournamentStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
	}
	s.mu.Unlock()
}

// FetchAll replaces the snapshot with every tournament, newest first.
// A fetch failure leaves the previous snapshot in place.
func (s *TournamentStore) FetchAll(ctx context.Context) []domain.Tournament {
	s.begin()

	rows, err := s.svc.ListTournaments(ctx)
	s.finish(err)
	if err != nil {
		return s.Rows()
	}

	s.mu.Lock()
	s.rows = rows
	s.mu.Unlock()

	return s.Rows()
}

func (s *TournamentStore) Get(ctx context.Context, id string) (domain.Tournament, bool) {
	s.begin()

	tournament, err := s.svc.GetTournament(ctx, id)
	s.finish(err)
	if err != nil {
		return domain.Tournament{}, false
	}

	s.mu.Lock()
	s.current = &tournament
	s.mu.Unlock()

	return tournament, true
}

func (s *TournamentStore) Create(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error) {
	s.begin()

	created, err := s.svc.CreateTournament(ctx, tournament)
	s.finish(err)
	if err != nil {
		return domain.Tournament{}, err
	}

	s.mu.Lock()
	s.rows = append([]domain.Tournament{created}, s.rows...)
	s.mu.Unlock()

	return created, nil
}

func (s *TournamentStore) Update(ctx context.Context, id string, update domain.TournamentUpdate) (domain.Tournament, error) {
	s.begin()

	updated, err := s.svc.UpdateTournament(ctx, id, update)
	s.finish(err)
	if err != nil {
		return domain.Tournament{}, err
	}

	s.mu.Lock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i] = updated
			break
		}
	}
	if s.current != nil && s.current.ID == id {
		s.current = &updated
	}
	s.mu.Unlock()

	return updated, nil
}

func (s *TournamentStore) Delete(ctx context.Context, id string) error {
	s.begin()

	err := s.svc.DeleteTournament(ctx, id)
	s.finish(err)
	if err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.rows[:0]
	for _, row := range s.rows {
		if row.ID != id {
			kept = append(kept, row)
		}
	}
	s.rows = kept
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.mu.Unlock()

	return nil
}

// Rows returns a copy of the snapshot in list order.
func (s *TournamentStore) Rows() []domain.Tournament {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Tournament, len(s.rows))
	copy(out, s.rows)
	return out
}

func (s *TournamentStore) Current() (domain.Tournament, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.Tournament{}, false
	}
	return *s.current, true
}

func (s *TournamentStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

func (s *TournamentStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastErr
}
