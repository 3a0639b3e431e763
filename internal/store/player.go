package store

import (
	"context"
	"sync"

	"github.com/auctionday/auction-api/internal/domain"
)

type PlayerService interface {
	CreatePlayer(ctx context.Context, player domain.Player) (domain.Player, error)
	ListPlayers(ctx context.Context, tournamentID string, status domain.PlayerStatus) ([]domain.Player, error)
	GetPlayer(ctx context.Context, id string) (domain.Player, error)
	UpdatePlayer(ctx context.Context, id string, update domain.PlayerUpdate) (domain.Player, error)
	DeletePlayer(ctx context.Context, id string) error
}

type PlayerStore struct {
	svc PlayerService

	mu      sync.Mutex
	rows    []domain.Player
	current *domain.Player
	loading bool
	lastErr string
}

func NewPlayerStore(svc PlayerService) *PlayerStore {
	return &PlayerStore{
		svc: svc,
	}
}

func (s *PlayerStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *PlayerStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
	}
	s.mu.Unlock()
}

// FetchAll replaces the snapshot, optionally scoped to one tournament.
// A fetch failure leaves the previous snapshot in place.
func (s *PlayerStore) FetchAll(ctx context.Context, tournamentID string) []domain.Player {
	s.begin()

	rows, err := s.svc.ListPlayers(ctx, tournamentID, "")
	s.finish(err)
	if err != nil {
		return s.Rows()
	}

	s.mu.Lock()
	s.rows = rows
	s.mu.Unlock()

	return s.Rows()
}

func (s *PlayerStore) Get(ctx context.Context, id string) (domain.Player, bool) {
	s.begin()

	player, err := s.svc.GetPlayer(ctx, id)
	s.finish(err)
	if err != nil {
		return domain.Player{}, false
	}

	s.mu.Lock()
	s.current = &player
	s.mu.Unlock()

	return player, true
}

func (s *PlayerStore) Create(ctx context.Context, player domain.Player) (domain.Player, error) {
	s.begin()

	created, err := s.svc.CreatePlayer(ctx, player)
	s.finish(err)
	if err != nil {
		return domain.Player{}, err
	}

	s.mu.Lock()
	s.rows = append([]domain.Player{created}, s.rows...)
	s.mu.Unlock()

	return created, nil
}

func (s *PlayerStore) Update(ctx context.Context, id string, update domain.PlayerUpdate) (domain.Player, error) {
	s.begin()

	updated, err := s.svc.UpdatePlayer(ctx, id, update)
	s.finish(err)
	if err != nil {
		return domain.Player{}, err
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

func (s *PlayerStore) Delete(ctx context.Context, id string) error {
	s.begin()

	err := s.svc.DeletePlayer(ctx, id)
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

func (s *PlayerStore) Rows() []domain.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Player, len(s.rows))
	copy(out, s.rows)
	return out
}

// ByTournament filters the snapshot without touching the backend.
func (s *PlayerStore) ByTournament(tournamentID string) []domain.Player {
	return s.byStatus(tournamentID, "")
}

// Available returns the tournament's players still up for auction, in
// snapshot order.
func (s *PlayerStore) Available(tournamentID string) []domain.Player {
	return s.byStatus(tournamentID, domain.PlayerAvailable)
}

func (s *PlayerStore) Sold(tournamentID string) []domain.Player {
	return s.byStatus(tournamentID, domain.PlayerSold)
}

func (s *PlayerStore) Unsold(tournamentID string) []domain.Player {
	return s.byStatus(tournamentID, domain.PlayerUnsold)
}

func (s *PlayerStore) byStatus(tournamentID string, status domain.PlayerStatus) []domain.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Player
	for _, row := range s.rows {
		if row.TournamentID != tournamentID {
			continue
		}
		if status != "" && row.Status != status {
			continue
		}
		out = append(out, row)
	}
	return out
}

func (s *PlayerStore) Current() (domain.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.Player{}, false
	}
	return *s.current, true
}

func (s *PlayerStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

func (s *PlayerStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastErr
}
