package store

import (
	"context"
	"sync"

	"github.com/auctionday/auction-api/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error)
	ListTeams(ctx context.Context, tournamentID string) ([]domain.Team, error)
	GetTeam(ctx context.Context, id string) (domain.Team, error)
	UpdateTeam(ctx context.Context, id string, update domain.TeamUpdate) (domain.Team, error)
	DeleteTeam(ctx context.Context, id string) error
}

type TeamStore struct {
	svc TeamService

	mu      sync.Mutex
	rows    []domain.Team
	current *domain.Team
	loading bool
	lastErr string
}

func NewTeamStore(svc TeamService) *TeamStore {
	return &TeamStore{
		svc: svc,
	}
}

func (s *TeamStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *TeamStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
	}
	s.mu.Unlock()
}

// FetchAll replaces the snapshot, optionally scoped to one tournament.
// A fetch failure leaves the previous snapshot in place.
func (s *TeamStore) FetchAll(ctx context.Context, tournamentID string) []domain.Team {
	s.begin()

	rows, err := s.svc.ListTeams(ctx, tournamentID)
	s.finish(err)
	if err != nil {
		return s.Rows()
	}

	s.mu.Lock()
	s.rows = rows
	s.mu.Unlock()

	return s.Rows()
}

func (s *TeamStore) Get(ctx context.Context, id string) (domain.Team, bool) {
	s.begin()

	team, err := s.svc.GetTeam(ctx, id)
	s.finish(err)
	if err != nil {
		return domain.Team{}, false
	}

	s.mu.Lock()
	s.current = &team
	s.mu.Unlock()

	return team, true
}

func (s *TeamStore) Create(ctx context.Context, team domain.Team) (domain.Team, error) {
	s.begin()

	created, err := s.svc.CreateTeam(ctx, team)
	s.finish(err)
	if err != nil {
		return domain.Team{}, err
	}

	s.mu.Lock()
	s.rows = append([]domain.Team{created}, s.rows...)
	s.mu.Unlock()

	return created, nil
}

func (s *TeamStore) Update(ctx context.Context, id string, update domain.TeamUpdate) (domain.Team, error) {
	s.begin()

	updated, err := s.svc.UpdateTeam(ctx, id, update)
	s.finish(err)
	if err != nil {
		return domain.Team{}, err
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

func (s *TeamStore) Delete(ctx context.Context, id string) error {
	s.begin()

	err := s.svc.DeleteTeam(ctx, id)
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

func (s *TeamStore) Rows() []domain.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Team, len(s.rows))
	copy(out, s.rows)
	return out
}

// ByTournament filters the snapshot without touching the backend.
func (s *TeamStore) ByTournament(tournamentID string) []domain.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Team
	for _, row := range s.rows {
		if row.TournamentID == tournamentID {
			out = append(out, row)
		}
	}
	return out
}

func (s *TeamStore) Current() (domain.Team, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.Team{}, false
	}
	return *s.current, true
}

func (s *TeamStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

func (s *TeamStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastErr
}
