package store

import (
	"context"
	"sync"

	"github.com/auctionday/auction-api/internal/domain"
)

type AuctionService interface {
	ListTeamPlayers(ctx context.Context, tournamentID string) ([]domain.TeamPlayer, error)
	SellPlayer(ctx context.Context, teamID, playerID string, price int) (domain.TeamPlayer, error)
	MarkUnsold(ctx context.Context, playerID string) (domain.Player, error)
}

// SaleNotifier receives settlement outcomes; the live feed hub implements
// it. A nil notifier is fine.
type SaleNotifier interface {
	NotifySale(teamPlayer domain.TeamPlayer)
	NotifyUnsold(player domain.Player)
}

type TeamPlayerStore struct {
	svc      AuctionService
	notifier SaleNotifier

	mu      sync.Mutex
	rows    []domain.TeamPlayer
	loading bool
	lastErr string
}

func NewTeamPlayerStore(svc AuctionService, notifier SaleNotifier) *TeamPlayerStore {
	return &TeamPlayerStore{
		svc:      svc,
		notifier: notifier,
	}
}

func (s *TeamPlayerStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *TeamPlayerStore) finish(err error) {
	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
	}
	s.mu.Unlock()
}

// FetchAll replaces the snapshot with the purchase rows, hydrated with
// team and player info, optionally scoped to one tournament. A fetch
// failure leaves the previous snapshot in place.
func (s *TeamPlayerStore) FetchAll(ctx context.Context, tournamentID string) []domain.TeamPlayer {
	s.begin()

	rows, err := s.svc.ListTeamPlayers(ctx, tournamentID)
	s.finish(err)
	if err != nil {
		return s.Rows()
	}

	s.mu.Lock()
	s.rows = rows
	s.mu.Unlock()

	return s.Rows()
}

// Sell settles a sale and prepends the created purchase row on success.
func (s *TeamPlayerStore) Sell(ctx context.Context, teamID, playerID string, price int) (domain.TeamPlayer, error) {
	s.begin()

	teamPlayer, err := s.svc.SellPlayer(ctx, teamID, playerID, price)
	s.finish(err)
	if err != nil {
		return domain.TeamPlayer{}, err
	}

	s.mu.Lock()
	s.rows = append([]domain.TeamPlayer{teamPlayer}, s.rows...)
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.NotifySale(teamPlayer)
	}

	return teamPlayer, nil
}

// MarkUnsold passes the player over; no purchase row is created.
func (s *TeamPlayerStore) MarkUnsold(ctx context.Context, playerID string) (domain.Player, error) {
	s.begin()

	player, err := s.svc.MarkUnsold(ctx, playerID)
	s.finish(err)
	if err != nil {
		return domain.Player{}, err
	}

	if s.notifier != nil {
		s.notifier.NotifyUnsold(player)
	}

	return player, nil
}

func (s *TeamPlayerStore) Rows() []domain.TeamPlayer {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.TeamPlayer, len(s.rows))
	copy(out, s.rows)
	return out
}

// ByTeam filters the snapshot without touching the backend.
func (s *TeamPlayerStore) ByTeam(teamID string) []domain.TeamPlayer {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.TeamPlayer
	for _, row := range s.rows {
		if row.TeamID == teamID {
			out = append(out, row)
		}
	}
	return out
}

func (s *TeamPlayerStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

func (s *TeamPlayerStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastErr
}
