package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/auctionday/auction-api/internal/domain"
	"github.com/auctionday/auction-api/internal/metrics"
	"github.com/auctionday/auction-api/internal/repository"
)

var (
	ErrPlayerAlreadySold  = repository.ErrPlayerAlreadySold
	ErrPlayerNotAvailable = repository.ErrPlayerNotAvailable
	ErrInsufficientPoints = repository.ErrInsufficientPoints
	ErrTournamentMismatch = errors.New("team and player belong to different tournaments")
	ErrInvalidPrice       = errors.New("purchase price must be positive")
)

type AuctionRepository interface {
	List(ctx context.Context, tournamentID string) ([]domain.TeamPlayer, error)
	SellPlayer(ctx context.Context, teamID, playerID string, price int) (domain.TeamPlayer, error)
	MarkUnsold(ctx context.Context, playerID string) error
}

// AuctionService settles sales. The three dependent writes (purchase row,
// player status, team budget) commit as one unit in the repository layer;
// this layer owns the cross-entity checks that need no transaction.
type AuctionService struct {
	repo       AuctionRepository
	teamRepo   TeamRepository
	playerRepo PlayerRepository
}

func NewAuctionService(repo AuctionRepository, teamRepo TeamRepository, playerRepo PlayerRepository) *AuctionService {
	return &AuctionService{
		repo:       repo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *AuctionService) ListTeamPlayers(ctx context.Context, tournamentID string) ([]domain.TeamPlayer, error) {
	teamPlayers, err := s.repo.List(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return teamPlayers, nil
}

// SellPlayer finalizes a sale. After it returns successfully the player is
// sold, exactly one purchase row links it to the team, and the team's
// budget is down by price. On any failure nothing is applied.
func (s *AuctionService) SellPlayer(ctx context.Context, teamID, playerID string, price int) (domain.TeamPlayer, error) {
	if price <= 0 {
		return domain.TeamPlayer{}, ErrInvalidPrice
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return domain.TeamPlayer{}, fmt.Errorf("s.teamRepo.GetByID -> %w", err)
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return domain.TeamPlayer{}, fmt.Errorf("s.playerRepo.GetByID -> %w", err)
	}

	if team.TournamentID != player.TournamentID {
		return domain.TeamPlayer{}, ErrTournamentMismatch
	}
	if player.Status != domain.PlayerAvailable {
		return domain.TeamPlayer{}, ErrPlayerNotAvailable
	}

	teamPlayer, err := s.repo.SellPlayer(ctx, teamID, playerID, price)
	if err != nil {
		return domain.TeamPlayer{}, fmt.Errorf("s.repo.SellPlayer -> %w", err)
	}

	teamPlayer.TournamentID = player.TournamentID
	teamPlayer.TeamName = team.Name
	teamPlayer.PlayerName = player.Name
	teamPlayer.PlayerPosition = player.Position
	teamPlayer.PlayerImageURL = player.ImageURL
	teamPlayer.PlayerIsIcon = player.IsIcon

	metrics.PlayersSold.Inc()
	metrics.PointsSpent.Add(float64(price))

	return teamPlayer, nil
}

// MarkUnsold passes an available player over and returns the updated row.
func (s *AuctionService) MarkUnsold(ctx context.Context, playerID string) (domain.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.playerRepo.GetByID -> %w", err)
	}

	if err := s.repo.MarkUnsold(ctx, playerID); err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.MarkUnsold -> %w", err)
	}

	player.Status = domain.PlayerUnsold

	metrics.PlayersUnsold.Inc()

	return player, nil
}
