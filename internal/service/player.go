package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/auctionday/auction-api/internal/domain"
	"github.com/auctionday/auction-api/internal/repository"
)

var (
	ErrPlayerNotFound    = repository.ErrPlayerNotFound
	ErrMaxPlayersReached = errors.New("tournament already has its maximum number of players")
)

type PlayerRepository interface {
	Create(ctx context.Context, player domain.Player) (domain.Player, error)
	List(ctx context.Context, tournamentID string, status domain.PlayerStatus) ([]domain.Player, error)
	GetByID(ctx context.Context, id string) (domain.Player, error)
	Update(ctx context.Context, id string, update domain.PlayerUpdate) (domain.Player, error)
	Delete(ctx context.Context, id string) error
}

type PlayerService struct {
	repo           PlayerRepository
	tournamentRepo TournamentRepository
}

func NewPlayerService(repo PlayerRepository, tournamentRepo TournamentRepository) *PlayerService {
	return &PlayerService{
		repo:           repo,
		tournamentRepo: tournamentRepo,
	}
}

func (s *PlayerService) CreatePlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, player.TournamentID)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.tournamentRepo.GetByID -> %w", err)
	}

	existing, err := s.repo.List(ctx, tournament.ID, "")
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.List -> %w", err)
	}
	if tournament.MaxPlayers > 0 && len(existing) >= tournament.MaxPlayers {
		return domain.Player{}, ErrMaxPlayersReached
	}

	if player.Status == "" {
		player.Status = domain.PlayerAvailable
	}

	created, err := s.repo.Create(ctx, player)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PlayerService) ListPlayers(ctx context.Context, tournamentID string, status domain.PlayerStatus) ([]domain.Player, error) {
	players, err := s.repo.List(ctx, tournamentID, status)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id string) (domain.Player, error) {
	player, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	return player, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, id string, update domain.PlayerUpdate) (domain.Player, error) {
	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
