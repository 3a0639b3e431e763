package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/auctionday/auction-api/internal/domain"
	"github.com/auctionday/auction-api/internal/repository"
)

var (
	ErrTeamNotFound    = repository.ErrTeamNotFound
	ErrMaxTeamsReached = errors.New("tournament already has its maximum number of teams")
)

type TeamRepository interface {
	Create(ctx context.Context, team domain.Team) (domain.Team, error)
	List(ctx context.Context, tournamentID string) ([]domain.Team, error)
	GetByID(ctx context.Context, id string) (domain.Team, error)
	Update(ctx context.Context, id string, update domain.TeamUpdate) (domain.Team, error)
	Delete(ctx context.Context, id string) error
}

type TeamService struct {
	repo           TeamRepository
	tournamentRepo TournamentRepository
}

func NewTeamService(repo TeamRepository, tournamentRepo TournamentRepository) *TeamService {
	return &TeamService{
		repo:           repo,
		tournamentRepo: tournamentRepo,
	}
}

// CreateTeam registers a team in a tournament. The starting budget is the
// tournament's points_per_team; callers cannot pick their own.
func (s *TeamService) CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, team.TournamentID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.tournamentRepo.GetByID -> %w", err)
	}

	existing, err := s.repo.List(ctx, tournament.ID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.List -> %w", err)
	}
	if tournament.MaxTeams > 0 && len(existing) >= tournament.MaxTeams {
		return domain.Team{}, ErrMaxTeamsReached
	}

	team.RemainingPoints = tournament.PointsPerTeam

	created, err := s.repo.Create(ctx, team)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *TeamService) ListTeams(ctx context.Context, tournamentID string) ([]domain.Team, error) {
	teams, err := s.repo.List(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id string) (domain.Team, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	return team, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id string, update domain.TeamUpdate) (domain.Team, error) {
	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
