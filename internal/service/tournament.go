package service

import (
	"context"
	"fmt"

	"github.com/auctionday/auction-api/internal/domain"
	"github.com/auctionday/auction-api/internal/repository"
)

var ErrTournamentNotFound = repository.ErrTournamentNotFound

type TournamentRepository interface {
	Create(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error)
	List(ctx context.Context) ([]domain.Tournament, error)
	GetByID(ctx context.Context, id string) (domain.Tournament, error)
	Update(ctx context.Context, id string, update domain.TournamentUpdate) (domain.Tournament, error)
	Delete(ctx context.Context, id string) error
}

type TournamentService struct {
	repo TournamentRepository
}

func NewTournamentService(repo TournamentRepository) *TournamentService {
	return &TournamentService{
		repo: repo,
	}
}

func (s *TournamentService) CreateTournament(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error) {
	if tournament.Status == "" {
		tournament.Status = domain.TournamentDraft
	}

	created, err := s.repo.Create(ctx, tournament)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *TournamentService) ListTournaments(ctx context.Context) ([]domain.Tournament, error) {
	tournaments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return tournaments, nil
}

func (s *TournamentService) GetTournament(ctx context.Context, id string) (domain.Tournament, error) {
	tournament, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	return tournament, nil
}

func (s *TournamentService) UpdateTournament(ctx context.Context, id string, update domain.TournamentUpdate) (domain.Tournament, error) {
	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *TournamentService) DeleteTournament(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
