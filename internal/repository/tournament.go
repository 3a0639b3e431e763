package repository

import (
	"context"
	"fmt"

	"github.com/auctionday/auction-api/internal/domain"
	"github.com/auctionday/auction-api/internal/repository/dao"
)

var ErrTournamentNotFound = dao.ErrTournamentNotFound

type TournamentDAO interface {
	Insert(ctx context.Context, tournament dao.Tournament) (dao.Tournament, error)
	FindAll(ctx context.Context) ([]dao.Tournament, error)
	FindByID(ctx context.Context, id string) (dao.Tournament, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (dao.Tournament, error)
	Delete(ctx context.Context, id string) error
}

type TournamentRepository struct {
	dao TournamentDAO
}

func NewTournamentRepository(dao TournamentDAO) *TournamentRepository {
	return &TournamentRepository{
		dao: dao,
	}
}

func (r *TournamentRepository) domainToDao(t domain.Tournament) dao.Tournament {
	return dao.Tournament{
		ID:            t.ID,
		Name:          t.Name,
		MaxPlayers:    t.MaxPlayers,
		MaxTeams:      t.MaxTeams,
		PointsPerTeam: t.PointsPerTeam,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (r *TournamentRepository) daoToDomain(t dao.Tournament) domain.Tournament {
	return domain.Tournament{
		ID:            t.ID,
		Name:          t.Name,
		MaxPlayers:    t.MaxPlayers,
		MaxTeams:      t.MaxTeams,
		PointsPerTeam: t.PointsPerTeam,
		Status:        domain.TournamentStatus(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (r *TournamentRepository) Create(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(tournament))
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TournamentRepository) List(ctx context.Context) ([]domain.Tournament, error) {
	rows, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	tournaments := make([]domain.Tournament, len(rows))
	for i, row := range rows {
		tournaments[i] = r.daoToDomain(row)
	}

	return tournaments, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, id string) (domain.Tournament, error) {
	tournament, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(tournament), nil
}

func (r *TournamentRepository) Update(ctx context.Context, id string, update domain.TournamentUpdate) (domain.Tournament, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.MaxPlayers != nil {
		fields["max_players"] = *update.MaxPlayers
	}
	if update.MaxTeams != nil {
		fields["max_teams"] = *update.MaxTeams
	}
	if update.PointsPerTeam != nil {
		fields["points_per_team"] = *update.PointsPerTeam
	}
	if update.Status != nil {
		fields["status"] = string(*update.Status)
	}

	updated, err := r.dao.Update(ctx, id, fields)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TournamentRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
