package repository

import (
	"context"
	"fmt"

	"github.com/auctionday/auction-api/internal/domain"
	"github.com/auctionday/auction-api/internal/repository/dao"
)

var ErrTeamNotFound = dao.ErrTeamNotFound

type TeamDAO interface {
	Insert(ctx context.Context, team dao.Team) (dao.Team, error)
	FindAll(ctx context.Context, tournamentID string) ([]dao.Team, error)
	FindByID(ctx context.Context, id string) (dao.Team, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (dao.Team, error)
	Delete(ctx context.Context, id string) error
}

type TeamRepository struct {
	dao TeamDAO
}

func NewTeamRepository(dao TeamDAO) *TeamRepository {
	return &TeamRepository{
		dao: dao,
	}
}

func (r *TeamRepository) domainToDao(t domain.Team) dao.Team {
	return dao.Team{
		ID:              t.ID,
		TournamentID:    t.TournamentID,
		Name:            t.Name,
		OwnerName:       t.OwnerName,
		LogoURL:         t.LogoURL,
		RemainingPoints: t.RemainingPoints,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (r *TeamRepository) daoToDomain(t dao.Team) domain.Team {
	return domain.Team{
		ID:              t.ID,
		TournamentID:    t.TournamentID,
		Name:            t.Name,
		OwnerName:       t.OwnerName,
		LogoURL:         t.LogoURL,
		RemainingPoints: t.RemainingPoints,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (r *TeamRepository) Create(ctx context.Context, team domain.Team) (domain.Team, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(team))
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TeamRepository) List(ctx context.Context, tournamentID string) ([]domain.Team, error) {
	rows, err := r.dao.FindAll(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	teams := make([]domain.Team, len(rows))
	for i, row := range rows {
		teams[i] = r.daoToDomain(row)
	}

	return teams, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (domain.Team, error) {
	team, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(team), nil
}

func (r *TeamRepository) Update(ctx context.Context, id string, update domain.TeamUpdate) (domain.Team, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.OwnerName != nil {
		fields["owner_name"] = *update.OwnerName
	}
	if update.LogoURL != nil {
		// An explicit empty string clears the column back to NULL.
		if *update.LogoURL == "" {
			fields["logo_url"] = nil
		} else {
			fields["logo_url"] = *update.LogoURL
		}
	}
	if update.RemainingPoints != nil {
		fields["remaining_points"] = *update.RemainingPoints
	}

	updated, err := r.dao.Update(ctx, id, fields)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
