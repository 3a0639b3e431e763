package repository

import (
	"context"
	"fmt"

	"github.com/auctionday/auction-api/internal/domain"
	"github.com/auctionday/auction-api/internal/repository/dao"
)

var ErrPlayerNotFound = dao.ErrPlayerNotFound

type PlayerDAO interface {
	Insert(ctx context.Context, player dao.Player) (dao.Player, error)
	FindAll(ctx context.Context, tournamentID, status string) ([]dao.Player, error)
	FindByID(ctx context.Context, id string) (dao.Player, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (dao.Player, error)
	Delete(ctx context.Context, id string) error
}

type PlayerRepository struct {
	dao PlayerDAO
}

func NewPlayerRepository(dao PlayerDAO) *PlayerRepository {
	return &PlayerRepository{
		dao: dao,
	}
}

func (r *PlayerRepository) domainToDao(p domain.Player) dao.Player {
	return dao.Player{
		ID:           p.ID,
		TournamentID: p.TournamentID,
		Name:         p.Name,
		Position:     p.Position,
		BasePrice:    p.BasePrice,
		ImageURL:     p.ImageURL,
		IsIcon:       p.IsIcon,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *PlayerRepository) daoToDomain(p dao.Player) domain.Player {
	return domain.Player{
		ID:           p.ID,
		TournamentID: p.TournamentID,
		Name:         p.Name,
		Position:     p.Position,
		BasePrice:    p.BasePrice,
		ImageURL:     p.ImageURL,
		IsIcon:       p.IsIcon,
		Status:       domain.PlayerStatus(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *PlayerRepository) Create(ctx context.Context, player domain.Player) (domain.Player, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(player))
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PlayerRepository) List(ctx context.Context, tournamentID string, status domain.PlayerStatus) ([]domain.Player, error) {
	rows, err := r.dao.FindAll(ctx, tournamentID, string(status))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	players := make([]domain.Player, len(rows))
	for i, row := range rows {
		players[i] = r.daoToDomain(row)
	}

	return players, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (domain.Player, error) {
	player, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(player), nil
}

func (r *PlayerRepository) Update(ctx context.Context, id string, update domain.PlayerUpdate) (domain.Player, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Position != nil {
		fields["position"] = *update.Position
	}
	if update.BasePrice != nil {
		fields["base_price"] = *update.BasePrice
	}
	if update.ImageURL != nil {
		// An explicit empty string clears the column back to NULL.
		if *update.ImageURL == "" {
			fields["image_url"] = nil
		} else {
			fields["image_url"] = *update.ImageURL
		}
	}
	if update.IsIcon != nil {
		fields["is_icon"] = *update.IsIcon
	}
	if update.Status != nil {
		fields["status"] = string(*update.Status)
	}

	updated, err := r.dao.Update(ctx, id, fields)
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
