package repository

import (
	"context"
	"fmt"

	"github.com/auctionday/auction-api/internal/domain"
	"github.com/auctionday/auction-api/internal/repository/dao"
)

var (
	ErrPlayerAlreadySold  = dao.ErrPlayerAlreadySold
	ErrPlayerNotAvailable = dao.ErrPlayerNotAvailable
	ErrInsufficientPoints = dao.ErrInsufficientPoints
)

type AuctionDAO interface {
	FindAll(ctx context.Context, tournamentID string) ([]dao.TeamPlayer, error)
	SellPlayer(ctx context.Context, teamPlayer dao.TeamPlayer) (dao.TeamPlayer, error)
	MarkUnsold(ctx context.Context, playerID string) error
}

type AuctionRepository struct {
	dao AuctionDAO
}

func NewAuctionRepository(dao AuctionDAO) *AuctionRepository {
	return &AuctionRepository{
		dao: dao,
	}
}

func (r *AuctionRepository) daoToDomain(tp dao.TeamPlayer) domain.TeamPlayer {
	return domain.TeamPlayer{
		ID:            tp.ID,
		TeamID:        tp.TeamID,
		PlayerID:      tp.PlayerID,
		PurchasePrice: tp.PurchasePrice,
		CreatedAt:     tp.CreatedAt,

		TournamentID:   tp.Team.TournamentID,
		TeamName:       tp.Team.Name,
		PlayerName:     tp.Player.Name,
		PlayerPosition: tp.Player.Position,
		PlayerImageURL: tp.Player.ImageURL,
		PlayerIsIcon:   tp.Player.IsIcon,
	}
}

func (r *AuctionRepository) List(ctx context.Context, tournamentID string) ([]domain.TeamPlayer, error) {
	rows, err := r.dao.FindAll(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	teamPlayers := make([]domain.TeamPlayer, len(rows))
	for i, row := range rows {
		teamPlayers[i] = r.daoToDomain(row)
	}

	return teamPlayers, nil
}

func (r *AuctionRepository) SellPlayer(ctx context.Context, teamID, playerID string, price int) (domain.TeamPlayer, error) {
	created, err := r.dao.SellPlayer(ctx, dao.TeamPlayer{
		TeamID:        teamID,
		PlayerID:      playerID,
		PurchasePrice: price,
	})
	if err != nil {
		return domain.TeamPlayer{}, fmt.Errorf("r.dao.SellPlayer -> %w", err)
	}

	return domain.TeamPlayer{
		ID:            created.ID,
		TeamID:        created.TeamID,
		PlayerID:      created.PlayerID,
		PurchasePrice: created.PurchasePrice,
		CreatedAt:     created.CreatedAt,
	}, nil
}

func (r *AuctionRepository) MarkUnsold(ctx context.Context, playerID string) error {
	if err := r.dao.MarkUnsold(ctx, playerID); err != nil {
		return fmt.Errorf("r.dao.MarkUnsold -> %w", err)
	}

	return nil
}
