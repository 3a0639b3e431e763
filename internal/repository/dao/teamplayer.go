package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrPlayerAlreadySold  = errors.New("player already sold")
	ErrPlayerNotAvailable = errors.New("player is not available")
	ErrInsufficientPoints = errors.New("team has insufficient points")
)

type TeamPlayer struct {
	ID string `gorm:"type:uuid;primaryKey"`

	TeamID string `gorm:"type:uuid;not null;index"`
	Team   Team   `gorm:"foreignKey:TeamID"`

	// One purchase per player, enforced by the database.
	PlayerID string `gorm:"type:uuid;not null;uniqueIndex"`
	Player   Player `gorm:"foreignKey:PlayerID"`

	PurchasePrice int `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

func (tp *TeamPlayer) BeforeCreate(tx *gorm.DB) error {
	if tp.ID == "" {
		tp.ID = uuid.NewString()
	}
	return nil
}

type AuctionDAO struct {
	db *gorm.DB
}

func NewAuctionDAO(db *gorm.DB) *AuctionDAO {
	return &AuctionDAO{
		db: db,
	}
}

// FindAll returns purchase rows newest first with the owning team and
// player preloaded, optionally scoped to the teams of one tournament.
func (d *AuctionDAO) FindAll(ctx context.Context, tournamentID string) ([]TeamPlayer, error) {
	var teamPlayers []TeamPlayer

	query := d.db.WithContext(ctx).
		Preload("Team").
		Preload("Player").
		Order("team_players.created_at DESC")
	if tournamentID != "" {
		query = query.
			Joins("JOIN teams ON teams.id = team_players.team_id").
			Where("teams.tournament_id = ?", tournamentID)
	}

	result := query.Find(&teamPlayers)
	if result.Error != nil {
		return nil, result.Error
	}

	return teamPlayers, nil
}

// SellPlayer settles a sale as one transaction: insert the purchase row,
// flip the player to sold, debit the team. Either all three commit or none
// do. The player flip is guarded on status and the debit is guarded on
// remaining_points >= price, so a raced second sale or an overdraw rolls
// the whole settlement back instead of losing an update.
func (d *AuctionDAO) SellPlayer(ctx context.Context, teamPlayer TeamPlayer) (TeamPlayer, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&teamPlayer).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				if pgErr.Code == pgerrcode.UniqueViolation &&
					strings.Contains(pgErr.ConstraintName, "player_id") {
					return ErrPlayerAlreadySold
				}
				if pgErr.Code == pgerrcode.ForeignKeyViolation {
					if strings.HasSuffix(pgErr.ConstraintName, "_player") {
						return ErrPlayerNotFound
					}
					return ErrTeamNotFound
				}
			}

			return err
		}

		result := tx.Model(&Player{}).
			Where("id = ? AND status = ?", teamPlayer.PlayerID, PlayerStatusAvailable).
			Update("status", PlayerStatusSold)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPlayerNotAvailable
		}

		result = tx.Model(&Team{}).
			Where("id = ? AND remaining_points >= ?", teamPlayer.TeamID, teamPlayer.PurchasePrice).
			Update("remaining_points", gorm.Expr("remaining_points - ?", teamPlayer.PurchasePrice))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientPoints
		}

		return nil
	})
	if err != nil {
		return TeamPlayer{}, err
	}

	return teamPlayer, nil
}

// MarkUnsold flips an available player to unsold. Anything else (already
// sold, already unsold, missing) is rejected.
func (d *AuctionDAO) MarkUnsold(ctx context.Context, playerID string) error {
	result := d.db.WithContext(ctx).
		Model(&Player{}).
		Where("id = ? AND status = ?", playerID, PlayerStatusAvailable).
		Update("status", PlayerStatusUnsold)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlayerNotAvailable
	}

	return nil
}
