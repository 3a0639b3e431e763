package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPlayerNotFound = errors.New("player not found")

const (
	PlayerStatusAvailable = "available"
	PlayerStatusSold      = "sold"
	PlayerStatusUnsold    = "unsold"
)

type Player struct {
	ID string `gorm:"type:uuid;primaryKey"`

	TournamentID string     `gorm:"type:uuid;not null;index"`
	Tournament   Tournament `gorm:"foreignKey:TournamentID"`

	Name      string `gorm:"not null"`
	Position  string `gorm:"not null"`
	BasePrice int    `gorm:"not null"`
	ImageURL  *string
	IsIcon    bool   `gorm:"not null;default:false"`
	Status    string `gorm:"not null;default:'available'"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type PlayerDAO struct {
	db *gorm.DB
}

func NewPlayerDAO(db *gorm.DB) *PlayerDAO {
	return &PlayerDAO{
		db: db,
	}
}

func (d *PlayerDAO) Insert(ctx context.Context, player Player) (Player, error) {
	result := d.db.WithContext(ctx).Create(&player)
	if result.Error != nil {
		return Player{}, result.Error
	}

	return player, nil
}

// FindAll returns players newest first, optionally scoped by tournament
// and/or status.
func (d *PlayerDAO) FindAll(ctx context.Context, tournamentID, status string) ([]Player, error) {
	var players []Player

	query := d.db.WithContext(ctx).Order("created_at DESC")
	if tournamentID != "" {
		query = query.Where("tournament_id = ?", tournamentID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	result := query.Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (d *PlayerDAO) FindByID(ctx context.Context, id string) (Player, error) {
	var player Player

	result := d.db.WithContext(ctx).First(&player, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Player{}, ErrPlayerNotFound
		}

		return Player{}, result.Error
	}

	return player, nil
}

func (d *PlayerDAO) Update(ctx context.Context, id string, fields map[string]interface{}) (Player, error) {
	if len(fields) > 0 {
		result := d.db.WithContext(ctx).
			Model(&Player{}).
			Where("id = ?", id).
			Updates(fields)
		if result.Error != nil {
			return Player{}, result.Error
		}
		if result.RowsAffected == 0 {
			return Player{}, ErrPlayerNotFound
		}
	}

	return d.FindByID(ctx, id)
}

// Delete removes the player and, if it had been sold, deletes the purchase
// row and refunds the purchase price to the buying team.
func (d *PlayerDAO) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var purchases []TeamPlayer
		if err := tx.Where("player_id = ?", id).Find(&purchases).Error; err != nil {
			return err
		}

		for _, purchase := range purchases {
			result := tx.Model(&Team{}).
				Where("id = ?", purchase.TeamID).
				Update("remaining_points", gorm.Expr("remaining_points + ?", purchase.PurchasePrice))
			if result.Error != nil {
				return result.Error
			}
		}

		if err := tx.Where("player_id = ?", id).Delete(&TeamPlayer{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Player{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPlayerNotFound
		}

		return nil
	})
}
