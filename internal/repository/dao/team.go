package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTeamNotFound = errors.New("team not found")

type Team struct {
	ID string `gorm:"type:uuid;primaryKey"`

	TournamentID string     `gorm:"type:uuid;not null;index"`
	Tournament   Tournament `gorm:"foreignKey:TournamentID"`

	Name            string `gorm:"not null"`
	OwnerName       string `gorm:"not null"`
	LogoURL         *string
	RemainingPoints int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type TeamDAO struct {
	db *gorm.DB
}

func NewTeamDAO(db *gorm.DB) *TeamDAO {
	return &TeamDAO{
		db: db,
	}
}

func (d *TeamDAO) Insert(ctx context.Context, team Team) (Team, error) {
	result := d.db.WithContext(ctx).Create(&team)
	if result.Error != nil {
		return Team{}, result.Error
	}

	return team, nil
}

// FindAll returns teams newest first, optionally scoped to one tournament.
func (d *TeamDAO) FindAll(ctx context.Context, tournamentID string) ([]Team, error) {
	var teams []Team

	query := d.db.WithContext(ctx).Order("created_at DESC")
	if tournamentID != "" {
		query = query.Where("tournament_id = ?", tournamentID)
	}

	result := query.Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}

func (d *TeamDAO) FindByID(ctx context.Context, id string) (Team, error) {
	var team Team

	result := d.db.WithContext(ctx).First(&team, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Team{}, ErrTeamNotFound
		}

		return Team{}, result.Error
	}

	return team, nil
}

func (d *TeamDAO) Update(ctx context.Context, id string, fields map[string]interface{}) (Team, error) {
	if len(fields) > 0 {
		result := d.db.WithContext(ctx).
			Model(&Team{}).
			Where("id = ?", id).
			Updates(fields)
		if result.Error != nil {
			return Team{}, result.Error
		}
		if result.RowsAffected == 0 {
			return Team{}, ErrTeamNotFound
		}
	}

	return d.FindByID(ctx, id)
}

// Delete removes the team together with its purchase rows and reverts the
// affected players to "available", so no row ever references a missing team.
func (d *TeamDAO) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var purchases []TeamPlayer
		if err := tx.Where("team_id = ?", id).Find(&purchases).Error; err != nil {
			return err
		}

		for _, purchase := range purchases {
			result := tx.Model(&Player{}).
				Where("id = ?", purchase.PlayerID).
				Update("status", PlayerStatusAvailable)
			if result.Error != nil {
				return result.Error
			}
		}

		if err := tx.Where("team_id = ?", id).Delete(&TeamPlayer{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Team{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTeamNotFound
		}

		return nil
	})
}
