package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTournamentNotFound = errors.New("tournament not found")

type Tournament struct {
	ID string `gorm:"type:uuid;primaryKey"`

	Name          string `gorm:"not null"`
	MaxPlayers    int    `gorm:"not null"`
	MaxTeams      int    `gorm:"not null"`
	PointsPerTeam int    `gorm:"not null"`
	Status        string `gorm:"not null;default:'draft'"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (t *Tournament) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type TournamentDAO struct {
	db *gorm.DB
}

func NewTournamentDAO(db *gorm.DB) *TournamentDAO {
	return &TournamentDAO{
		db: db,
	}
}

func (d *TournamentDAO) Insert(ctx context.Context, tournament Tournament) (Tournament, error) {
	result := d.db.WithContext(ctx).Create(&tournament)
	if result.Error != nil {
		return Tournament{}, result.Error
	}

	return tournament, nil
}

func (d *TournamentDAO) FindAll(ctx context.Context) ([]Tournament, error) {
	var tournaments []Tournament

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&tournaments)
	if result.Error != nil {
		return nil, result.Error
	}

	return tournaments, nil
}

func (d *TournamentDAO) FindByID(ctx context.Context, id string) (Tournament, error) {
	var tournament Tournament

	result := d.db.WithContext(ctx).First(&tournament, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Tournament{}, ErrTournamentNotFound
		}

		return Tournament{}, result.Error
	}

	return tournament, nil
}

func (d *TournamentDAO) Update(ctx context.Context, id string, fields map[string]interface{}) (Tournament, error) {
	if len(fields) > 0 {
		result := d.db.WithContext(ctx).
			Model(&Tournament{}).
			Where("id = ?", id).
			Updates(fields)
		if result.Error != nil {
			return Tournament{}, result.Error
		}
		if result.RowsAffected == 0 {
			return Tournament{}, ErrTournamentNotFound
		}
	}

	return d.FindByID(ctx, id)
}

// Delete cascades: the tournament's purchase rows, players and teams go
// with it, in one transaction.
func (d *TournamentDAO) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(
			`DELETE FROM team_players
			 WHERE team_id IN (SELECT id FROM teams WHERE tournament_id = ?)`,
			id,
		)
		if result.Error != nil {
			return result.Error
		}

		if err := tx.Where("tournament_id = ?", id).Delete(&Player{}).Error; err != nil {
			return err
		}

		if err := tx.Where("tournament_id = ?", id).Delete(&Team{}).Error; err != nil {
			return err
		}

		result = tx.Delete(&Tournament{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTournamentNotFound
		}

		return nil
	})
}
