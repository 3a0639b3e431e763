package domain

import "time"

type PlayerStatus string

const (
	PlayerAvailable PlayerStatus = "available"
	PlayerSold      PlayerStatus = "sold"
	PlayerUnsold    PlayerStatus = "unsold"
)

// Player is an auctionable entity. Status moves available -> sold through
// settlement or available -> unsold through a manual override; both
// transitions are guarded so a player cannot be sold twice.
type Player struct {
	ID           string       `json:"id"`
	TournamentID string       `json:"tournament_id"`
	Name         string       `json:"name"`
	Position     string       `json:"position"`
	BasePrice    int          `json:"base_price"`
	ImageURL     *string      `json:"image_url"`
	IsIcon       bool         `json:"is_icon"`
	Status       PlayerStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type PlayerUpdate struct {
	Name      *string       `json:"name"`
	Position  *string       `json:"position"`
	BasePrice *int          `json:"base_price"`
	ImageURL  *string       `json:"image_url"`
	IsIcon    *bool         `json:"is_icon"`
	Status    *PlayerStatus `json:"status"`
}

func (s PlayerStatus) IsValid() bool {
	switch s {
	case PlayerAvailable, PlayerSold, PlayerUnsold:
		return true
	}
	return false
}
