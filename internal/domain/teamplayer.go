package domain

import "time"

// TeamPlayer is the purchase record created by settlement: this team
// bought this player at this price. Immutable once created, and a player
// appears in at most one purchase.
type TeamPlayer struct {
	ID            string    `json:"id"`
	TeamID        string    `json:"team_id"`
	PlayerID      string    `json:"player_id"`
	PurchasePrice int       `json:"purchase_price"`
	CreatedAt     time.Time `json:"created_at"`

	// Hydrated from the owning rows.
	TournamentID   string  `json:"tournament_id,omitempty"`
	TeamName       string  `json:"team_name,omitempty"`
	PlayerName     string  `json:"player_name,omitempty"`
	PlayerPosition string  `json:"player_position,omitempty"`
	PlayerImageURL *string `json:"player_image_url,omitempty"`
	PlayerIsIcon   bool    `json:"player_is_icon,omitempty"`
}
