package domain

import "time"

// Team is a bidder. RemainingPoints starts at the tournament's
// points_per_team and only ever decreases through settlement; the
// decrement is conditional so it can never go negative.
type Team struct {
	ID              string    `json:"id"`
	TournamentID    string    `json:"tournament_id"`
	Name            string    `json:"name"`
	OwnerName       string    `json:"owner_name"`
	LogoURL         *string   `json:"logo_url"`
	RemainingPoints int       `json:"remaining_points"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type TeamUpdate struct {
	Name            *string `json:"name"`
	OwnerName       *string `json:"owner_name"`
	LogoURL         *string `json:"logo_url"`
	RemainingPoints *int    `json:"remaining_points"`
}
