package domain

import "time"

type TournamentStatus string

const (
	TournamentDraft     TournamentStatus = "draft"
	TournamentActive    TournamentStatus = "active"
	TournamentCompleted TournamentStatus = "completed"
)

// Tournament is the root aggregate. Teams and players belong to exactly
// one tournament and every team starts with PointsPerTeam to spend.
type Tournament struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	MaxPlayers    int              `json:"max_players"`
	MaxTeams      int              `json:"max_teams"`
	PointsPerTeam int              `json:"points_per_team"`
	Status        TournamentStatus `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// TournamentUpdate carries a partial update; nil fields are left untouched.
type TournamentUpdate struct {
	Name          *string           `json:"name"`
	MaxPlayers    *int              `json:"max_players"`
	MaxTeams      *int              `json:"max_teams"`
	PointsPerTeam *int              `json:"points_per_team"`
	Status        *TournamentStatus `json:"status"`
}

func (s TournamentStatus) IsValid() bool {
	switch s {
	case TournamentDraft, TournamentActive, TournamentCompleted:
		return true
	}
	return false
}
