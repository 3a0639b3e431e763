package response

import (
	"github.com/auctionday/auction-api/internal/domain"
)

// DashboardTeam is a team plus its auction outcome.
type DashboardTeam struct {
	domain.Team
	PointsSpent int                 `json:"points_spent"`
	Roster      []domain.TeamPlayer `json:"roster"`
}

// DashboardResponse backs the tournament results view.
type DashboardResponse struct {
	Tournament       domain.Tournament `json:"tournament"`
	Teams            []DashboardTeam   `json:"teams"`
	AvailablePlayers []domain.Player   `json:"available_players"`
	UnsoldPlayers    []domain.Player   `json:"unsold_players"`
}
