package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateTournamentRequest struct {
	Name          string `json:"name" binding:"required"`
	MaxPlayers    int    `json:"max_players" binding:"required,min=1"`
	MaxTeams      int    `json:"max_teams" binding:"required,min=1"`
	PointsPerTeam int    `json:"points_per_team" binding:"required,min=1"`
	Status        string `json:"status"`
}

func (req *CreateTournamentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.MaxPlayers, validation.Required, validation.Min(1)),
		validation.Field(&req.MaxTeams, validation.Required, validation.Min(1)),
		validation.Field(&req.PointsPerTeam, validation.Required, validation.Min(1)),
		validation.Field(&req.Status, validation.In("draft", "active", "completed")),
	)
}

type UpdateTournamentRequest struct {
	Name          *string `json:"name"`
	MaxPlayers    *int    `json:"max_players"`
	MaxTeams      *int    `json:"max_teams"`
	PointsPerTeam *int    `json:"points_per_team"`
	Status        *string `json:"status"`
}

func (req *UpdateTournamentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.MaxPlayers, validation.Min(1)),
		validation.Field(&req.MaxTeams, validation.Min(1)),
		validation.Field(&req.PointsPerTeam, validation.Min(1)),
		validation.Field(&req.Status, validation.In("draft", "active", "completed")),
	)
}
