package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateTeamRequest struct {
	TournamentID string  `json:"tournament_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	OwnerName    string  `json:"owner_name" binding:"required"`
	LogoURL      *string `json:"logo_url"`
}

func (req *CreateTeamRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TournamentID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.OwnerName, validation.Required, validation.Length(2, 100)),
	)
}

type UpdateTeamRequest struct {
	Name      *string `json:"name"`
	OwnerName *string `json:"owner_name"`
	LogoURL   *string `json:"logo_url"`
}

func (req *UpdateTeamRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.OwnerName, validation.NilOrNotEmpty, validation.Length(2, 100)),
	)
}
