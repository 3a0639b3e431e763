package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreatePlayerRequest struct {
	TournamentID string  `json:"tournament_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Position     string  `json:"position" binding:"required"`
	BasePrice    int     `json:"base_price" binding:"required,min=1"`
	ImageURL     *string `json:"image_url"`
	IsIcon       bool    `json:"is_icon"`
}

func (req *CreatePlayerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TournamentID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Position, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.BasePrice, validation.Required, validation.Min(1)),
	)
}

type UpdatePlayerRequest struct {
	Name      *string `json:"name"`
	Position  *string `json:"position"`
	BasePrice *int    `json:"base_price"`
	ImageURL  *string `json:"image_url"`
	IsIcon    *bool   `json:"is_icon"`
	Status    *string `json:"status"`
}

func (req *UpdatePlayerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.Position, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&req.BasePrice, validation.Min(1)),
		validation.Field(&req.Status, validation.In("available", "sold", "unsold")),
	)
}
