package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SellPlayerRequest struct {
	TeamID   string `json:"team_id" binding:"required"`
	PlayerID string `json:"player_id" binding:"required"`
	Price    int    `json:"price" binding:"required,min=1"`
}

func (req *SellPlayerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TeamID, validation.Required),
		validation.Field(&req.PlayerID, validation.Required),
		validation.Field(&req.Price, validation.Required, validation.Min(1)),
	)
}
