package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auctionday/auction-api/internal/api/handler/v1/request"
	"github.com/auctionday/auction-api/internal/api/handler/v1/response"
	"github.com/auctionday/auction-api/internal/service"
	"github.com/auctionday/auction-api/internal/store"
)

// AuctionHandler fronts the settlement flow through the team-player
// store, so the live feed and the purchase snapshot stay in step with
// every sale.
type AuctionHandler struct {
	teamPlayers *store.TeamPlayerStore
}

func NewAuctionHandler(teamPlayers *store.TeamPlayerStore) *AuctionHandler {
	return &AuctionHandler{
		teamPlayers: teamPlayers,
	}
}

// HandleListTeamPlayers godoc
// @Summary      List purchase records
// @Description  Returns purchases newest first, hydrated with team and player info, optionally filtered by tournament
// @Tags         auction
// @Produce      json
// @Param        tournament_id  query     string  false  "Tournament ID"
// @Success      200  {array}   domain.TeamPlayer
// @Failure      500  {object}  response.Err
// @Router       /team-players [get]
func (h *AuctionHandler) HandleListTeamPlayers(ctx *gin.Context) {
	teamPlayers := h.teamPlayers.FetchAll(ctx.Request.Context(), ctx.Query("tournament_id"))
	if msg := h.teamPlayers.Err(); msg != "" {
		response.RenderErr(ctx, response.ErrInternalServerError(
			fmt.Errorf("HandleListTeamPlayers -> h.teamPlayers.FetchAll -> %v", msg)))
		return
	}

	ctx.JSON(http.StatusOK, teamPlayers)
}

// HandleSellPlayer godoc
// @Summary      Sell a player to a team
// @Description  Settles the sale atomically: creates the purchase record, marks the player sold, and debits the team's budget
// @Tags         auction
// @Accept       json
// @Produce      json
// @Param        input  body      request.SellPlayerRequest  true  "Sale details"
// @Success      201    {object}  domain.TeamPlayer
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      422    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /auction/sell [post]
func (h *AuctionHandler) HandleSellPlayer(ctx *gin.Context) {
	var input request.SellPlayerRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	teamPlayer, err := h.teamPlayers.Sell(ctx.Request.Context(), input.TeamID, input.PlayerID, input.Price)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.RenderErr(ctx, response.ErrNotFound("team", "ID", input.TeamID))
		case errors.Is(err, service.ErrPlayerNotFound):
			response.RenderErr(ctx, response.ErrNotFound("player", "ID", input.PlayerID))
		case errors.Is(err, service.ErrInvalidPrice):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrPlayerAlreadySold),
			errors.Is(err, service.ErrPlayerNotAvailable),
			errors.Is(err, service.ErrTournamentMismatch):
			response.RenderErr(ctx, response.ErrConflict(err))
		case errors.Is(err, service.ErrInsufficientPoints):
			response.RenderErr(ctx, response.ErrUnprocessable(err))
		default:
			err = fmt.Errorf("HandleSellPlayer -> h.teamPlayers.Sell -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, teamPlayer)
}

// HandleMarkUnsold godoc
// @Summary      Mark a player unsold
// @Description  Passes an available player over; no purchase record is created
// @Tags         auction
// @Produce      json
// @Param        playerID  path      string  true  "Player ID"
// @Success      200  {object}  domain.Player
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /auction/players/{playerID}/unsold [post]
func (h *AuctionHandler) HandleMarkUnsold(ctx *gin.Context) {
	id := ctx.Param("playerID")

	player, err := h.teamPlayers.MarkUnsold(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlayerNotFound):
			response.RenderErr(ctx, response.ErrNotFound("player", "ID", id))
		case errors.Is(err, service.ErrPlayerNotAvailable):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("HandleMarkUnsold -> h.teamPlayers.MarkUnsold -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, player)
}
