package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auctionday/auction-api/internal/api/handler/v1/request"
	"github.com/auctionday/auction-api/internal/api/handler/v1/response"
	"github.com/auctionday/auction-api/internal/domain"
	"github.com/auctionday/auction-api/internal/service"
)

type PlayerService interface {
	CreatePlayer(ctx context.Context, player domain.Player) (domain.Player, error)
	ListPlayers(ctx context.Context, tournamentID string, status domain.PlayerStatus) ([]domain.Player, error)
	GetPlayer(ctx context.Context, id string) (domain.Player, error)
	UpdatePlayer(ctx context.Context, id string, update domain.PlayerUpdate) (domain.Player, error)
	DeletePlayer(ctx context.Context, id string) error
}

type PlayerHandler struct {
	svc PlayerService
}

func NewPlayerHandler(svc PlayerService) *PlayerHandler {
	return &PlayerHandler{
		svc: svc,
	}
}

// HandleListPlayers godoc
// @Summary      List players
// @Description  Returns players newest first, optionally filtered by tournament and status
// @Tags         players
// @Produce      json
// @Param        tournament_id  query     string  false  "Tournament ID"
// @Param        status         query     string  false  "Player status"  Enums(available, sold, unsold)
// @Success      200  {array}   domain.Player
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /players [get]
func (h *PlayerHandler) HandleListPlayers(ctx *gin.Context) {
	status := domain.PlayerStatus(ctx.Query("status"))
	if status != "" && !status.IsValid() {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid player status %q", status)))
		return
	}

	players, err := h.svc.ListPlayers(ctx.Request.Context(), ctx.Query("tournament_id"), status)
	if err != nil {
		err = fmt.Errorf("HandleListPlayers -> h.svc.ListPlayers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, players)
}

// HandleCreatePlayer godoc
// @Summary      Register a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreatePlayerRequest  true  "Player details"
// @Success      201    {object}  domain.Player
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /players [post]
func (h *PlayerHandler) HandleCreatePlayer(ctx *gin.Context) {
	var input request.CreatePlayerRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	player := domain.Player{
		TournamentID: input.TournamentID,
		Name:         input.Name,
		Position:     input.Position,
		BasePrice:    input.BasePrice,
		ImageURL:     input.ImageURL,
		IsIcon:       input.IsIcon,
	}

	created, err := h.svc.CreatePlayer(ctx.Request.Context(), player)
	if err != nil {
		if errors.Is(err, service.ErrTournamentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", input.TournamentID))
			return
		}
		if errors.Is(err, service.ErrMaxPlayersReached) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("HandleCreatePlayer -> h.svc.CreatePlayer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetPlayer godoc
// @Summary      Get a player
// @Tags         players
// @Produce      json
// @Param        playerID  path      string  true  "Player ID"
// @Success      200  {object}  domain.Player
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /players/{playerID} [get]
func (h *PlayerHandler) HandleGetPlayer(ctx *gin.Context) {
	id := ctx.Param("playerID")

	player, err := h.svc.GetPlayer(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("player", "ID", id))
			return
		}

		err = fmt.Errorf("HandleGetPlayer -> h.svc.GetPlayer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, player)
}

// HandleUpdatePlayer godoc
// @Summary      Update a player
// @Description  Applies a partial update; omitted fields are left untouched. An empty image_url clears the image.
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        playerID  path      string                       true  "Player ID"
// @Param        input     body      request.UpdatePlayerRequest  true  "Fields to update"
// @Success      200  {object}  domain.Player
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /players/{playerID} [patch]
func (h *PlayerHandler) HandleUpdatePlayer(ctx *gin.Context) {
	id := ctx.Param("playerID")

	var input request.UpdatePlayerRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	update := domain.PlayerUpdate{
		Name:      input.Name,
		Position:  input.Position,
		BasePrice: input.BasePrice,
		ImageURL:  input.ImageURL,
		IsIcon:    input.IsIcon,
	}
	if input.Status != nil {
		status := domain.PlayerStatus(*input.Status)
		update.Status = &status
	}

	updated, err := h.svc.UpdatePlayer(ctx.Request.Context(), id, update)
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("player", "ID", id))
			return
		}

		err = fmt.Errorf("HandleUpdatePlayer -> h.svc.UpdatePlayer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeletePlayer godoc
// @Summary      Delete a player
// @Description  Removes the player; a sold player's purchase record is deleted and the price refunded to the team
// @Tags         players
// @Produce      json
// @Param        playerID  path  string  true  "Player ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /players/{playerID} [delete]
func (h *PlayerHandler) HandleDeletePlayer(ctx *gin.Context) {
	id := ctx.Param("playerID")

	if err := h.svc.DeletePlayer(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("player", "ID", id))
			return
		}

		err = fmt.Errorf("HandleDeletePlayer -> h.svc.DeletePlayer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
