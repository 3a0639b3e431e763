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

type TournamentService interface {
	CreateTournament(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error)
	ListTournaments(ctx context.Context) ([]domain.Tournament, error)
	GetTournament(ctx context.Context, id string) (domain.Tournament, error)
	UpdateTournament(ctx context.Context, id string, update domain.TournamentUpdate) (domain.Tournament, error)
	DeleteTournament(ctx context.Context, id string) error
}

type TournamentHandler struct {
	svc TournamentService
}

func NewTournamentHandler(svc TournamentService) *TournamentHandler {
	return &TournamentHandler{
		svc: svc,
	}
}

// HandleListTournaments godoc
// @Summary      List tournaments
// @Description  Returns all tournaments, newest first
// @Tags         tournaments
// @Produce      json
// @Success      200  {array}   domain.Tournament
// @Failure      500  {object}  response.Err
// @Router       /tournaments [get]
func (h *TournamentHandler) HandleListTournaments(ctx *gin.Context) {
	tournaments, err := h.svc.ListTournaments(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListTournaments -> h.svc.ListTournaments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tournaments)
}

// HandleCreateTournament godoc
// @Summary      Create a tournament
// @Tags         tournaments
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateTournamentRequest  true  "Tournament details"
// @Success      201    {object}  domain.Tournament
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /tournaments [post]
func (h *TournamentHandler) HandleCreateTournament(ctx *gin.Context) {
	var input request.CreateTournamentRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tournament := domain.Tournament{
		Name:          input.Name,
		MaxPlayers:    input.MaxPlayers,
		MaxTeams:      input.MaxTeams,
		PointsPerTeam: input.PointsPerTeam,
		Status:        domain.TournamentStatus(input.Status),
	}

	created, err := h.svc.CreateTournament(ctx.Request.Context(), tournament)
	if err != nil {
		err = fmt.Errorf("HandleCreateTournament -> h.svc.CreateTournament -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetTournament godoc
// @Summary      Get a tournament
// @Tags         tournaments
// @Produce      json
// @Param        tournamentID  path      string  true  "Tournament ID"
// @Success      200  {object}  domain.Tournament
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tournaments/{tournamentID} [get]
func (h *TournamentHandler) HandleGetTournament(ctx *gin.Context) {
	id := ctx.Param("tournamentID")

	tournament, err := h.svc.GetTournament(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTournamentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", id))
			return
		}

		err = fmt.Errorf("HandleGetTournament -> h.svc.GetTournament -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tournament)
}

// HandleUpdateTournament godoc
// @Summary      Update a tournament
// @Description  Applies a partial update; omitted fields are left untouched
// @Tags         tournaments
// @Accept       json
// @Produce      json
// @Param        tournamentID  path      string                           true  "Tournament ID"
// @Param        input         body      request.UpdateTournamentRequest  true  "Fields to update"
// @Success      200  {object}  domain.Tournament
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tournaments/{tournamentID} [patch]
func (h *TournamentHandler) HandleUpdateTournament(ctx *gin.Context) {
	id := ctx.Param("tournamentID")

	var input request.UpdateTournamentRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	update := domain.TournamentUpdate{
		Name:          input.Name,
		MaxPlayers:    input.MaxPlayers,
		MaxTeams:      input.MaxTeams,
		PointsPerTeam: input.PointsPerTeam,
	}
	if input.Status != nil {
		status := domain.TournamentStatus(*input.Status)
		update.Status = &status
	}

	updated, err := h.svc.UpdateTournament(ctx.Request.Context(), id, update)
	if err != nil {
		if errors.Is(err, service.ErrTournamentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", id))
			return
		}

		err = fmt.Errorf("HandleUpdateTournament -> h.svc.UpdateTournament -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteTournament godoc
// @Summary      Delete a tournament
// @Description  Removes the tournament and everything in it: teams, players and purchase records
// @Tags         tournaments
// @Produce      json
// @Param        tournamentID  path  string  true  "Tournament ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tournaments/{tournamentID} [delete]
func (h *TournamentHandler) HandleDeleteTournament(ctx *gin.Context) {
	id := ctx.Param("tournamentID")

	if err := h.svc.DeleteTournament(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTournamentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", id))
			return
		}

		err = fmt.Errorf("HandleDeleteTournament -> h.svc.DeleteTournament -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
