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

type TeamService interface {
	CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error)
	ListTeams(ctx context.Context, tournamentID string) ([]domain.Team, error)
	GetTeam(ctx context.Context, id string) (domain.Team, error)
	UpdateTeam(ctx context.Context, id string, update domain.TeamUpdate) (domain.Team, error)
	DeleteTeam(ctx context.Context, id string) error
}

type TeamHandler struct {
	svc TeamService
}

func NewTeamHandler(svc TeamService) *TeamHandler {
	return &TeamHandler{
		svc: svc,
	}
}

// HandleListTeams godoc
// @Summary      List teams
// @Description  Returns teams newest first, optionally filtered by tournament
// @Tags         teams
// @Produce      json
// @Param        tournament_id  query     string  false  "Tournament ID"
// @Success      200  {array}   domain.Team
// @Failure      500  {object}  response.Err
// @Router       /teams [get]
func (h *TeamHandler) HandleListTeams(ctx *gin.Context) {
	teams, err := h.svc.ListTeams(ctx.Request.Context(), ctx.Query("tournament_id"))
	if err != nil {
		err = fmt.Errorf("HandleListTeams -> h.svc.ListTeams -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, teams)
}

// HandleCreateTeam godoc
// @Summary      Register a team
// @Description  Creates a team in a tournament; its budget starts at the tournament's points_per_team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateTeamRequest  true  "Team details"
// @Success      201    {object}  domain.Team
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /teams [post]
func (h *TeamHandler) HandleCreateTeam(ctx *gin.Context) {
	var input request.CreateTeamRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	team := domain.Team{
		TournamentID: input.TournamentID,
		Name:         input.Name,
		OwnerName:    input.OwnerName,
		LogoURL:      input.LogoURL,
	}

	created, err := h.svc.CreateTeam(ctx.Request.Context(), team)
	if err != nil {
		if errors.Is(err, service.ErrTournamentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", input.TournamentID))
			return
		}
		if errors.Is(err, service.ErrMaxTeamsReached) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("HandleCreateTeam -> h.svc.CreateTeam -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetTeam godoc
// @Summary      Get a team
// @Tags         teams
// @Produce      json
// @Param        teamID  path      string  true  "Team ID"
// @Success      200  {object}  domain.Team
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teams/{teamID} [get]
func (h *TeamHandler) HandleGetTeam(ctx *gin.Context) {
	id := ctx.Param("teamID")

	team, err := h.svc.GetTeam(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("team", "ID", id))
			return
		}

		err = fmt.Errorf("HandleGetTeam -> h.svc.GetTeam -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, team)
}

// HandleUpdateTeam godoc
// @Summary      Update a team
// @Description  Applies a partial update; omitted fields are left untouched. An empty logo_url clears the logo.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamID  path      string                     true  "Team ID"
// @Param        input   body      request.UpdateTeamRequest  true  "Fields to update"
// @Success      200  {object}  domain.Team
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teams/{teamID} [patch]
func (h *TeamHandler) HandleUpdateTeam(ctx *gin.Context) {
	id := ctx.Param("teamID")

	var input request.UpdateTeamRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	update := domain.TeamUpdate{
		Name:      input.Name,
		OwnerName: input.OwnerName,
		LogoURL:   input.LogoURL,
	}

	updated, err := h.svc.UpdateTeam(ctx.Request.Context(), id, update)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("team", "ID", id))
			return
		}

		err = fmt.Errorf("HandleUpdateTeam -> h.svc.UpdateTeam -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteTeam godoc
// @Summary      Delete a team
// @Description  Removes the team, its purchase records, and reverts its players to available
// @Tags         teams
// @Produce      json
// @Param        teamID  path  string  true  "Team ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teams/{teamID} [delete]
func (h *TeamHandler) HandleDeleteTeam(ctx *gin.Context) {
	id := ctx.Param("teamID")

	if err := h.svc.DeleteTeam(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("team", "ID", id))
			return
		}

		err = fmt.Errorf("HandleDeleteTeam -> h.svc.DeleteTeam -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
