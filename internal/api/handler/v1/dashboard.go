package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auctionday/auction-api/internal/api/handler/v1/response"
	"github.com/auctionday/auction-api/internal/service"
	"github.com/auctionday/auction-api/internal/store"
)

// DashboardHandler composes the results view from the entity stores:
// one fetch per store, then pure derived views over the snapshots. The
// stores are built per request; a shared snapshot would let a concurrent
// dashboard for another tournament replace the rows between the fetch
// and the reads.
type DashboardHandler struct {
	svc        TournamentService
	teamSvc    store.TeamService
	playerSvc  store.PlayerService
	auctionSvc store.AuctionService
}

func NewDashboardHandler(svc TournamentService, teamSvc store.TeamService, playerSvc store.PlayerService, auctionSvc store.AuctionService) *DashboardHandler {
	return &DashboardHandler{
		svc:        svc,
		teamSvc:    teamSvc,
		playerSvc:  playerSvc,
		auctionSvc: auctionSvc,
	}
}

// HandleGetDashboard godoc
// @Summary      Tournament results
// @Description  Returns the tournament with every team's roster, points spent, and the players still available or unsold
// @Tags         tournaments
// @Produce      json
// @Param        tournamentID  path      string  true  "Tournament ID"
// @Success      200  {object}  response.DashboardResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tournaments/{tournamentID}/dashboard [get]
func (h *DashboardHandler) HandleGetDashboard(ctx *gin.Context) {
	id := ctx.Param("tournamentID")

	tournament, err := h.svc.GetTournament(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTournamentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", id))
			return
		}

		err = fmt.Errorf("HandleGetDashboard -> h.svc.GetTournament -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	teamStore := store.NewTeamStore(h.teamSvc)
	playerStore := store.NewPlayerStore(h.playerSvc)
	teamPlayerStore := store.NewTeamPlayerStore(h.auctionSvc, nil)

	teamStore.FetchAll(ctx.Request.Context(), id)
	playerStore.FetchAll(ctx.Request.Context(), id)
	teamPlayerStore.FetchAll(ctx.Request.Context(), id)
	for _, msg := range []string{teamStore.Err(), playerStore.Err(), teamPlayerStore.Err()} {
		if msg != "" {
			response.RenderErr(ctx, response.ErrInternalServerError(
				fmt.Errorf("HandleGetDashboard -> fetch -> %v", msg)))
			return
		}
	}

	teams := make([]response.DashboardTeam, 0, len(teamStore.ByTournament(id)))
	for _, team := range teamStore.ByTournament(id) {
		roster := teamPlayerStore.ByTeam(team.ID)

		spent := 0
		for _, purchase := range roster {
			spent += purchase.PurchasePrice
		}

		teams = append(teams, response.DashboardTeam{
			Team:        team,
			PointsSpent: spent,
			Roster:      roster,
		})
	}

	ctx.JSON(http.StatusOK, response.DashboardResponse{
		Tournament:       tournament,
		Teams:            teams,
		AvailablePlayers: playerStore.Available(id),
		UnsoldPlayers:    playerStore.Unsold(id),
	})
}
