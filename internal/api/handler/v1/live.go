package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"nhooyr.io/websocket"

	"github.com/auctionday/auction-api/internal/api/handler/v1/response"
	"github.com/auctionday/auction-api/internal/live"
	"github.com/auctionday/auction-api/internal/service"
)

type LiveHandler struct {
	svc TournamentService
	hub *live.Hub
}

func NewLiveHandler(svc TournamentService, hub *live.Hub) *LiveHandler {
	return &LiveHandler{
		svc: svc,
		hub: hub,
	}
}

// HandleLiveFeed godoc
// @Summary      Live auction feed
// @Description  Upgrades to a websocket and streams settlement events for one tournament
// @Tags         auction
// @Param        tournamentID  path  string  true  "Tournament ID"
// @Success      101
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /auction/{tournamentID}/live [get]
func (h *LiveHandler) HandleLiveFeed(ctx *gin.Context) {
	id := ctx.Param("tournamentID")

	if _, err := h.svc.GetTournament(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTournamentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tournament", "ID", id))
			return
		}

		err = fmt.Errorf("HandleLiveFeed -> h.svc.GetTournament -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	conn, err := websocket.Accept(ctx.Writer, ctx.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusInternalError, "closed")

	events, cancel := h.hub.Subscribe(id)
	defer cancel()

	// The feed is write-only. CloseRead keeps processing the client's
	// control frames and cancels the context when the client goes away,
	// so a closed tab releases the subscription immediately.
	readCtx := conn.CloseRead(ctx.Request.Context())

	for {
		select {
		case <-readCtx.Done():
			conn.Close(websocket.StatusNormalClosure, "bye")
			return

		case event := <-events:
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}

			writeCtx, cancelWrite := context.WithTimeout(readCtx, 5*time.Second)
			err = conn.Write(writeCtx, websocket.MessageText, payload)
			cancelWrite()
			if err != nil {
				return
			}
		}
	}
}
