// Package live fans settlement events out to the websocket clients
// watching a tournament's auction screen.
package live

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/auctionday/auction-api/internal/domain"
)

type EventType string

const (
	EventPlayerSold   EventType = "player_sold"
	EventPlayerUnsold EventType = "player_unsold"
)

type Event struct {
	Type          EventType `json:"type"`
	TournamentID  string    `json:"tournament_id"`
	PlayerID      string    `json:"player_id"`
	PlayerName    string    `json:"player_name,omitempty"`
	TeamID        string    `json:"team_id,omitempty"`
	TeamName      string    `json:"team_name,omitempty"`
	PurchasePrice int       `json:"purchase_price,omitempty"`
	At            time.Time `json:"at"`
}

// Hub keeps one room per tournament. Subscribers get a buffered channel;
// a subscriber that cannot keep up has events dropped rather than
// blocking settlement.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a listener for one tournament's events. The caller
// must call the returned cancel func when done.
func (h *Hub) Subscribe(tournamentID string) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	h.mu.Lock()
	room, ok := h.rooms[tournamentID]
	if !ok {
		room = make(map[chan Event]struct{})
		h.rooms[tournamentID] = room
	}
	room[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if room, ok := h.rooms[tournamentID]; ok {
			delete(room, ch)
			if len(room) == 0 {
				delete(h.rooms, tournamentID)
			}
		}
		h.mu.Unlock()
	}

	return ch, cancel
}

func (h *Hub) broadcast(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.rooms[event.TournamentID] {
		select {
		case ch <- event:
		default:
			zap.L().Warn("dropping live event for slow subscriber",
				zap.String("tournament_id", event.TournamentID),
				zap.String("type", string(event.Type)))
		}
	}
}

// NotifySale implements store.SaleNotifier.
func (h *Hub) NotifySale(teamPlayer domain.TeamPlayer) {
	h.broadcast(Event{
		Type:          EventPlayerSold,
		TournamentID:  teamPlayer.TournamentID,
		PlayerID:      teamPlayer.PlayerID,
		PlayerName:    teamPlayer.PlayerName,
		TeamID:        teamPlayer.TeamID,
		TeamName:      teamPlayer.TeamName,
		PurchasePrice: teamPlayer.PurchasePrice,
		At:            time.Now().UTC(),
	})
}

// NotifyUnsold implements store.SaleNotifier.
func (h *Hub) NotifyUnsold(player domain.Player) {
	h.broadcast(Event{
		Type:         EventPlayerUnsold,
		TournamentID: player.TournamentID,
		PlayerID:     player.ID,
		PlayerName:   player.Name,
		At:           time.Now().UTC(),
	})
}
