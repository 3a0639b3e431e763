package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlayersSold = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auction_players_sold_total",
		Help: "Number of settled sales.",
	})

	PlayersUnsold = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auction_players_unsold_total",
		Help: "Number of players passed over.",
	})

	PointsSpent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auction_points_spent_total",
		Help: "Budget points spent across all settled sales.",
	})
)
