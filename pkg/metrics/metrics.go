package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "restx_orders_placed_total",
		Help: "Orders successfully written at checkout.",
	})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "restx_order_status_transitions_total",
		Help: "Guarded order status transitions, by target status.",
	}, []string{"to"})

	BroadcastsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "restx_staff_broadcasts_total",
		Help: "Order-list pushes fanned out to staff rooms.",
	})

	ConnectedStaff = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "restx_staff_ws_clients",
		Help: "Currently connected staff WebSocket clients.",
	})
)
