package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var readyChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "hvmnd_client",
		Name:      "ready_checks_total",
		Help:      "Pings issued by WaitReady, by result.",
	},
	[]string{"result"},
)
