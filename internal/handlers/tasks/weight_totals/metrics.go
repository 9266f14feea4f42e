package weight_totals

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TransportPackWeightSum = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "transport_pack_weight_sum",
		Help: "Sum of stored transport pack weights grouped by the unit they were recorded in",
	},
	[]string{"unit"},
)
