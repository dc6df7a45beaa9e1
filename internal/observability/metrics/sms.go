package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SmsMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_messages_total",
			Help: "Total number of SMS delivery attempts by mode and result",
		},
		[]string{"mode", "result"},
	)

	SmsQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sms_dispatch_queue_depth",
			Help: "Messages waiting for a bulk dispatch worker",
		},
	)
)
