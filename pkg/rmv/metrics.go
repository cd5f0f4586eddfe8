package rmv

import "github.com/prometheus/client_golang/prometheus"

var (
	requestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rmv_request_count",
		Help: "Number of requests sent to an RMV endpoint",
	}, []string{"endpoint"})
	errorCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rmv_error_count",
		Help: "Number of failed requests per RMV endpoint",
	}, []string{"endpoint"})
)

func init() {
	prometheus.MustRegister(requestCount, errorCount)
}
