package service

import "github.com/prometheus/client_golang/prometheus"

// Outbound search instrumentation. Registered here rather than in the
// handler package because only the fetcher sees individual queries.
var (
	searchQueriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "youtools_search_queries_total",
		Help: "Total outbound competitor search queries issued.",
	})
	searchFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "youtools_search_failures_total",
		Help: "Total outbound competitor search queries that failed.",
	})
)

func init() {
	prometheus.MustRegister(searchQueriesTotal, searchFailuresTotal)
}
