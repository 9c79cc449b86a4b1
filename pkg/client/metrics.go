package client

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_client_requests_total",
		Help: "Total SDK requests by method, path, and response status ('error' for transport failures).",
	}, []string{"method", "path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "campus_client_request_duration_seconds",
		Help:    "SDK request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// routeLabel collapses identifier segments (credential ids, student
// addresses, agent types, institution names) to placeholders so the path
// label stays low-cardinality. Identifier positions follow the platform's
// route shapes; numeric and 0x segments are collapsed wherever they appear.
func routeLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i != -1 {
		path = path[:i]
	}
	segs := strings.Split(path, "/")
	for i, s := range segs {
		if isNumeric(s) || strings.HasPrefix(s, "0x") {
			segs[i] = ":id"
		}
	}
	// segs[0] is empty for a leading slash.
	switch {
	case len(segs) > 2 && segs[1] == "agents":
		segs[2] = ":type"
	case len(segs) > 3 && segs[1] == "blockchain" && segs[2] == "students":
		segs[3] = ":id"
	case len(segs) > 3 && segs[1] == "governance" && segs[2] == "compliance":
		segs[3] = ":id"
	}
	return strings.Join(segs, "/")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
