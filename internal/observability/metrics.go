// Package observability provides tracing and domain-level metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedRequests counts feed queries by feed kind (global, group,
	// profile, personal).
	FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_feed_requests_total",
		Help: "Total number of feed queries by feed kind",
	}, []string{"feed"})

	// ContentPolicyRejections counts comments rejected by the forbidden
	// word filter.
	ContentPolicyRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yatube_content_policy_rejections_total",
		Help: "Total number of comments rejected by the content policy",
	})

	// FollowMutations counts follow-graph mutations by operation and
	// whether they changed state (idempotent repeats are "noop").
	FollowMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_follow_mutations_total",
		Help: "Total number of follow graph mutations",
	}, []string{"operation", "outcome"})
)
