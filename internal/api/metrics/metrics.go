// Package metrics defines and registers all custom Prometheus metrics for
// the blog API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// PostsCreatedTotal counts newly created posts.
// Label:
//   - published: "true" or "false" depending on the initial publication state
var PostsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created, by initial publication state.",
	},
	[]string{"published"},
)

// PostViewsTotal counts single-post fetches that incremented a view counter.
var PostViewsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_views_total",
		Help:      "Total number of post detail reads counted as views.",
	},
)

// CommentsCreatedTotal counts newly created comments.
// Label:
//   - kind: "comment" (top-level) or "reply"
var CommentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created, by kind (comment/reply).",
	},
	[]string{"kind"},
)

// LikesToggledTotal counts like toggles.
// Labels:
//   - resource: "post" or "comment"
//   - action: "liked" or "unliked"
var LikesToggledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_toggled_total",
		Help:      "Total number of like toggles, by resource and direction.",
	},
	[]string{"resource", "action"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
