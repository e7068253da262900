package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalProductsCreated = "total_products_created"
	NameTotalOrdersPlaced    = "total_orders_placed"
	NameTotalOrdersRejected  = "total_orders_rejected"
	NameTotalPostsPublished  = "total_posts_published"
)

var TotalProductsCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalProductsCreated,
		Help:      "Total products created",
		Namespace: Namespace,
	},
)

var TotalOrdersPlaced = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalOrdersPlaced,
		Help:      "Total orders placed",
		Namespace: Namespace,
	},
)

var TotalOrdersRejected = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalOrdersRejected,
		Help:      "Total orders rejected for insufficient stock",
		Namespace: Namespace,
	},
)

var TotalPostsPublished = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalPostsPublished,
		Help:      "Total posts published",
		Namespace: Namespace,
	},
)
