package pool_stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_pool_total_conns",
		Help: "Total number of connections currently in the pool",
	})

	PoolIdleConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_pool_idle_conns",
		Help: "Number of idle connections in the pool",
	})

	PoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_pool_acquired_conns",
		Help: "Number of connections currently acquired from the pool",
	})

	PoolMaxConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_pool_max_conns",
		Help: "Maximum size of the pool",
	})
)
