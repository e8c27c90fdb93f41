package pool_stats

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"delivery/pkg/logger"
)

type StatProvider interface {
	Stat() *pgxpool.Stat
}

// PoolStats периодически выгружает статистику пула соединений в Prometheus.
// Заодно служит простым индикатором утечек: acquired долго не возвращается
// к нулю - где-то не отпускают соединение.
type PoolStats struct {
	log      logger.Logger
	pool     StatProvider
	interval time.Duration
}

func NewPoolStats(log logger.Logger, pool StatProvider, interval time.Duration) *PoolStats {
	return &PoolStats{
		log:      log,
		pool:     pool,
		interval: interval,
	}
}

func (p *PoolStats) TTL() time.Duration {
	return p.interval
}

func (p *PoolStats) Do(ctx context.Context) error {
	stat := p.pool.Stat()

	PoolTotalConns.Set(float64(stat.TotalConns()))
	PoolIdleConns.Set(float64(stat.IdleConns()))
	PoolAcquiredConns.Set(float64(stat.AcquiredConns()))
	PoolMaxConns.Set(float64(stat.MaxConns()))

	return nil
}

func (p *PoolStats) Info() string {
	return "db pool stats"
}
