package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "System memory usage in bytes",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_memory_usage_bytes",
			Help: "Application memory usage in bytes (Go heap allocation)",
		},
	)
)

const (
	systemCollectInterval = 5 * time.Second
	cpuSampleWindow       = time.Second
)

// StartSystemMetricsCollector снимает метрики хоста до отмены ctx.
func StartSystemMetricsCollector(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(systemCollectInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics(ctx)
			}
		}
	}()
}

func collectSystemMetrics(ctx context.Context) {
	if cpuPercent, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false); err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	if vmStat, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.Alloc))
}

type poolStater interface {
	Stat() *pgxpool.Stat
}

// RegisterPoolMetrics состояние пула считается в момент скрапа. Ожидание соединения
// первым показывает, что проводки упираются в пул, а не в блокировки.
func RegisterPoolMetrics(registerer prometheus.Registerer, pool poolStater) {
	gauge := func(name, help string, value func(s *pgxpool.Stat) float64) prometheus.Collector {
		return prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{Name: "settlement_db_pool_" + name, Help: help},
			func() float64 { return value(pool.Stat()) },
		)
	}

	registerer.MustRegister(
		gauge("acquired_conns", "Connections currently in use",
			func(s *pgxpool.Stat) float64 { return float64(s.AcquiredConns()) }),
		gauge("idle_conns", "Idle connections",
			func(s *pgxpool.Stat) float64 { return float64(s.IdleConns()) }),
		gauge("max_conns", "Pool size limit",
			func(s *pgxpool.Stat) float64 { return float64(s.MaxConns()) }),
		gauge("empty_acquires", "Acquires that had to wait for a connection",
			func(s *pgxpool.Stat) float64 { return float64(s.EmptyAcquireCount()) }),
	)
}
