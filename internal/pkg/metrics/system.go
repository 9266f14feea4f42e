package metrics

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const defaultCollectInterval = 5 * time.Second

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

// SystemCollector фоновая задача, снимающая CPU и память хоста и процесса.
type SystemCollector struct {
	interval time.Duration
}

func NewSystemCollector() *SystemCollector {
	return &SystemCollector{interval: defaultCollectInterval}
}

func (s *SystemCollector) TTL() time.Duration {
	return s.interval
}

// Do с нулевым интервалом cpu.Percent считает загрузку с прошлого вызова
// и не блокируется.
func (s *SystemCollector) Do(ctx context.Context) error {
	cpuPercent, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return fmt.Errorf("cpu percent: %w", err)
	}
	if len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return fmt.Errorf("virtual memory: %w", err)
	}
	SystemMemoryUsage.Set(float64(vmStat.Used))

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.Alloc))

	return nil
}

func (s *SystemCollector) Info() string {
	return "system metrics"
}
