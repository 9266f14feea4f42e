package weight_totals

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"shipment-service/internal/entities"
)

//go:generate mockgen -source=weight_totals.go -destination=./weight_totals_mocks_test.go -package=weight_totals_test

type Service interface {
	WeightTotals(ctx context.Context) ([]entities.UnitWeight, error)
}

type WeightTotals struct {
	service  Service
	interval time.Duration
	gauge    *prometheus.GaugeVec
}

func New(service Service, interval time.Duration) *WeightTotals {
	return NewWithGauge(service, interval, TransportPackWeightSum)
}

func NewWithGauge(service Service, interval time.Duration, gauge *prometheus.GaugeVec) *WeightTotals {
	return &WeightTotals{
		service:  service,
		interval: interval,
		gauge:    gauge,
	}
}

func (w *WeightTotals) TTL() time.Duration {
	return w.interval
}

func (w *WeightTotals) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	totals, err := w.service.WeightTotals(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("weight totals: %w", err)
	}

	// единицы, по которым упаковок больше нет, не должны висеть со старым значением
	w.gauge.Reset()
	for _, t := range totals {
		w.gauge.WithLabelValues(t.Unit.String()).Set(t.Weight)
	}
	return nil
}

func (w *WeightTotals) Info() string {
	return "transport pack weight totals"
}
