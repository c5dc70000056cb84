package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PromSink counts orders in a Prometheus counter labelled by drink and by
// whether the request matched the menu.
type PromSink struct {
	orders *prometheus.CounterVec
}

// NewPromSink registers the order counter on reg under the optional namespace.
// If reg is nil, the default registerer is used. If the collector is already
// registered, the existing one is reused.
func NewPromSink(namespace string, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "coffee_orders_total",
		Help:      "Total number of coffee orders handled by the machine",
	}, []string{"kind", "known"})

	if err := reg.Register(orders); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		orders = existing
	}
	return &PromSink{orders: orders}, nil
}

// RecordOrder increments the counter for the event's drink.
func (s *PromSink) RecordOrder(ev OrderEvent) error {
	s.orders.WithLabelValues(ev.Kind.String(), strconv.FormatBool(ev.Known)).Inc()
	return nil
}
