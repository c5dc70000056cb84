package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/coffee/core/factory"
)

// SinkFactory builds an OrderSink from raw settings. reg is the registerer
// the caller wants metrics exposed on.
type SinkFactory func(conf map[string]any, reg prometheus.Registerer) (OrderSink, error)

var (
	sinkMu        sync.RWMutex
	sinkFactories = map[string]SinkFactory{
		"nop": func(map[string]any, prometheus.Registerer) (OrderSink, error) {
			return NopSink{}, nil
		},
		"prometheus": func(conf map[string]any, reg prometheus.Registerer) (OrderSink, error) {
			var c struct {
				Namespace string `json:"namespace"`
			}
			if err := factory.Decode(conf, &c); err != nil {
				return nil, fmt.Errorf("prometheus sink conf: %w", err)
			}
			return NewPromSink(c.Namespace, reg)
		},
	}
)

// RegisterOrderSink adds a sink factory identified by name.
func RegisterOrderSink(name string, f SinkFactory) error {
	if f == nil {
		return fmt.Errorf("sink factory nil for %s", name)
	}
	sinkMu.Lock()
	defer sinkMu.Unlock()
	if _, ok := sinkFactories[name]; ok {
		return fmt.Errorf("sink factory already registered for %s", name)
	}
	sinkFactories[name] = f
	return nil
}

// NewOrderSink creates an OrderSink from the provided configuration.
func NewOrderSink(cfgs []factory.ModuleConfig, reg prometheus.Registerer) (OrderSink, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	builders := factory.NewRegistry[OrderSink]()
	sinkMu.RLock()
	for name, f := range sinkFactories {
		f := f
		_ = builders.Register(name, func(conf map[string]any) (OrderSink, error) {
			return f(conf, reg)
		})
	}
	sinkMu.RUnlock()

	if len(cfgs) == 1 {
		return builders.Create(cfgs[0])
	}
	sinks := make([]OrderSink, len(cfgs))
	for i, c := range cfgs {
		s, err := builders.Create(c)
		if err != nil {
			return nil, err
		}
		sinks[i] = s
	}
	return NewMultiSink(sinks...), nil
}
