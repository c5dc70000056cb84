package metrics

import (
	"time"

	"github.com/kilianp07/coffee/core/coffee"
	"github.com/kilianp07/coffee/core/factory"
)

// Config defines settings for order sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
}

// OrderEvent describes one request handled by the coffee machine.
type OrderEvent struct {
	ID        string
	Requested string
	Kind      coffee.Kind
	Known     bool
	Message   string
	Time      time.Time
}

// OrderSink receives order events.
type OrderSink interface {
	RecordOrder(OrderEvent) error
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) RecordOrder(OrderEvent) error { return nil }
