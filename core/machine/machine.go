// Package machine implements the coffee machine: it turns an order name into
// the preparation message of the matching drink.
package machine

import (
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/coffee/core/coffee"
	"github.com/kilianp07/coffee/core/factory"
	"github.com/kilianp07/coffee/infra/logger"
	"github.com/kilianp07/coffee/metrics"
)

// UnknownCoffee is returned for any order that is not on the menu.
const UnknownCoffee = "Unknown Coffee type!"

// Machine brews drinks by name. It is safe for concurrent use.
type Machine struct {
	drinks *factory.Registry[coffee.Coffee]
	log    logger.Logger
	sink   metrics.OrderSink
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used to trace orders.
func WithLogger(l logger.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// WithSink sets the sink notified of every order.
func WithSink(s metrics.OrderSink) Option {
	return func(m *Machine) {
		if s != nil {
			m.sink = s
		}
	}
}

// New returns a Machine serving the drinks in coffee.Kinds.
func New(opts ...Option) *Machine {
	m := &Machine{
		drinks: factory.NewRegistry[coffee.Coffee](),
		log:    logger.NopLogger{},
		sink:   metrics.NopSink{},
	}
	for _, k := range coffee.Kinds() {
		k := k
		// Names are distinct and factories non-nil, Register cannot fail here.
		_ = m.drinks.Register(k.String(), func(map[string]any) (coffee.Coffee, error) {
			return coffee.New(k)
		})
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Menu lists the names the machine recognises, in menu order.
func (m *Machine) Menu() []string {
	return m.drinks.Names()
}

// MakeCoffee prepares the drink called name and returns its preparation
// message. Names are matched exactly; anything else yields UnknownCoffee.
func (m *Machine) MakeCoffee(name string) string {
	ev := metrics.OrderEvent{
		ID:        uuid.NewString(),
		Requested: name,
		Message:   UnknownCoffee,
		Time:      time.Now(),
	}
	if drink, err := m.drinks.Create(factory.ModuleConfig{Type: name}); err == nil {
		ev.Kind = drink.Kind()
		ev.Known = true
		ev.Message = drink.Prepare()
	}
	m.record(ev)
	return ev.Message
}

func (m *Machine) record(ev metrics.OrderEvent) {
	m.log.Debugw("order handled", map[string]any{
		"order_id":  ev.ID,
		"requested": ev.Requested,
		"kind":      ev.Kind.String(),
		"known":     ev.Known,
	})
	if err := m.sink.RecordOrder(ev); err != nil {
		m.log.Warnf("order %s: record order: %v", ev.ID, err)
	}
}
