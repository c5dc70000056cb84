package metrics

import "errors"

// MultiSink fanouts order events to multiple sinks.
type MultiSink struct {
	Sinks []OrderSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...OrderSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordOrder forwards the event to every sink, even when one fails, and
// returns the joined errors.
func (m *MultiSink) RecordOrder(ev OrderEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.RecordOrder(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
