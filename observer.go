package machina

import "log/slog"

// Observer represents an entity that observes engine activity
type Observer interface {
	// OnTransition is called when an object takes an edge, including
	// each hop of a pseudo-state cascade
	OnTransition(obj Stateful, from string, to string, event Event)
}

// ExtendedObserver provides additional optional observation methods
type ExtendedObserver interface {
	Observer

	// OnEventEmitted is called when an event is appended to a queue
	OnEventEmitted(event Event)

	// OnEventDelivered is called after a pumped event has been
	// dispatched to one object
	OnEventDelivered(obj Stateful, event Event)

	// OnEventUnhandled is called when a dispatched event fired no edge
	OnEventUnhandled(obj Stateful, event Event)

	// OnError is called when a dispatch fails during a pump
	OnError(obj Stateful, err error)
}

// BaseObserver provides a default implementation with no-op methods
type BaseObserver struct{}

// OnTransition implements the required Observer method
func (o *BaseObserver) OnTransition(obj Stateful, from string, to string, event Event) {
}

// OnEventEmitted implements the optional ExtendedObserver method
func (o *BaseObserver) OnEventEmitted(event Event) {
}

// OnEventDelivered implements the optional ExtendedObserver method
func (o *BaseObserver) OnEventDelivered(obj Stateful, event Event) {
}

// OnEventUnhandled implements the optional ExtendedObserver method
func (o *BaseObserver) OnEventUnhandled(obj Stateful, event Event) {
}

// OnError implements the optional ExtendedObserver method
func (o *BaseObserver) OnError(obj Stateful, err error) {
}

// ObserverManager manages a collection of observers
type ObserverManager struct {
	observers []Observer
}

// NewObserverManager creates a new observer manager
func NewObserverManager() *ObserverManager {
	return &ObserverManager{
		observers: make([]Observer, 0),
	}
}

// AddObserver adds an observer to the manager
func (om *ObserverManager) AddObserver(observer Observer) {
	om.observers = append(om.observers, observer)
}

// RemoveObserver removes an observer from the manager
func (om *ObserverManager) RemoveObserver(observer Observer) {
	for i, obs := range om.observers {
		if obs == observer {
			om.observers = append(om.observers[:i], om.observers[i+1:]...)
			break
		}
	}
}

// NotifyTransition notifies all observers of a taken edge
func (om *ObserverManager) NotifyTransition(obj Stateful, from string, to string, event Event) {
	for _, obs := range om.snapshot() {
		obs.OnTransition(obj, from, to, event)
	}
}

// NotifyEventEmitted notifies all extended observers of a queued event
func (om *ObserverManager) NotifyEventEmitted(event Event) {
	for _, obs := range om.snapshot() {
		if ext, ok := obs.(ExtendedObserver); ok {
			ext.OnEventEmitted(event)
		}
	}
}

// NotifyEventDelivered notifies all extended observers of a delivery
func (om *ObserverManager) NotifyEventDelivered(obj Stateful, event Event) {
	for _, obs := range om.snapshot() {
		if ext, ok := obs.(ExtendedObserver); ok {
			ext.OnEventDelivered(obj, event)
		}
	}
}

// NotifyEventUnhandled notifies all extended observers of an event that
// fired no edge
func (om *ObserverManager) NotifyEventUnhandled(obj Stateful, event Event) {
	for _, obs := range om.snapshot() {
		if ext, ok := obs.(ExtendedObserver); ok {
			ext.OnEventUnhandled(obj, event)
		}
	}
}

// NotifyError notifies all extended observers of a dispatch failure
func (om *ObserverManager) NotifyError(obj Stateful, err error) {
	for _, obs := range om.snapshot() {
		if ext, ok := obs.(ExtendedObserver); ok {
			ext.OnError(obj, err)
		}
	}
}

// snapshot copies the observer list so notifications tolerate observers
// removing themselves mid-iteration
func (om *ObserverManager) snapshot() []Observer {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)
	return observers
}

// LoggingObserver logs engine activity through slog
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer. A nil logger falls
// back to slog.Default.
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnTransition logs a taken edge
func (o *LoggingObserver) OnTransition(obj Stateful, from string, to string, event Event) {
	o.logger.Info("transition",
		"from", from,
		"to", to,
		"event", event.Kind,
		"event_id", event.ID)
}

// OnEventEmitted logs a queued event
func (o *LoggingObserver) OnEventEmitted(event Event) {
	o.logger.Debug("event queued",
		"event", event.Kind,
		"event_id", event.ID)
}

// OnEventDelivered logs a delivery
func (o *LoggingObserver) OnEventDelivered(obj Stateful, event Event) {
	o.logger.Debug("event delivered",
		"event", event.Kind,
		"event_id", event.ID,
		"state", obj.StateName())
}

// OnEventUnhandled logs an event that fired no edge
func (o *LoggingObserver) OnEventUnhandled(obj Stateful, event Event) {
	o.logger.Debug("event unhandled",
		"event", event.Kind,
		"event_id", event.ID,
		"state", obj.StateName())
}

// OnError logs a dispatch failure
func (o *LoggingObserver) OnError(obj Stateful, err error) {
	o.logger.Error("dispatch failed",
		"state", obj.StateName(),
		"error", err)
}
