package entity

import "github.com/google/uuid"

// AlertDelivery is the outcome of creating one alert for one caretaker.
type AlertDelivery struct {
	CaretakerID uuid.UUID  `json:"caretaker_id"`
	AlertID     *uuid.UUID `json:"alert_id,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// Delivered reports whether the alert row was created.
func (d AlertDelivery) Delivered() bool {
	return d.AlertID != nil
}

// FanOutReport aggregates the per-caretaker outcomes of a geofence alert fan-out.
type FanOutReport struct {
	Attempted   int             `json:"attempted"`
	Delivered   int             `json:"delivered"`
	Failed      int             `json:"failed"`
	LookupError string          `json:"lookup_error,omitempty"`
	Deliveries  []AlertDelivery `json:"deliveries"`
}

// Degraded reports whether any caretaker could not be alerted.
func (r *FanOutReport) Degraded() bool {
	return r != nil && (r.Failed > 0 || r.LookupError != "")
}
