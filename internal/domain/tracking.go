package domain

import "time"

// SessionKey is the short-lived credential returned by the GPS provider login.
type SessionKey string

// Position is the last known position of a tracking unit.
// X is the longitude and Y the latitude, as reported by the provider.
type Position struct {
	X float64
	Y float64
}

// DeliveryInfo is what the CRM knows about an order.
type DeliveryInfo struct {
	CourierID       string
	Branch          string
	DestinationLat  float64
	DestinationLong float64
	CourierStatus   string
}

// DriverInfo links a courier to its tracking unit.
type DriverInfo struct {
	UnitID       int64
	CourierPhone string
}

// ResolutionRecord is the cached outcome of login + CRM resolution for one order.
// A zero LastRequestTime means the record was never used and is treated as expired.
type ResolutionRecord struct {
	SessionKey      SessionKey
	LastRequestTime time.Time
	TTL             time.Duration
	CourierID       string
	UnitID          int64
	Branch          string
	DestinationLat  float64
	DestinationLong float64
	CourierStatus   string
	CourierPhone    string
}

// Location is the merged answer for "where is the courier of this order".
type Location struct {
	X               float64
	Y               float64
	StartLat        float64
	StartLong       float64
	DestinationLat  float64
	DestinationLong float64
	// CourierPhone is empty unless the deployment exposes it.
	CourierPhone string
}
