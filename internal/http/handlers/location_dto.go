package handlers

import "service-courier-tracking/internal/domain"

type locationDTO struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	StartLat        float64 `json:"start_lat"`
	StartLong       float64 `json:"start_long"`
	DestinationLat  float64 `json:"destination_lat"`
	DestinationLong float64 `json:"destination_long"`
	CourierPhone    string  `json:"courier_phone,omitempty"`
}

type locationResponse struct {
	Location locationDTO `json:"location"`
}

func toLocationResponse(l domain.Location) locationResponse {
	return locationResponse{Location: locationDTO{
		X:               l.X,
		Y:               l.Y,
		StartLat:        l.StartLat,
		StartLong:       l.StartLong,
		DestinationLat:  l.DestinationLat,
		DestinationLong: l.DestinationLong,
		CourierPhone:    l.CourierPhone,
	}}
}
