/*
dto.go - Request/response data structures for the REST API

PURPOSE:
  JSON shapes exchanged with clients, kept separate from the booking domain
  types. Guest attributes are validated here with go-playground/validator
  struct tags; date-range business rules stay in booking.Rules.
*/
package api

import (
	"github.com/ridgeline/campsite-engine/booking"
)

// =============================================================================
// REQUESTS
// =============================================================================

// ReservationRequest creates a new reservation.
type ReservationRequest struct {
	FullName      string `json:"fullName" validate:"required,min=4"`
	Email         string `json:"email" validate:"required,email"`
	ArrivalDate   string `json:"arrivalDate" validate:"required"`
	DepartureDate string `json:"departureDate" validate:"required"`
}

// UpdateReservationRequest replaces an existing reservation's date range.
type UpdateReservationRequest struct {
	ArrivalDate   string `json:"arrivalDate" validate:"required"`
	DepartureDate string `json:"departureDate" validate:"required"`
}

// =============================================================================
// RESPONSES
// =============================================================================

// ReservationResponse is the stored representation returned to clients.
type ReservationResponse struct {
	ID            string `json:"id"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Status        string `json:"status"`
	ArrivalDate   string `json:"arrivalDate"`
	DepartureDate string `json:"departureDate"`
}

func toReservationResponse(r *booking.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:            string(r.ID),
		FullName:      r.FullName,
		Email:         r.Email,
		Status:        string(r.Status),
		ArrivalDate:   r.Arrival.String(),
		DepartureDate: r.Departure.String(),
	}
}

// AvailabilityResponse lists the free days inside the queried window.
type AvailabilityResponse struct {
	From           string   `json:"from"`
	To             string   `json:"to"`
	AvailableDates []string `json:"availableDates"`
}

// OccupancyResponse summarizes how booked a window is.
type OccupancyResponse struct {
	From          string `json:"from"`
	To            string `json:"to"`
	TotalDays     int    `json:"totalDays"`
	FreeDays      int    `json:"freeDays"`
	BookedDays    int    `json:"bookedDays"`
	OccupancyRate string `json:"occupancyRate"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error      string   `json:"error"`
	Details    string   `json:"details,omitempty"`
	Violations []string `json:"violations,omitempty"`
}
