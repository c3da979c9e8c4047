/*
handlers.go - HTTP handlers for the campsite booking API

PURPOSE:
  Exposes the booking engine via REST. Handles HTTP request/response, JSON
  serialization and guest-attribute validation, then delegates to the
  engine. No booking logic lives here.

ENDPOINTS:
  Reservations:
    POST   /api/reservations          Create reservation
    GET    /api/reservations/{id}     Get reservation
    PUT    /api/reservations/{id}     Update reservation dates
    DELETE /api/reservations/{id}     Cancel reservation

  Site:
    GET    /api/site/availabilities   Free days in a window
    GET    /api/site/occupancy        Occupancy summary for a window

ERROR HANDLING:
  Engine error kinds map to HTTP statuses:
  - ValidationError -> 400 (with every violated rule)
  - NotFoundError   -> 404
  - ConflictError   -> 409
  - StateError      -> 422
  - anything else   -> 500

SEE ALSO:
  - dto.go:    request/response data structures
  - server.go: router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ridgeline/campsite-engine/booking"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine   *booking.Engine
	validate *validator.Validate
}

// NewHandler creates a new handler backed by the given engine.
func NewHandler(engine *booking.Engine) *Handler {
	return &Handler{
		Engine:   engine,
		validate: validator.New(),
	}
}

// =============================================================================
// RESERVATION HANDLERS
// =============================================================================

// CreateReservation creates a new reservation.
// POST /api/reservations
func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid guest attributes", err)
		return
	}

	arrival, departure, ok := parseRange(w, req.ArrivalDate, req.DepartureDate)
	if !ok {
		return
	}

	created, err := h.Engine.Create(r.Context(), booking.Reservation{
		FullName:  req.FullName,
		Email:     req.Email,
		Arrival:   arrival,
		Departure: departure,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReservationResponse(created))
}

// GetReservation returns a single reservation.
// GET /api/reservations/{id}
func (h *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id := booking.ReservationID(chi.URLParam(r, "id"))

	res, err := h.Engine.FindByID(r.Context(), id)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReservationResponse(res))
}

// UpdateReservation replaces a reservation's date range.
// PUT /api/reservations/{id}
func (h *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	id := booking.ReservationID(chi.URLParam(r, "id"))

	var req UpdateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", err)
		return
	}

	arrival, departure, ok := parseRange(w, req.ArrivalDate, req.DepartureDate)
	if !ok {
		return
	}

	updated, err := h.Engine.Update(r.Context(), id, arrival, departure)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReservationResponse(updated))
}

// CancelReservation cancels a reservation.
// DELETE /api/reservations/{id}
func (h *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id := booking.ReservationID(chi.URLParam(r, "id"))

	cancelled, err := h.Engine.Cancel(r.Context(), id)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReservationResponse(cancelled))
}

// =============================================================================
// SITE HANDLERS
// =============================================================================

// GetAvailabilities returns the free days in a window. Without query
// parameters the window defaults to today through the advance-booking
// horizon.
// GET /api/site/availabilities?from=2006-01-02&to=2006-01-02
func (h *Handler) GetAvailabilities(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.parseWindow(w, r)
	if !ok {
		return
	}

	free, err := h.Engine.FreeDaysBetween(from, to)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	dates := make([]string, len(free))
	for i, d := range free {
		dates[i] = d.String()
	}

	writeJSON(w, http.StatusOK, AvailabilityResponse{
		From:           from.String(),
		To:             to.String(),
		AvailableDates: dates,
	})
}

// GetOccupancy returns booked/free day counts and the occupancy rate.
// GET /api/site/occupancy?from=2006-01-02&to=2006-01-02
func (h *Handler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.parseWindow(w, r)
	if !ok {
		return
	}

	summary, err := h.Engine.OccupancySummary(from, to)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, OccupancyResponse{
		From:          summary.From.String(),
		To:            summary.To.String(),
		TotalDays:     summary.TotalDays,
		FreeDays:      summary.FreeDays,
		BookedDays:    summary.BookedDays,
		OccupancyRate: summary.Rate.String(),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func parseRange(w http.ResponseWriter, arrivalDate, departureDate string) (booking.Day, booking.Day, bool) {
	arrival, err := booking.ParseDay(arrivalDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid arrivalDate format (use YYYY-MM-DD)", err)
		return booking.Day{}, booking.Day{}, false
	}
	departure, err := booking.ParseDay(departureDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid departureDate format (use YYYY-MM-DD)", err)
		return booking.Day{}, booking.Day{}, false
	}
	return arrival, departure, true
}

func (h *Handler) parseWindow(w http.ResponseWriter, r *http.Request) (booking.Day, booking.Day, bool) {
	from, to := h.Engine.Rules().DefaultWindow()

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := booking.ParseDay(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid from date format (use YYYY-MM-DD)", err)
			return booking.Day{}, booking.Day{}, false
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := booking.ParseDay(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid to date format (use YYYY-MM-DD)", err)
			return booking.Day{}, booking.Day{}, false
		}
		to = parsed
	}
	return from, to, true
}

func writeEngineError(w http.ResponseWriter, err error) {
	var validation *booking.ValidationError
	if errors.As(err, &validation) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:      "Requested date range is invalid",
			Violations: validation.Violations,
		})
		return
	}

	var notFound *booking.NotFoundError
	if errors.As(err, &notFound) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: notFound.Error()})
		return
	}

	var conflict *booking.ConflictError
	if errors.As(err, &conflict) {
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: conflict.Error()})
		return
	}

	var state *booking.StateError
	if errors.As(err, &state) {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: state.Error()})
		return
	}

	writeError(w, http.StatusInternalServerError, "Internal error", err)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
