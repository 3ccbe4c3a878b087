package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/phuttu/meeting-room-api/internal/app"
	"github.com/phuttu/meeting-room-api/internal/domain"
)

// ReservationService is the minimal interface the reservation endpoints need.
type ReservationService interface {
	CreateReservation(ctx context.Context, in app.CreateReservationInput) (domain.Reservation, error)
	ListReservations(ctx context.Context, room string) ([]domain.Reservation, error)
	DeleteReservation(ctx context.Context, room, id string) error
}

var validate = validator.New()

// HandleReservations routes /rooms/{room}/reservations and
// /rooms/{room}/reservations/{id}. Room ids are matched case-insensitively
// against the allowed set here, before the service is called; the service and
// store trust the normalized key. Response timestamps are rendered in loc.
func HandleReservations(svc ReservationService, rooms domain.Rooms, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, reservationID, ok := parseReservationsPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		room, known := rooms.Normalize(roomID)
		if !known {
			msg := fmt.Sprintf("%s: %q, allowed rooms: %s", domain.ErrRoomNotFound, room, strings.Join(rooms.IDs(), ", "))
			writeError(w, http.StatusNotFound, codeRoomNotFound, msg)
			return
		}

		switch {
		case reservationID == "" && r.Method == http.MethodPost:
			createReservation(w, r, svc, room, loc)
		case reservationID == "" && r.Method == http.MethodGet:
			listReservations(w, r, svc, room, loc)
		case reservationID != "" && r.Method == http.MethodDelete:
			deleteReservation(w, r, svc, room, reservationID)
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

func createReservation(w http.ResponseWriter, r *http.Request, svc ReservationService, room string, loc *time.Location) {
	var req createReservationRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, codeMissingRequiredField, "start and end are required")
		return
	}

	reservation, err := svc.CreateReservation(r.Context(), app.CreateReservationInput{
		Room:  room,
		Start: req.Start,
		End:   req.End,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(newReservationResponse(reservation, loc))
}

func listReservations(w http.ResponseWriter, r *http.Request, svc ReservationService, room string, loc *time.Location) {
	reservations, err := svc.ListReservations(r.Context(), room)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := make([]reservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		resp = append(resp, newReservationResponse(reservation, loc))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func deleteReservation(w http.ResponseWriter, r *http.Request, svc ReservationService, room, id string) {
	if err := svc.DeleteReservation(r.Context(), room, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps the engine's error taxonomy to HTTP statuses:
// validation kinds are 400, conflicts 409, unknown reservations 404.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMalformedTimestamp):
		writeError(w, http.StatusBadRequest, codeMalformedTimestamp, err.Error())
	case errors.Is(err, domain.ErrInvalidInterval):
		writeError(w, http.StatusBadRequest, codeInvalidInterval, err.Error())
	case errors.Is(err, domain.ErrPastStart):
		writeError(w, http.StatusBadRequest, codePastStart, err.Error())
	case errors.Is(err, domain.ErrMisalignedBlock):
		writeError(w, http.StatusBadRequest, codeMisalignedBlock, err.Error())
	case errors.Is(err, domain.ErrDurationTooShort):
		writeError(w, http.StatusBadRequest, codeDurationTooShort, err.Error())
	case errors.Is(err, domain.ErrDurationTooLong):
		writeError(w, http.StatusBadRequest, codeDurationTooLong, err.Error())
	case errors.Is(err, domain.ErrSpansMultipleDays):
		writeError(w, http.StatusBadRequest, codeSpansMultipleDays, err.Error())
	case errors.Is(err, domain.ErrOutsideBusinessHours):
		writeError(w, http.StatusBadRequest, codeOutsideBusinessHours, err.Error())
	case errors.Is(err, domain.ErrStartAtClosing):
		writeError(w, http.StatusBadRequest, codeStartAtClosing, err.Error())
	case errors.Is(err, domain.ErrOverlapConflict):
		writeError(w, http.StatusConflict, codeOverlapConflict, err.Error())
	case errors.Is(err, domain.ErrReservationNotFound):
		writeError(w, http.StatusNotFound, codeReservationNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// parseReservationsPath accepts /rooms/{room}/reservations and
// /rooms/{room}/reservations/{id}.
func parseReservationsPath(path string) (roomID, reservationID string, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 && len(parts) != 4 {
		return "", "", false
	}
	if parts[0] != "rooms" || parts[2] != "reservations" {
		return "", "", false
	}
	if parts[1] == "" {
		return "", "", false
	}
	if len(parts) == 4 {
		if parts[3] == "" {
			return "", "", false
		}
		return parts[1], parts[3], true
	}
	return parts[1], "", true
}

type createReservationRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

type reservationResponse struct {
	ID    string `json:"id"`
	Room  string `json:"room"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// newReservationResponse renders the stored UTC instants in the canonical
// local zone as ISO 8601.
func newReservationResponse(r domain.Reservation, loc *time.Location) reservationResponse {
	return reservationResponse{
		ID:    r.ID,
		Room:  r.Room,
		Start: r.Start.In(loc).Format(time.RFC3339),
		End:   r.End.In(loc).Format(time.RFC3339),
	}
}
