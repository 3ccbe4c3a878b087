package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed     = "method_not_allowed"
	codeNotFound             = "not_found"
	codeInvalidRequestBody   = "invalid_request_body"
	codeMissingRequiredField = "missing_required_field"
	codeMalformedTimestamp   = "malformed_timestamp"
	codeInvalidInterval      = "invalid_interval"
	codePastStart            = "past_start"
	codeMisalignedBlock      = "misaligned_block"
	codeDurationTooShort     = "duration_too_short"
	codeDurationTooLong      = "duration_too_long"
	codeSpansMultipleDays    = "spans_multiple_days"
	codeOutsideBusinessHours = "outside_business_hours"
	codeStartAtClosing       = "start_at_closing"
	codeOverlapConflict      = "overlap_conflict"
	codeRoomNotFound         = "room_not_found"
	codeReservationNotFound  = "reservation_not_found"
	codeForbidden            = "forbidden"
	codeInternalError        = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}
