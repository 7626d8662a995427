package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/utils"
)

// writeError normalizes err into the {message, code} body and writes it with
// the matching status. Server-side failures are logged with the full chain;
// client errors only at debug level.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	response := app.Normalize(err)
	status := app.HTTPStatus(response.Code)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("code", string(response.Code)).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("code", string(response.Code)).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, response, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

// writeResponse writes data as JSON and logs a failed write.
func writeResponse(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// decodeJSON reads the request body into dst. Malformed, empty and oversized
// bodies are reported as BAD_USER_INPUT.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return app.InvalidInput(app.MsgBodyTooLarge, fmt.Errorf("%w: %w", ErrBodyTooLarge, err))
	case errors.Is(err, io.EOF):
		return app.InvalidInput(app.MsgInvalidJSON, ErrEmptyBody)
	default:
		return app.InvalidInput(app.MsgInvalidJSON, err)
	}
}
