package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/vvka-141/movieapi/internal/metrics"
	"github.com/vvka-141/movieapi/internal/movies"
)

const msgNotFound = "Movie not found"

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeStoreError maps record store errors to responses. Unclassified
// errors are logged and reported without detail.
func writeStoreError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, movies.ErrNotFound):
		metrics.RecordStoreError(op, "not_found")
		writeError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, movies.ErrValidation):
		metrics.RecordStoreError(op, "validation")
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		metrics.RecordStoreError(op, "internal")
		zerolog.Ctx(r.Context()).Error().Err(err).Str("operation", op).Msg("store failure")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
