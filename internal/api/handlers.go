package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/swaggo/swag"
	"github.com/vvka-141/movieapi/internal/movies"
)

// maxBodyBytes caps create and update payloads.
const maxBodyBytes = 1 << 20

// Handlers holds the record store used by every movie route.
type Handlers struct {
	repo movies.Repository
}

// NewHandlers creates handlers over repo.
func NewHandlers(repo movies.Repository) *Handlers {
	return &Handlers{repo: repo}
}

func (h *Handlers) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "Welcome to the Movie API!") //nolint:errcheck
}

func (h *Handlers) ListMovies(w http.ResponseWriter, r *http.Request) {
	filter, err := movies.ParseFilter(r.URL.Query())
	if err != nil {
		writeStoreError(w, r, "list", err)
		return
	}

	list, err := h.repo.List(r.Context(), filter)
	if err != nil {
		writeStoreError(w, r, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(w, r)
	if !ok {
		return
	}

	m, err := h.repo.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, "get", err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handlers) CreateMovie(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodePatch(w, r)
	if !ok {
		return
	}

	m, err := h.repo.Create(r.Context(), patch)
	if err != nil {
		writeStoreError(w, r, "create", err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *Handlers) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(w, r)
	if !ok {
		return
	}
	patch, ok := decodePatch(w, r)
	if !ok {
		return
	}

	m, err := h.repo.Update(r.Context(), id, patch)
	if err != nil {
		writeStoreError(w, r, "update", err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handlers) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(w, r)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeStoreError(w, r, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Spec serves the registered Swagger document.
func (h *Handlers) Spec(w http.ResponseWriter, _ *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "swagger document unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, doc) //nolint:errcheck
}

// movieID parses the {id} path segment. Anything that is not an integer
// cannot name a movie, so it is reported as not found.
func movieID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, msgNotFound)
		return 0, false
	}
	return id, true
}

func decodePatch(w http.ResponseWriter, r *http.Request) (movies.Patch, bool) {
	var p movies.Patch
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
		return movies.Patch{}, false
	}
	return p, true
}
