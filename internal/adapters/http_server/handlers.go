package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"travel_docs/internal/adapters/observability"
	"travel_docs/internal/app"
	"travel_docs/internal/domain"
)

// Handlers serves the quote-editor item surface. One SearchSequence per
// process: the editor is a single-session surface, and every incoming
// query supersedes the previous one the same way a new keystroke does.
type Handlers struct {
	Search *app.SearchService
	Seq    *app.SearchSequence
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type searchResponse struct {
	Results []domain.SearchResult `json:"results"`
	Advice  string                `json:"advice,omitempty"`
	Message string                `json:"message,omitempty"`
}

type finalizeRequest struct {
	Result    domain.SearchResult      `json:"result"`
	Overrides domain.LineItemOverrides `json:"overrides"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/items/search", h.searchItems)
	s.mux.Post("/v1/items/detail", h.itemDetail)
	s.mux.Post("/v1/items", h.finalizeItem)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func (h *Handlers) searchItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	cat := domain.ItemCategory(strings.ToLower(r.URL.Query().Get("type")))
	if !cat.Valid() {
		writeProblem(w, http.StatusBadRequest, "Invalid type", "type must be hotel, flight, transfer or activity")
		return
	}

	tok := h.Seq.Next()
	results, err := h.Search.Search(r.Context(), tok, q, cat)

	resp := searchResponse{Results: results}
	switch {
	case err == nil:
		observability.ObserveSearch(string(cat), "ok")
	case errors.Is(err, domain.ErrStaleSearch):
		// Superseded by a newer query; drop silently.
		observability.ObserveSearch(string(cat), "stale")
		w.WriteHeader(http.StatusNoContent)
		return
	case errors.Is(err, domain.ErrNoData):
		observability.ObserveSearch(string(cat), "no_data")
		resp.Advice = "no_data"
		resp.Message = "Geen reizen geïmporteerd. Importeer eerst een reis."
	case errors.Is(err, domain.ErrNoMatches):
		observability.ObserveSearch(string(cat), "no_matches")
		resp.Advice = "no_matches"
		resp.Message = "Geen resultaten. Probeer een vertaalde term (bijv. Vienna in plaats van Wenen)."
	case errors.Is(err, domain.ErrFetchFailed):
		observability.ObserveSearch(string(cat), "fetch_failed")
		log.Error().Err(err).Str("query", q).Msg("item search fetch failed")
		writeProblem(w, http.StatusBadGateway, "Search failed", "search failed, try again")
		return
	default:
		log.Error().Err(err).Str("query", q).Msg("item search failed")
		writeProblem(w, http.StatusInternalServerError, "Search failed", "search failed, try again")
		return
	}
	if resp.Results == nil {
		resp.Results = []domain.SearchResult{}
	}

	etag, body := calcETagAndBody(resp)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write search body")
	}
}

func (h *Handlers) itemDetail(w http.ResponseWriter, r *http.Request) {
	var res domain.SearchResult
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be a search result")
		return
	}
	dv, err := app.ProjectDetail(res)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid category", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dv)
}

func (h *Handlers) finalizeItem(w http.ResponseWriter, r *http.Request) {
	var req finalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be {result, overrides}")
		return
	}
	if !req.Result.Type.Valid() {
		writeProblem(w, http.StatusBadRequest, "Invalid category", "result.type must be hotel, flight, transfer or activity")
		return
	}
	item := app.BuildLineItem(req.Result, req.Overrides)
	writeJSON(w, http.StatusCreated, item)
}
