package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aretw0/wilayah/internal/cascade"
	"github.com/aretw0/wilayah/pkg/adapters/query"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 16

// SelectRequest is the body of POST /api/select. The current selection is
// given either as an object or as a query string; Query wins when both are set.
type SelectRequest struct {
	domain.Action
	Selection domain.Selection `json:"selection"`
	Query     string           `json:"query,omitempty"`
}

// SelectResponse carries the settled selection, its query encoding, the
// derived view and what changed.
type SelectResponse struct {
	Selection domain.Selection      `json:"selection"`
	Query     string                `json:"query"`
	View      domain.View           `json:"view"`
	Diff      *domain.SelectionDiff `json:"diff"`
}

// ListProvinces handles GET /api/provinces.
func (s *Server) ListProvinces(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.dataset(w)
	if !ok {
		return
	}
	provinces := ds.Provinces
	if provinces == nil {
		provinces = []domain.Province{}
	}
	s.writeJSON(w, http.StatusOK, provinces)
}

// ListRegencies handles GET /api/provinces/{id}/regencies.
func (s *Server) ListRegencies(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	ds, ok := s.dataset(w)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, cascade.RegencyOptions(ds, id))
}

// ListDistricts handles GET /api/regencies/{id}/districts.
func (s *Server) ListDistricts(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	ds, ok := s.dataset(w)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, cascade.DistrictOptions(ds, id))
}

func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (domain.NullID, bool) {
	id := cascade.ParseID(chi.URLParam(r, "id"))
	if !id.Valid {
		s.writeError(w, http.StatusBadRequest, "id must be an integer")
		return id, false
	}
	return id, true
}

// GetView handles GET /api/view?province=&regency=&district=.
func (s *Server) GetView(w http.ResponseWriter, r *http.Request) {
	sel := cascade.Decode(query.FromURL(r.URL))
	v, err := s.engine.View(r.Context(), sel)
	if err != nil {
		s.viewError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, v)
}

// Select handles POST /api/select. It is stateless: the caller sends the
// current selection and receives the next one.
func (s *Server) Select(w http.ResponseWriter, r *http.Request) {
	var body SelectRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		s.logger.Warn("select: invalid request body", "err", err)
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	current := cascade.Settle(body.Selection)
	if body.Query != "" {
		params, err := query.Parse(body.Query)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid query")
			return
		}
		current = cascade.Decode(params)
	}

	resp, status, err := s.apply(r, current, body.Action)
	if err != nil {
		s.writeError(w, status, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// apply runs action on current and builds the response. On failure it returns
// the HTTP status to answer with.
func (s *Server) apply(r *http.Request, current domain.Selection, action domain.Action) (*SelectResponse, int, error) {
	if err := action.Validate(); err != nil {
		return nil, http.StatusBadRequest, err
	}
	next, err := s.engine.Apply(r.Context(), current, action)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownAction) {
			return nil, http.StatusBadRequest, err
		}
		return nil, http.StatusInternalServerError, err
	}
	return s.respond(r, current, next)
}

func (s *Server) respond(r *http.Request, before, after domain.Selection) (*SelectResponse, int, error) {
	v, err := s.engine.View(r.Context(), after)
	if err != nil {
		if errors.Is(err, domain.ErrDatasetUnavailable) {
			return nil, http.StatusServiceUnavailable, err
		}
		return nil, http.StatusInternalServerError, err
	}
	params := query.New()
	cascade.Encode(after, params)
	return &SelectResponse{
		Selection: after,
		Query:     params.Encode(),
		View:      v,
		Diff:      domain.Diff(before, after),
	}, http.StatusOK, nil
}

func (s *Server) viewError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrDatasetUnavailable) {
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	s.logger.Error("view failed", "err", err)
	s.writeError(w, http.StatusInternalServerError, "internal error")
}

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status  string        `json:"status"`
	Dataset string        `json:"dataset"`
	Stats   *domain.Stats `json:"stats,omitempty"`
	Version string        `json:"version,omitempty"`
}

// GetHealth handles GET /health. The process is healthy even without a
// dataset; the dataset field tells the two states apart.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Dataset: "unavailable", Version: s.version}
	if ds := s.engine.Dataset(); ds != nil {
		stats := ds.Stats()
		resp.Dataset = "loaded"
		resp.Stats = &stats
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// Reload handles POST /admin/reload. A failed reload keeps the current dataset.
func (s *Server) Reload(w http.ResponseWriter, r *http.Request) {
	if s.loader == nil {
		s.writeError(w, http.StatusNotFound, "reload is not configured")
		return
	}
	if err := s.engine.Load(r.Context(), s.loader); err != nil {
		s.logger.Error("reload failed", "err", err)
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	stats := s.engine.Dataset().Stats()
	s.writeJSON(w, http.StatusOK, stats)
}
