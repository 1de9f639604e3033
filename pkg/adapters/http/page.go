package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/aretw0/wilayah/internal/cascade"
	"github.com/aretw0/wilayah/internal/presentation/web"
	"github.com/aretw0/wilayah/pkg/adapters/query"
	"github.com/aretw0/wilayah/pkg/domain"
)

// Page handles GET /. The query string is the selection. An inconsistent
// query (a district without its regency, an empty placeholder value) is
// answered with a redirect to its normalised form.
func (s *Server) Page(w http.ResponseWriter, r *http.Request) {
	params := query.FromURL(r.URL)
	sel := cascade.Decode(params)

	if !cascade.Normalized(params) {
		cascade.Encode(sel, params)
		target := "/"
		if enc := params.Encode(); enc != "" {
			target += "?" + enc
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	var buf bytes.Buffer
	v, err := s.engine.View(r.Context(), sel)
	if errors.Is(err, domain.ErrDatasetUnavailable) {
		if err := s.renderer.Unavailable(&buf); err != nil {
			s.logger.Error("unavailable page render failed", "err", err)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = buf.WriteTo(w)
		return
	}
	if err != nil {
		s.logger.Error("view failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := s.renderer.Page(&buf, v); err != nil {
		s.logger.Error("page render failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// StyleSheet handles GET /static/style.css.
func (s *Server) StyleSheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(web.StyleSheet())
}
