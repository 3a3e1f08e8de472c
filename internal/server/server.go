// Package server hosts an extracted output directory: static assets plus a
// small JSON API over the widget model, so external tooling can drive the
// display without reimplementing the resolvers.
package server

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ohler55/ojg/oj"

	"github.com/panelworks/lcdgen/api"
	"github.com/panelworks/lcdgen/internal/classify"
	"github.com/panelworks/lcdgen/internal/render"
	"github.com/panelworks/lcdgen/internal/segment"
)

// Server serves one extraction result.
type Server struct {
	router   chi.Router
	dir      string
	manifest *api.Manifest
	widgets  map[string]*api.WidgetRecord
	log      *slog.Logger
}

// New builds a server over an output directory and its manifest.
func New(dir string, m *api.Manifest, log *slog.Logger) *Server {
	s := &Server{
		dir:      dir,
		manifest: m,
		widgets:  map[string]*api.WidgetRecord{},
		log:      log,
	}
	for i := range m.Widgets {
		w := &m.Widgets[i]
		s.widgets[w.Name] = w
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.log))

	r.Get("/api/manifest", s.handleManifest)
	r.Get("/api/segments", s.handleSegments)
	r.Post("/api/render/{widget}", s.handleRender)

	r.Handle("/*", http.FileServer(http.Dir(s.dir)))

	s.router = r
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.manifest)
}

func (s *Server) handleSegments(w http.ResponseWriter, r *http.Request) {
	tables := map[string]any{}
	for _, a := range []segment.Alphabet{segment.Seven, segment.Sixteen} {
		table := map[string][]string{}
		for ch, segs := range segment.Table(a) {
			table[string(ch)] = segs
		}
		tables[fmt.Sprintf("%d", a.Size())] = map[string]any{
			"layer_order": a.LayerOrder(),
			"table":       table,
			"point":       segment.PointName,
		}
	}
	writeJSON(w, http.StatusOK, tables)
}

// renderRequest drives one widget. Which fields matter depends on the
// widget's type.
type renderRequest struct {
	Value         float64 `json:"value"`
	LeadingZeros  bool    `json:"leading_zeros"`
	DecimalPlaces int     `json:"decimal_places"`
	Text          string  `json:"text"`
	Start         int     `json:"start"`
	End           int     `json:"end"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "widget")
	rec, ok := s.widgets[name]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown widget %q", name))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<16))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	req := renderRequest{DecimalPlaces: -1}
	if err := oj.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad request body: %w", err))
		return
	}

	switch rec.Type {
	case "digit7", "digit16":
		alpha := segment.Seven
		if rec.Type == "digit16" {
			alpha = segment.Sixteen
		}
		digits := []classify.Digit{{
			Name:     rec.Name,
			Alphabet: alpha,
			HasPoint: rec.HasDecimal,
			Layers:   rec.Layers,
		}}
		slots, err := render.Text(name, digits, req.Text)
		respondSlots(w, digits, slots, err)
	case "number":
		digits, pointIdx := digitSlots(rec)
		slots, err := render.Number(name, digits, pointIdx, req.Value, render.NumberOptions{
			LeadingZeros:  req.LeadingZeros,
			DecimalPlaces: req.DecimalPlaces,
		})
		respondSlots(w, digits, slots, err)
	case "string":
		digits, _ := digitSlots(rec)
		slots, err := render.Text(name, digits, req.Text)
		respondSlots(w, digits, slots, err)
	case "range":
		visible, err := render.Range(name, rec.Count, req.Start, req.End)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		members := make([]map[string]any, len(visible))
		for i, v := range visible {
			members[i] = map[string]any{"filename": rec.Layers[i], "visible": v}
		}
		writeJSON(w, http.StatusOK, map[string]any{"members": members})
	default:
		writeError(w, http.StatusUnprocessableEntity,
			fmt.Errorf("widget %q of type %s is not value-driven", name, rec.Type))
	}
}

// digitSlots rebuilds resolver inputs from the serialized widget record.
func digitSlots(rec *api.WidgetRecord) ([]classify.Digit, int) {
	digits := make([]classify.Digit, len(rec.Digits))
	pointIdx := -1
	for i, d := range rec.Digits {
		alpha := segment.Seven
		if d.Segments == segment.Sixteen.Size() {
			alpha = segment.Sixteen
		}
		digits[i] = classify.Digit{
			Name:     d.Name,
			Alphabet: alpha,
			HasPoint: d.HasDecimal,
			Layers:   d.Layers,
		}
		if d.HasDecimal && pointIdx < 0 {
			pointIdx = i
		}
	}
	return digits, pointIdx
}

func respondSlots(w http.ResponseWriter, digits []classify.Digit, slots []render.Slot, err error) {
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	out := make([]map[string]any, len(slots))
	for i, s := range slots {
		out[i] = map[string]any{
			"char":     string(s.Char),
			"point":    s.Point,
			"segments": s.Segments(digits[i].Alphabet),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"slots": out})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := oj.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"encode failure"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Info("request", "method", r.Method, "path", r.URL.Path, "status", sw.status)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
