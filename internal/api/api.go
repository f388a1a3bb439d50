// Package api is crossmin serve's HTTP surface: a go-chi router around
// POST /runs (submit a graph, run the engine on its own goroutine) and
// GET /runs/{id} (poll or fetch a completed run). Each request runs
// against its own layered.Graph and heuristic.Context; no state is shared
// across requests beyond the store.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/gocrossmin/crossmin/engine"
	"github.com/gocrossmin/crossmin/heuristic"
	"github.com/gocrossmin/crossmin/internal/store"
	"github.com/gocrossmin/crossmin/ioformat/sgf"
	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/snapshot"
	"github.com/gocrossmin/crossmin/tracker"
)

// Logger is the subset of a structured logger api needs; satisfied
// directly by *zap.SugaredLogger.
type Logger interface {
	Infow(msg string, kv ...interface{})
	Warnw(msg string, kv ...interface{})
	Errorw(msg string, kv ...interface{})
}

// Server holds the dependencies api's handlers close over.
type Server struct {
	Store  *store.Store
	Logger Logger
}

// Router builds the chi router exposing Server's endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Post("/runs", s.submitRun)
	r.Get("/runs/{id}", s.getRun)
	return r
}

// runRequest is POST /runs' JSON body.
type runRequest struct {
	SGF           string   `json:"sgf"`
	Heuristic     string   `json:"heuristic"`
	Preprocessor  string   `json:"preprocessor,omitempty"`
	SiftOrder     string   `json:"sift_order,omitempty"`
	SiftObjective string   `json:"sift_objective,omitempty"`
	Pareto        string   `json:"pareto,omitempty"`
	Swap          bool     `json:"swap,omitempty"`
	MaxIterations *int     `json:"max_iterations,omitempty"`
	MaxRuntime    *float64 `json:"max_runtime_seconds,omitempty"`
	Seed          int64    `json:"seed,omitempty"`
}

var heuristicNames = map[string]heuristic.Kind{
	"median":   heuristic.Median,
	"bary":     heuristic.Barycenter,
	"mod_bary": heuristic.ModifiedBarycenter,
	"sifting":  heuristic.Sifting,
	"mcn":      heuristic.MCN,
	"mce":      heuristic.MCE,
	"mce_s":    heuristic.MCES,
	"mse":      heuristic.MSE,
}

var preprocessorNames = map[string]heuristic.Preprocessor{
	"bfs": heuristic.BFS,
	"dfs": heuristic.DFS,
	"mds": heuristic.MDS,
}

var siftOrderNames = map[string]heuristic.SiftOrder{
	"layer":  heuristic.SiftByLayer,
	"degree": heuristic.SiftByDegree,
	"random": heuristic.SiftByRandom,
}

var paretoAxisPairs = map[string][2]tracker.Objective{
	"b_t": {tracker.BottleneckCrossings, tracker.TotalCrossings},
	"s_t": {tracker.TotalStretch, tracker.TotalCrossings},
	"b_s": {tracker.BottleneckCrossings, tracker.TotalStretch},
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (s *Server) submitRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "malformed request body: "+err.Error())
		return
	}

	kind, ok := heuristicNames[req.Heuristic]
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "unknown heuristic: "+req.Heuristic)
		return
	}
	pre := heuristic.NoPreprocessor
	if req.Preprocessor != "" {
		pre, ok = preprocessorNames[req.Preprocessor]
		if !ok {
			writeJSONError(w, http.StatusBadRequest, "unknown preprocessor: "+req.Preprocessor)
			return
		}
	}
	siftOrder := heuristic.SiftByLayer
	if req.SiftOrder != "" {
		siftOrder, ok = siftOrderNames[req.SiftOrder]
		if !ok {
			writeJSONError(w, http.StatusBadRequest, "unknown sift order: "+req.SiftOrder)
			return
		}
	}
	var axes *[2]tracker.Objective
	if req.Pareto != "" {
		pair, ok := paretoAxisPairs[req.Pareto]
		if !ok {
			writeJSONError(w, http.StatusBadRequest, "unknown pareto pair: "+req.Pareto)
			return
		}
		axes = &pair
	}

	g, warnings, err := sgf.Read(strings.NewReader(req.SGF))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid sgf: "+err.Error())
		return
	}
	for _, warn := range warnings {
		s.Logger.Warnw("sgf warning on submitted run", "message", warn)
	}

	id := uuid.NewString()
	run := &store.Run{
		ID:           id,
		GraphName:    g.Name,
		Heuristic:    kind.String(),
		Preprocessor: req.Preprocessor,
		Status:       store.StatusRunning,
		SubmittedAt:  time.Now(),
	}
	if err := s.Store.Insert(r.Context(), run); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "could not persist run: "+err.Error())
		return
	}

	opts := engine.Options{
		Heuristic: kind,
		Tuning: heuristic.Options{
			Preprocessor:     pre,
			SiftOrder:        siftOrder,
			SiftByBottleneck: req.SiftObjective == "max",
			Randomize:        req.Seed != 0,
		},
		Seed:          req.Seed,
		PostProcess:   req.Swap,
		ParetoAxes:    axes,
		MaxIterations: req.MaxIterations,
	}
	if req.MaxRuntime != nil {
		d := time.Duration(*req.MaxRuntime * float64(time.Second))
		opts.MaxRuntime = &d
	}

	go s.runAndPersist(id, g, opts, req.Preprocessor)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]string{"id": id, "status": store.StatusRunning})
}

// runAndPersist runs opts against g on the caller's goroutine and writes
// the outcome back to the store, detached from any request context.
func (s *Server) runAndPersist(id string, g *layered.Graph, opts engine.Options, preprocessor string) {
	ctx := context.Background()
	start := time.Now()
	result, err := engine.Run(g, opts)

	run := &store.Run{
		ID:           id,
		GraphName:    g.Name,
		Heuristic:    opts.Heuristic.String(),
		Preprocessor: preprocessor,
		SubmittedAt:  start,
		CompletedAt: time.Now(),
		WallTime:    time.Since(start),
	}
	if err != nil {
		run.Status = store.StatusFailed
		run.Error = err.Error()
		s.Logger.Errorw("run failed", "id", id, "error", err)
	} else {
		run.Status = store.StatusCompleted
		run.Iterations = result.Iterations
		run.Passes = result.Passes
		run.FinalOrdering = snapshot.Save(g)
		run.Best = bestRecords(result)
		s.Logger.Infow("run completed", "id", id, "total_crossings", result.TotalCrossings)
	}
	if updateErr := s.Store.Update(ctx, run); updateErr != nil {
		s.Logger.Errorw("could not persist run outcome", "id", id, "error", updateErr)
	}
}

func (s *Server) getRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	run, err := s.Store.Get(r.Context(), id)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "run not found: "+id)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(run)
}

// bestRecords flattens engine.Result's per-objective best-so-far records
// into the store's flat slice form, skipping objectives never observed.
func bestRecords(result engine.Result) []store.ObjectiveRecord {
	named := []struct {
		obj string
		rec *tracker.Record
	}{
		{tracker.TotalCrossings.String(), result.BestTotalCrossings},
		{tracker.BottleneckCrossings.String(), result.BestBottleneckCrossings},
		{tracker.TotalStretch.String(), result.BestTotalStretch},
		{tracker.BottleneckStretch.String(), result.BestBottleneckStretch},
	}
	var out []store.ObjectiveRecord
	for _, n := range named {
		if n.rec == nil {
			continue
		}
		out = append(out, store.ObjectiveRecord{
			Objective: n.obj,
			Value:     n.rec.Value,
			Iteration: n.rec.Iteration,
			Ordering:  n.rec.Ordering,
		})
	}
	return out
}
