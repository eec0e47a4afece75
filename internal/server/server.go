// Package server is the local development server for inspecting generated
// maps.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/mapfile"
	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/spec"
	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/towngen"
)

// Server serves a project's generated map over HTTP.
type Server struct {
	projectPath string
	port        int
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/map", s.handleMap)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/spec", s.handleSpec)

	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("town map server starting", "addr", fmt.Sprintf("http://localhost%s", addr), "project", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

func (s *Server) generate() (*towngen.Plan, error) {
	townSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		return nil, err
	}
	return towngen.Generate(townSpec)
}

func (s *Server) handleMap(w http.ResponseWriter, _ *http.Request) {
	plan, err := s.generate()
	if err != nil {
		httpError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	if err := mapfile.WriteGeoJSON(w, plan.Spec.Name, plan.Root); err != nil {
		slog.Error("writing map response", "error", err)
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	plan, err := s.generate()
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, mapfile.Summarize(plan.Root))
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	townSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, townSpec)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("writing response", "error", err)
	}
}

func httpError(w http.ResponseWriter, err error) {
	slog.Error("request failed", "error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
