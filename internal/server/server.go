// Package server hosts the local preview dashboard: an HTTP API over
// the computed schedule and a WebSocket stream that plays the camera
// path back at frame cadence, drawing schematic rectangles only (it
// never renders video).
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"autocam/internal/director"
	"autocam/internal/engine"
	"autocam/internal/geom"
)

// CameraFrame is one playback sample pushed to dashboard clients.
type CameraFrame struct {
	OutputMs int64     `json:"output_ms"`
	Rect     geom.Rect `json:"rect"`
	Zoom     float64   `json:"zoom"`
}

// Server exposes a computed schedule for interactive preview.
type Server struct {
	httpServer *http.Server
	project    *engine.Project
	motions    []director.Motion
	hub        *Hub
	fps        int
	mux        *http.ServeMux
}

// New creates a preview server for a project and its schedule.
func New(addr string, project *engine.Project, motions []director.Motion, fps int) *Server {
	if fps <= 0 {
		fps = 30
	}
	s := &Server{
		project: project,
		motions: motions,
		hub:     NewHub(),
		fps:     fps,
		mux:     http.NewServeMux(),
	}
	s.routes()
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.mux,
	}
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/schedule", s.handleSchedule)
	s.mux.HandleFunc("/api/viewport", s.handleViewport)
	s.mux.HandleFunc("/dashboard/", s.handleDashboard)
	s.mux.HandleFunc("/ws", s.hub.HandleWebSocket)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"service":            "autocam",
		"status":             "running",
		"motions":            len(s.motions),
		"output_duration_ms": s.project.OutputDuration(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleSchedule returns the motion list plus the geometry a client
// needs to draw it.
func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"output":             s.project.Session.Output,
		"content":            s.project.View.ContentRect(),
		"output_duration_ms": s.project.OutputDuration(),
		"motions":            s.motions,
	})
}

// handleViewport answers the camera rect at ?t=<output ms>.
func (s *Server) handleViewport(w http.ResponseWriter, r *http.Request) {
	t, err := strconv.ParseInt(r.URL.Query().Get("t"), 10, 64)
	if err != nil {
		http.Error(w, `{"error":"query parameter t must be an integer millisecond"}`, http.StatusBadRequest)
		return
	}
	rect := s.project.ViewportAt(s.motions, t)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CameraFrame{
		OutputMs: t,
		Rect:     rect,
		Zoom:     s.project.View.ZoomScale(rect),
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, DashboardHTML)
}

// Run serves HTTP and plays the schedule back to connected clients
// until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		s.playback(ctx)
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// playback loops over the output duration, broadcasting one frame per
// tick. An empty output broadcasts nothing.
func (s *Server) playback(ctx context.Context) {
	total := s.project.OutputDuration()
	if total <= 0 {
		<-ctx.Done()
		return
	}

	step := int64(1000 / s.fps)
	ticker := time.NewTicker(time.Second / time.Duration(s.fps))
	defer ticker.Stop()

	var outputMs int64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rect := s.project.ViewportAt(s.motions, outputMs)
			s.hub.Broadcast(CameraFrame{
				OutputMs: outputMs,
				Rect:     rect,
				Zoom:     s.project.View.ZoomScale(rect),
			})
			outputMs += step
			if outputMs >= total {
				outputMs = 0
			}
		}
	}
}
