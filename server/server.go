// Package server exposes the theory packages over a small JSON HTTP API.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/harmonia/config"
	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/model"
	"github.com/rs/cors"
)

type Server struct {
	cfg    *config.Config
	router *mux.Router
}

func New(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{cfg: cfg}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.logRequests, s.withConvention)
	router.HandleFunc("/pitches/{name}", s.handlePitch).Methods("GET")
	router.HandleFunc("/intervals/add", s.handleAddIntervals).Methods("POST")
	router.HandleFunc("/intervals/{name}", s.handleInterval).Methods("GET")
	// slash chords keep their bass in the path, e.g. /chords/Cmaj7/G
	router.HandleFunc("/chords/{name:.+}", s.handleChord).Methods("GET")
	router.HandleFunc("/scales", s.handleScaleNames).Methods("GET")
	router.HandleFunc("/scales/{tonic}/{name}", s.handleScale).Methods("GET")
	return router
}

// Handler is the router wrapped with the configured CORS policy.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.router)
}

func (s *Server) ListenAndServe() error {
	log.Printf("listening on %s", s.cfg.Server.Addr)
	return http.ListenAndServe(s.cfg.Server.Addr, s.Handler())
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withConvention puts the configured octave convention on the request
// context; handlers may override it per request.
func (s *Server) withConvention(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := interval.NewContext(r.Context(), s.cfg.Convention())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	respond(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
}
