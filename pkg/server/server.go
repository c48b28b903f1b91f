package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/adrianliechti/foaas-cli/pkg/foaas"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Server is a local FOAAS compatible API rendering responses from catalog templates.
type Server struct {
	entries []Entry

	logger logrus.FieldLogger
	router chi.Router
}

func New(entries []Entry, logger logrus.FieldLogger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	s := &Server{
		entries: entries,

		logger: logger,
		router: chi.NewRouter(),
	}

	s.router.Get("/operations", s.handleOperations)

	for _, e := range entries {
		s.router.Get(pattern(e.URL), s.handleEntry(e))
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: s,

		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	s.logger.WithField("addr", addr).Info("serving catalog")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	operations := []foaas.Operation{}

	for _, e := range s.entries {
		o := e.Operation

		if o.Fields == nil {
			o.Fields = []foaas.Field{}
		}

		operations = append(operations, o)
	}

	writeJSON(w, operations)
}

func (s *Server) handleEntry(e Entry) http.HandlerFunc {
	fields := slices.Clone(e.Fields)

	// longest tokens first so ":name" never clobbers ":names"
	slices.SortFunc(fields, func(a, b foaas.Field) int {
		return len(b.Field) - len(a.Field)
	})

	return func(w http.ResponseWriter, r *http.Request) {
		var pairs []string

		for _, f := range fields {
			value := chi.URLParam(r, f.Field)

			if v, err := url.PathUnescape(value); err == nil {
				value = v
			}

			pairs = append(pairs, f.Token(), value)
		}

		replacer := strings.NewReplacer(pairs...)

		response := foaas.Response{
			Message:  replacer.Replace(e.Message),
			Subtitle: replacer.Replace(e.Subtitle),
		}

		s.logger.WithFields(logrus.Fields{
			"operation": e.Name,
			"path":      r.URL.EscapedPath(),
		}).Debug("rendered operation")

		if accepts(r, "text/plain") && !accepts(r, "application/json") {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte(response.Message + " " + response.Subtitle))
			return
		}

		writeJSON(w, response)
	}
}

// pattern turns "/back/:name/:from" into the chi route "/back/{name}/{from}".
func pattern(template string) string {
	parts := strings.Split(template, "/")

	for i, p := range parts {
		if strings.HasPrefix(p, ":") {
			parts[i] = "{" + p[1:] + "}"
		}
	}

	return strings.Join(parts, "/")
}

func accepts(r *http.Request, contentType string) bool {
	return strings.Contains(r.Header.Get("Accept"), contentType)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
