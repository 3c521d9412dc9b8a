package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dcrodman/objdefs/internal/registry"
)

type namespaceSummary struct {
	Namespace   registry.Namespace `json:"namespace"`
	Alias       string             `json:"alias"`
	Description string             `json:"description"`
	Active      int                `json:"active"`
	Retired     int                `json:"retired"`
	NextID      int                `json:"next_id"`
}

type namespacesResponse struct {
	Namespaces   []namespaceSummary `json:"namespaces"`
	LastID       int                `json:"last_id"`
	NextGlobalID int                `json:"next_global_id"`
}

type entriesResponse struct {
	Namespace registry.Namespace `json:"namespace"`
	Retired   bool               `json:"retired"`
	Entries   []registry.Entry   `json:"entries"`
}

type nextResponse struct {
	Namespace    registry.Namespace `json:"namespace"`
	NextID       int                `json:"next_id"`
	NextGlobalID int                `json:"next_global_id"`
}

type validationResponse struct {
	Errors   int                `json:"errors"`
	Warnings int                `json:"warnings"`
	Findings []registry.Finding `json:"findings"`
}

type errorResponse struct {
	Error string `json:"error"`
	// Set when the value or name is held by a retired entry.
	Retired *registry.Entry `json:"retired,omitempty"`
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/identifiers/{name}", s.handleIdentifier)
	mux.HandleFunc("GET /v1/namespaces", s.handleNamespaces)
	mux.HandleFunc("GET /v1/namespaces/{ns}", s.handleNamespace)
	mux.HandleFunc("GET /v1/namespaces/{ns}/values/{value}", s.handleValue)
	mux.HandleFunc("GET /v1/namespaces/{ns}/next", s.handleNext)
	mux.HandleFunc("GET /v1/validation", s.handleValidation)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", s.metrics.handler())
	return mux
}

func (s *Server) handleIdentifier(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	reg := s.Registry()
	ns, _ := registry.NamespaceOf(name)

	e, ok := reg.Lookup(name)
	s.metrics.observeLookup(ns, ok)
	if ok {
		writeJSON(w, http.StatusOK, e)
		return
	}

	resp := errorResponse{Error: fmt.Sprintf("%s: %s", registry.ErrUnknownName, name)}
	for _, retired := range reg.Retired(ns) {
		if retired.Name == name {
			resp.Error = fmt.Sprintf("%s is retired", name)
			resp.Retired = &retired
			break
		}
	}
	writeJSON(w, http.StatusNotFound, resp)
}

func (s *Server) handleNamespaces(w http.ResponseWriter, r *http.Request) {
	s.cached(w, "namespaces", func(reg *registry.Registry) interface{} {
		resp := namespacesResponse{LastID: reg.LastID(), NextGlobalID: reg.NextGlobalID()}
		for _, ns := range registry.Namespaces {
			resp.Namespaces = append(resp.Namespaces, namespaceSummary{
				Namespace:   ns,
				Alias:       ns.Alias(),
				Description: ns.Description(),
				Active:      reg.Count(ns),
				Retired:     reg.RetiredCount(ns),
				NextID:      reg.NextID(ns),
			})
		}
		return resp
	})
}

func (s *Server) handleNamespace(w http.ResponseWriter, r *http.Request) {
	ns, ok := parseNamespace(w, r)
	if !ok {
		return
	}
	retired, _ := strconv.ParseBool(r.URL.Query().Get("retired"))

	key := fmt.Sprintf("namespace:%s:%t", ns, retired)
	s.cached(w, key, func(reg *registry.Registry) interface{} {
		resp := entriesResponse{Namespace: ns, Retired: retired, Entries: reg.Entries(ns)}
		if retired {
			resp.Entries = reg.Retired(ns)
		}
		if resp.Entries == nil {
			resp.Entries = []registry.Entry{}
		}
		return resp
	})
}

func (s *Server) handleValue(w http.ResponseWriter, r *http.Request) {
	ns, ok := parseNamespace(w, r)
	if !ok {
		return
	}
	value, err := strconv.Atoi(r.PathValue("value"))
	if err != nil || value < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid value %q", r.PathValue("value"))})
		return
	}

	reg := s.Registry()
	name, found := reg.NameOf(ns, value)
	s.metrics.observeLookup(ns, found)
	if found {
		e, _ := reg.Lookup(name)
		writeJSON(w, http.StatusOK, e)
		return
	}

	resp := errorResponse{Error: fmt.Sprintf("no active %s identifier has value %d", ns, value)}
	if reg.IsReserved(ns, value) {
		for _, retired := range reg.Retired(ns) {
			if retired.Value == value {
				resp.Retired = &retired
				break
			}
		}
	}
	writeJSON(w, http.StatusNotFound, resp)
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	ns, ok := parseNamespace(w, r)
	if !ok {
		return
	}
	reg := s.Registry()
	writeJSON(w, http.StatusOK, nextResponse{Namespace: ns, NextID: reg.NextID(ns), NextGlobalID: reg.NextGlobalID()})
}

func (s *Server) handleValidation(w http.ResponseWriter, r *http.Request) {
	s.cached(w, "validation", func(reg *registry.Registry) interface{} {
		report := reg.Validate()
		findings := report.Findings
		if findings == nil {
			findings = []registry.Finding{}
		}
		return validationResponse{
			Errors:   len(report.Errors()),
			Warnings: len(report.Warnings()),
			Findings: findings,
		}
	})
}

// cached writes the response stored under key, building and storing it first
// if needed.
func (s *Server) cached(w http.ResponseWriter, key string, build func(*registry.Registry) interface{}) {
	cur := s.current.Load()
	key = fmt.Sprintf("%d/%s", cur.generation, key)
	if body, ok := s.cache.Get(key); ok {
		writeBody(w, http.StatusOK, body)
		return
	}
	body, err := json.Marshal(build(cur.reg))
	if err != nil {
		s.logger.Errorf("error encoding %s response: %v", key, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	s.cache.Put(key, body)
	writeBody(w, http.StatusOK, body)
}

func parseNamespace(w http.ResponseWriter, r *http.Request) (registry.Namespace, bool) {
	ns, err := registry.ParseNamespace(r.PathValue("ns"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return "", false
	}
	return ns, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeBody(w, status, body)
}

func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
