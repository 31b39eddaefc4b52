// Package mockapi is an in-memory stand-in for the listing platform's admin
// API: same paths, same envelope, same session-cookie auth. It backs local
// development (cmd/mockapi) and the integration tests of the api package.
// Nothing here persists; restarting resets the fixtures.
package mockapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/uyhome/adminctl/internal/models"
)

const sessionCookie = "sessionid"

// Admin credentials accepted by the mock.
const (
	AdminPhone    = "+998900000000"
	AdminPassword = "admin123"
)

type Server struct {
	mu       sync.Mutex
	router   chi.Router
	sessions map[string]int64

	cities     *collection[models.City]
	districts  *collection[models.District]
	features   *collection[models.Feature]
	pages      *collection[models.Page]
	banners    *collection[models.Banner]
	properties *collection[models.Property]
	users      *collection[models.User]
	tariffs    *collection[models.Tariff]
	payments   *collection[models.Payment]
}

func New() *Server {
	s := &Server{sessions: make(map[string]int64)}
	s.seed()

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "lang", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Route("/api/website/v1", func(r chi.Router) {
		r.Post("/auth/login/", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)

			r.Post("/auth/logout/", s.handleLogout)
			r.Get("/auth/check/", s.handleCheck)
			r.Get("/auth/me/", s.handleMe)

			registerCRUD(s, r, "cities", s.cities)
			registerCRUD(s, r, "districts", s.districts)
			registerCRUD(s, r, "features", s.features)
			registerCRUD(s, r, "pages", s.pages)
			registerCRUD(s, r, "banners", s.banners)
			registerCRUD(s, r, "properties", s.properties)
			registerCRUD(s, r, "users", s.users)
			registerCRUD(s, r, "tariffs", s.tariffs)
			registerCRUD(s, r, "payments", s.payments)

			r.Get("/pages/slug/{slug}/", s.handlePageBySlug)
			r.Get("/payments/stats/", s.handlePaymentStats)
			r.Get("/dashboard/", s.handleDashboard)
			r.Get("/eskiz/balance/", s.handleEskizBalance)
		})
	})

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// ---- auth ----

func (s *Server) handleLogin(w http.ResponseWriter, req *http.Request) {
	var creds struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	body, err := readBody(req)
	if err != nil || json.Unmarshal(body, &creds) != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if creds.Phone != AdminPhone || creds.Password != AdminPassword {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	admin := s.users.items[0]
	token := uuid.NewString()
	s.sessions[token] = admin.ID

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	writeData(w, http.StatusOK, admin)
}

func (s *Server) handleLogout(w http.ResponseWriter, req *http.Request) {
	if c, err := req.Cookie(sessionCookie); err == nil {
		s.mu.Lock()
		delete(s.sessions, c.Value)
		s.mu.Unlock()
	}
	writeData(w, http.StatusOK, nil)
}

func (s *Server) handleCheck(w http.ResponseWriter, req *http.Request) {
	writeData(w, http.StatusOK, nil)
}

func (s *Server) handleMe(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, _ := req.Cookie(sessionCookie)
	id := s.sessions[c.Value]
	if i, ok := s.users.find(id); ok {
		writeData(w, http.StatusOK, s.users.items[i])
		return
	}
	writeError(w, http.StatusNotFound, "user not found")
}

func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		c, err := req.Cookie(sessionCookie)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		s.mu.Lock()
		_, ok := s.sessions[c.Value]
		s.mu.Unlock()
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, req)
	})
}

// ---- envelope / pagination helpers ----

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  true,
		"message": "",
		"data":    data,
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  false,
		"message": msg,
		"data":    nil,
	})
}

func writePage[T any](w http.ResponseWriter, req *http.Request, items []T) {
	page := queryInt(req, "page", 1)
	size := queryInt(req, "page_size", 20)

	count := len(items)
	start := (page - 1) * size
	if start > count {
		start = count
	}
	end := start + size
	if end > count {
		end = count
	}

	var next, prev *string
	if end < count {
		u := "?page=" + strconv.Itoa(page+1)
		next = &u
	}
	if page > 1 {
		u := "?page=" + strconv.Itoa(page-1)
		prev = &u
	}

	writeData(w, http.StatusOK, map[string]any{
		"count":    count,
		"next":     next,
		"previous": prev,
		"results":  items[start:end],
	})
}

func queryInt(req *http.Request, key string, def int) int {
	v, err := strconv.Atoi(req.URL.Query().Get(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}

func readBody(req *http.Request) ([]byte, error) {
	defer req.Body.Close()
	return io.ReadAll(io.LimitReader(req.Body, 10<<20))
}
