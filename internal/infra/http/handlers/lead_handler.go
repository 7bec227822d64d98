package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gordohq/lead-portal/internal/entity"
	"github.com/gordohq/lead-portal/internal/infra/http/middleware"
	"github.com/gordohq/lead-portal/internal/usecase"
)

type LeadHandler struct {
	createUC    *usecase.CreateLeadUseCase
	store       entity.LeadStoreInterface
	rateLimiter *RateLimiter
}

func NewLeadHandler(createUC *usecase.CreateLeadUseCase, store entity.LeadStoreInterface) *LeadHandler {
	return &LeadHandler{
		createUC:    createUC,
		store:       store,
		rateLimiter: NewRateLimiter(30, time.Minute), // 30 req/min por IP
	}
}

// Create handles POST /leads.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	output, err := h.createUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadCaptured(output.Lead.Status)
	writeJSON(w, http.StatusCreated, output)
}

// List handles GET /leads. Reads may come from the short-lived cache.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.LoadAll(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"leads": snap,
		"total": len(snap),
	})
}

// CheckDuplicate handles POST /leads/check: the pre-submission probe the
// form uses to warn before saving. Nothing is persisted.
func (h *LeadHandler) CheckDuplicate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Customer string `json:"customer"`
		Company  string `json:"company"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	phoneDigits, _, ok := usecase.NormalizePhone(input.Phone)
	if !ok {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", "phone: looks invalid, expected 10 digits")
		return
	}

	snap, err := h.store.LoadAll(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	isDup, matches := usecase.FindDuplicates(snap, input.Customer, input.Company, input.Email, phoneDigits)
	writeJSON(w, http.StatusOK, map[string]any{
		"duplicate": isDup,
		"matches":   matches,
	})
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
