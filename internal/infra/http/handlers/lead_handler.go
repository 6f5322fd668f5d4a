package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/flyfox-ai/funnel/internal/infra/http/middleware"
	"github.com/flyfox-ai/funnel/internal/usecase"
)

type LeadHandler struct {
	CaptureUC   *usecase.CaptureLeadUseCase
	StatusUC    *usecase.UpdateLeadStatusUseCase
	DetailUC    *usecase.GetLeadUseCase
	ScoreUC     *usecase.ScoreLeadUseCase
	FollowUpUC  *usecase.SendFollowUpUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(
	captureUC *usecase.CaptureLeadUseCase,
	statusUC *usecase.UpdateLeadStatusUseCase,
	detailUC *usecase.GetLeadUseCase,
	scoreUC *usecase.ScoreLeadUseCase,
	followUpUC *usecase.SendFollowUpUseCase,
) *LeadHandler {
	return &LeadHandler{
		CaptureUC:   captureUC,
		StatusUC:    statusUC,
		DetailUC:    detailUC,
		ScoreUC:     scoreUC,
		FollowUpUC:  followUpUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

// Capture is the public landing-page endpoint, hence the rate limit.
func (h *LeadHandler) Capture(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, please try again later")
		return
	}

	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	output, err := h.CaptureUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	if output.Created {
		// The use case applies the source default, so the metric label
		// matches what was actually stored.
		middleware.RecordLeadCaptured(output.Source)
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	writeSuccess(w, status, output)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	output, err := h.DetailUC.Execute(r.Context(), leadID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, output)
}

func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}
	input.LeadID = chi.URLParam(r, "id")

	if err := h.StatusUC.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"lead_id": input.LeadID, "status": input.Status})
}

func (h *LeadHandler) Score(w http.ResponseWriter, r *http.Request) {
	output, err := h.ScoreUC.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, output)
}

func (h *LeadHandler) Qualify(w http.ResponseWriter, r *http.Request) {
	output, err := h.ScoreUC.Qualify(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, output)
}

func (h *LeadHandler) FollowUp(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendFollowUpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}
	input.LeadID = chi.URLParam(r, "id")

	if err := h.FollowUpUC.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeSuccess(w, http.StatusAccepted, map[string]string{"lead_id": input.LeadID, "template": input.Template})
}

// getClientIP picks the rate-limit key. X-Forwarded-For can hold a chain of
// proxy hops; only the first entry is the client, the rest would let one
// caller rotate keys by padding the header.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.Index(xff, ","); i >= 0 {
			xff = xff[:i]
		}
		return strings.TrimSpace(xff)
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
