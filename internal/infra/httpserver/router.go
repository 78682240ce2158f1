package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	appchat "github.com/bryanwahyu/authentiscan/internal/application/chat"
	appverif "github.com/bryanwahyu/authentiscan/internal/application/verification"
	domain "github.com/bryanwahyu/authentiscan/internal/domain/verification"
	"github.com/bryanwahyu/authentiscan/internal/infra/capture"
	"github.com/bryanwahyu/authentiscan/internal/middleware"
)

type Router struct {
	verifySvc *appverif.Service
	chatSvc   *appchat.Service
	scanner   *capture.Scanner
}

func NewRouter(verifySvc *appverif.Service, chatSvc *appchat.Service, scanner *capture.Scanner, checkers map[string]middleware.HealthChecker) http.Handler {
	r := &Router{verifySvc: verifySvc, chatSvc: chatSvc, scanner: scanner}
	mux := chi.NewRouter()

	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/livez", middleware.LivenessHandler)
	mux.Get("/readyz", middleware.ReadinessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/verify/image", r.wrap(r.handleVerifyImage))
		rt.Post("/scan/camera", r.wrap(r.handleScanCamera))
		rt.Post("/scan/manual", r.wrap(r.handleScanManual))
		rt.Post("/reset", r.wrap(r.handleReset))
		rt.Get("/status", r.wrap(r.handleStatus))
		rt.Get("/history", r.wrap(r.handleHistory))
		rt.Delete("/history", r.wrap(r.handleClearHistory))
		rt.Post("/chat", r.wrap(r.handleChat))
		rt.Get("/chat", r.wrap(r.handleTranscript))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// badRequestError marks request-shape problems so wrap answers 400.
type badRequestError struct{ err error }

func (e badRequestError) Error() string { return e.err.Error() }
func (e badRequestError) Unwrap() error { return e.err }

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			var br badRequestError
			switch {
			case errors.Is(err, appverif.ErrBusy) || errors.Is(err, appchat.ErrBusy):
				http.Error(w, "analysis already in progress", http.StatusConflict)
			case errors.As(err, &br) ||
				errors.Is(err, appverif.ErrNoImage) ||
				errors.Is(err, appchat.ErrEmptyMessage) ||
				errors.Is(err, capture.ErrEmptyCode):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	}
}

// POST /v1/verify/image
// Body: {"imagePreview": "data:image/...;base64,..."}
func (r *Router) handleVerifyImage(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		ImagePreview string `json:"imagePreview"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequestError{err}
	}
	if err := middleware.ValidateImageDataURI(body.ImagePreview); err != nil {
		return badRequestError{err}
	}

	snap, err := r.verifySvc.VerifyImage(req.Context(), domain.DataURI(body.ImagePreview))
	if err != nil {
		return err
	}
	recordVerification(snap)
	return writeJSON(w, snap)
}

// POST /v1/scan/camera
// Runs the camera capture session, then the simulated code verification.
// Camera failures are inline capture results, not the verification error
// channel: the orchestrator stays idle.
func (r *Router) handleScanCamera(w http.ResponseWriter, req *http.Request) error {
	if err := r.scanner.Scan(req.Context()); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return writeJSON(w, map[string]any{
			"scanned":     false,
			"cameraError": capture.CameraMessage(err),
		})
	}

	snap, err := r.verifySvc.VerifyCode(req.Context(), "")
	if err != nil {
		return err
	}
	recordVerification(snap)
	return writeJSON(w, map[string]any{"scanned": true, "verification": snap})
}

// POST /v1/scan/manual
// Body: {"code": "..."}
func (r *Router) handleScanManual(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequestError{err}
	}
	if err := middleware.ValidateCode(body.Code); err != nil {
		return badRequestError{err}
	}

	code, err := r.scanner.Manual(req.Context(), body.Code)
	if err != nil {
		return err
	}

	snap, err := r.verifySvc.VerifyCode(req.Context(), code)
	if err != nil {
		return err
	}
	recordVerification(snap)
	return writeJSON(w, map[string]any{"scanned": true, "code": code, "verification": snap})
}

// POST /v1/reset
func (r *Router) handleReset(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, r.verifySvc.Reset())
}

// GET /v1/status
func (r *Router) handleStatus(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, r.verifySvc.Snapshot())
}

// GET /v1/history
func (r *Router) handleHistory(w http.ResponseWriter, req *http.Request) error {
	items := r.verifySvc.History()
	return writeJSON(w, map[string]any{"items": items, "count": len(items)})
}

// DELETE /v1/history
func (r *Router) handleClearHistory(w http.ResponseWriter, req *http.Request) error {
	if err := r.verifySvc.ClearHistory(req.Context()); err != nil {
		return err
	}
	return writeJSON(w, map[string]any{"cleared": true})
}

// POST /v1/chat
// Body: {"message": "..."}
func (r *Router) handleChat(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequestError{err}
	}
	msg := middleware.SanitizeString(body.Message)
	if err := middleware.ValidateChatMessage(msg); err != nil {
		return badRequestError{err}
	}

	reply, err := r.chatSvc.Send(req.Context(), msg)
	if err != nil {
		return err
	}
	middleware.IncrementChatMessages()
	return writeJSON(w, reply)
}

// GET /v1/chat
func (r *Router) handleTranscript(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, map[string]any{"messages": r.chatSvc.Transcript()})
}

func recordVerification(snap appverif.Snapshot) {
	middleware.IncrementVerifications()
	if snap.Status == domain.StatusError {
		middleware.IncrementVerificationsFailed()
	}
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}
