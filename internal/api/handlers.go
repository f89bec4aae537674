package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/kapu/journal-insight-go/internal/constants"
	"github.com/kapu/journal-insight-go/internal/domain"
	"github.com/kapu/journal-insight-go/internal/util"
	"github.com/kapu/journal-insight-go/pkg/errors"
)

// InsightService is the engine surface served over HTTP.
type InsightService interface {
	Configured() bool
	AnalyzeDaily(ctx context.Context, req domain.DailyRequest) (domain.AnalysisResult, error)
	AnalyzeWeekly(ctx context.Context, req domain.WeeklyRequest) (domain.AnalysisResult, error)
	AnalyzeWritingStyle(ctx context.Context, req domain.WritingStyleRequest) (domain.WritingStyleResult, error)
	AnalyzeWritingStyleForUser(ctx context.Context, userID string) (domain.WritingStyleResult, error)
	GetMovieRecommendations(ctx context.Context, req domain.MovieRequest) domain.MovieRecommendationResult
	BuildWeeklyReport(ctx context.Context, userID, weekStart string) (domain.WeeklyReport, error)
}

type Handler struct {
	service  InsightService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewHandler(service InsightService, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// movieRequest mirrors domain.MovieRequest with a plain score where
// zero or below means no score.
type movieRequest struct {
	UserID       string   `json:"user_id" validate:"required"`
	DominantMood string   `json:"dominant_mood"`
	MoodScore    int      `json:"mood_score" validate:"lte=100"`
	Summary      string   `json:"summary"`
	Highlights   []string `json:"highlights"`
	Affirmation  string   `json:"affirmation"`
}

func (m movieRequest) toDomain() domain.MovieRequest {
	req := domain.MovieRequest{
		UserID:       m.UserID,
		DominantMood: m.DominantMood,
		Summary:      m.Summary,
		Highlights:   m.Highlights,
		Affirmation:  m.Affirmation,
	}
	if m.MoodScore > 0 {
		score := m.MoodScore
		req.MoodScore = &score
	}
	return req
}

type weeklyReportRequest struct {
	WeekStart string `json:"week_start" validate:"required,datetime=2006-01-02"`
}

type healthResponse struct {
	Status               string `json:"status"`
	GenerativeConfigured bool   `json:"generative_configured"`
	Time                 string `json:"time"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondData(w, healthResponse{
		Status:               "ok",
		GenerativeConfigured: h.service.Configured(),
		Time:                 util.NowWIB().Format(time.RFC3339),
	})
}

func (h *Handler) AnalyzeDaily(w http.ResponseWriter, r *http.Request) {
	var req domain.DailyRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.service.AnalyzeDaily(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondData(w, result)
}

func (h *Handler) AnalyzeWeekly(w http.ResponseWriter, r *http.Request) {
	var req domain.WeeklyRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.service.AnalyzeWeekly(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondData(w, result)
}

func (h *Handler) AnalyzeWritingStyle(w http.ResponseWriter, r *http.Request) {
	var req domain.WritingStyleRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.service.AnalyzeWritingStyle(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondData(w, result)
}

func (h *Handler) UserWritingStyle(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		h.respondError(w, r, errors.NewInvalidArgument("user id is required", nil))
		return
	}
	result, err := h.service.AnalyzeWritingStyleForUser(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondData(w, result)
}

func (h *Handler) MovieRecommendations(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respondData(w, h.service.GetMovieRecommendations(r.Context(), req.toDomain()))
}

func (h *Handler) WeeklyReport(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		h.respondError(w, r, errors.NewInvalidArgument("user id is required", nil))
		return
	}
	var req weeklyReportRequest
	if !h.decode(w, r, &req) {
		return
	}
	report, err := h.service.BuildWeeklyReport(r.Context(), userID, req.WeekStart)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondData(w, report)
}

// decode reads and validates a JSON body into dst. It writes the error
// response itself and reports whether the handler should continue.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, constants.HTTPConfig.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		h.respondError(w, r, errors.NewInvalidArgument("Invalid JSON body", nil).WithCause(err))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.respondError(w, r, errors.NewInvalidArgument(validationMessage(err), nil).WithCause(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "Invalid request"
	}
	fe := verrs[0]
	return fmt.Sprintf("Field %s failed validation: %s", fe.Field(), fe.Tag())
}
