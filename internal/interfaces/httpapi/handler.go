package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/sports-dashboard/internal/platform/logging"
	"github.com/riskibarqy/sports-dashboard/internal/usecase"
)

type Handler struct {
	leagueService    *usecase.LeagueService
	dashboardService *usecase.DashboardService
	timezones        []string
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	dashboardService *usecase.DashboardService,
	timezones []string,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:    leagueService,
		dashboardService: dashboardService,
		timezones:        append([]string(nil), timezones...),
		logger:           logger.Named("httpapi"),
		validator:        validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type dashboardQuery struct {
	Timezone  string `validate:"omitempty,timezone"`
	NewsLimit int    `validate:"gte=0,lte=50"`
}

func parseDashboardQuery(r *http.Request) (dashboardQuery, error) {
	query := r.URL.Query()
	out := dashboardQuery{
		Timezone: strings.TrimSpace(query.Get("tz")),
	}

	if raw := strings.TrimSpace(query.Get("news_limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return dashboardQuery{}, fmt.Errorf("%w: news_limit must be an integer", usecase.ErrInvalidInput)
		}
		out.NewsLimit = limit
	}

	return out, nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	item, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) ListTimezones(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTimezones")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.timezones)
}

// GetDashboard renders a full dashboard. Sections that failed upstream come back
// as warnings with a 200; only request errors fail the call.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	query, err := parseDashboardQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	dashboard, err := h.dashboardService.Render(ctx, usecase.RenderRequest{
		LeagueID:  leagueID,
		Timezone:  query.Timezone,
		NewsLimit: query.NewsLimit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "render dashboard failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(dashboard))
}
